package analytics

import (
	"testing"
	"time"

	"github.com/mcosta/finance-dashboard/internal/models"
)

// Fixed reference time: mid-month keeps the window boundaries away from
// edge cases in the individual tests.
var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func monthsAgo(n int) time.Time {
	return testNow.AddDate(0, -n, 0)
}

func TestBuildMonthlySeries_BucketCount(t *testing.T) {
	series := BuildMonthlySeries(testNow, SeriesInput{})
	if len(series.MonthlyData) != 6 {
		t.Fatalf("MonthlyData buckets = %d, want 6", len(series.MonthlyData))
	}
	if len(series.IncomeChartData) != 6 || len(series.ExpenseChartData) != 6 || len(series.InvestmentChartData) != 6 {
		t.Errorf("all chart series should have 6 buckets")
	}
	// Oldest first: January through June
	if series.MonthlyData[0].Month != "jan" || series.MonthlyData[5].Month != "jun" {
		t.Errorf("bucket order = %s..%s, want jan..jun", series.MonthlyData[0].Month, series.MonthlyData[5].Month)
	}
}

func TestBuildMonthlySeries_IncomeFromHistory(t *testing.T) {
	in := SeriesInput{
		IncomeSources: []models.IncomeSource{
			{ID: "src-a", Type: models.IncomeTypeActive},
			{ID: "src-p", Type: models.IncomeTypePassive},
			{ID: "src-alt", Type: models.IncomeTypeAlternative},
		},
		IncomeHistory: []models.IncomeHistory{
			{IncomeSourceID: "src-a", Amount: 4000, Date: monthsAgo(2)},
			{IncomeSourceID: "src-p", Amount: 500, Date: monthsAgo(2)},
			{IncomeSourceID: "src-alt", Amount: 150, Date: monthsAgo(2)},
		},
	}
	series := BuildMonthlySeries(testNow, in)

	bucket := series.IncomeChartData[3] // two months back
	if bucket.Active != 4000 || bucket.Passive != 500 || bucket.Alternative != 150 {
		t.Errorf("history split = (%v, %v, %v), want (4000, 500, 150)", bucket.Active, bucket.Passive, bucket.Alternative)
	}
	if got := series.MonthlyData[3].Income; got != 4650 {
		t.Errorf("bucket income = %v, want 4650", got)
	}
}

func TestBuildMonthlySeries_CurrentMonthProjectionFallback(t *testing.T) {
	in := SeriesInput{
		IncomeSources: []models.IncomeSource{
			{ID: "src-a", Type: models.IncomeTypeActive, Amount: 3000, Frequency: models.FrequencyMonthly, IsActive: true},
		},
	}
	series := BuildMonthlySeries(testNow, in)

	current := series.IncomeChartData[5]
	if !almostEqual(current.Active, 3000) {
		t.Errorf("projected current-month active income = %v, want 3000", current.Active)
	}
	// Historical months have no history and no projection
	if series.IncomeChartData[4].Active != 0 {
		t.Errorf("historical month projected income = %v, want 0", series.IncomeChartData[4].Active)
	}
}

func TestBuildMonthlySeries_HistoryOverridesProjection(t *testing.T) {
	in := SeriesInput{
		IncomeSources: []models.IncomeSource{
			{ID: "src-a", Type: models.IncomeTypeActive, Amount: 3000, Frequency: models.FrequencyMonthly, IsActive: true},
		},
		IncomeHistory: []models.IncomeHistory{
			{IncomeSourceID: "src-a", Amount: 2750, Date: testNow},
		},
	}
	series := BuildMonthlySeries(testNow, in)

	if got := series.IncomeChartData[5].Active; got != 2750 {
		t.Errorf("current-month income = %v, want realized 2750 over projected 3000", got)
	}
}

func TestBuildMonthlySeries_Expenses(t *testing.T) {
	in := SeriesInput{
		FixedExpenses: []models.FixedExpense{
			{Amount: 1500, IsActive: true},
			{Amount: 999, IsActive: false}, // inactive, excluded
		},
		ExtraExpenses: []models.ExtraExpense{
			{Amount: 200, ExpenseDate: monthsAgo(1)},
			{Amount: 50, ExpenseDate: testNow},
		},
		CardPurchases: []models.CardPurchase{
			{Amount: 120, PurchaseDate: monthsAgo(1), IsInstallment: true, TotalInstallments: intPtr(4)},
			{Amount: 100, PurchaseDate: testNow},
		},
	}
	series := BuildMonthlySeries(testNow, in)

	// Fixed applies uniformly to every bucket
	for i, bucket := range series.ExpenseChartData {
		if bucket.Fixed != 1500 {
			t.Errorf("bucket %d fixed = %v, want 1500", i, bucket.Fixed)
		}
	}

	lastMonth := series.MonthlyData[4]
	if lastMonth.Expenses != 1500+200+30 {
		t.Errorf("last month expenses = %v, want 1730", lastMonth.Expenses)
	}
	current := series.MonthlyData[5]
	if current.Expenses != 1500+50+100 {
		t.Errorf("current month expenses = %v, want 1650", current.Expenses)
	}
	if series.ExpenseChartData[4].Extra != 200 {
		t.Errorf("last month extra = %v, want 200", series.ExpenseChartData[4].Extra)
	}
}

func TestBuildMonthlySeries_InstallmentOnlyCountsPurchaseMonth(t *testing.T) {
	// A 4-installment purchase two months back contributes its share to
	// that bucket only; later buckets see nothing from it.
	in := SeriesInput{
		CardPurchases: []models.CardPurchase{
			{Amount: 400, PurchaseDate: monthsAgo(2), IsInstallment: true, TotalInstallments: intPtr(4)},
		},
	}
	series := BuildMonthlySeries(testNow, in)

	if got := series.MonthlyData[3].Expenses; got != 100 {
		t.Errorf("purchase month expenses = %v, want 100", got)
	}
	for _, i := range []int{4, 5} {
		if got := series.MonthlyData[i].Expenses; got != 0 {
			t.Errorf("bucket %d expenses = %v, want 0 (no forward projection)", i, got)
		}
	}
}

func TestBuildMonthlySeries_InvestmentCostBasis(t *testing.T) {
	in := SeriesInput{
		Investments: []models.Investment{
			{Quantity: 2, PurchasePrice: 100, PurchaseDate: monthsAgo(4)},
			{Quantity: 1, PurchasePrice: 500, PurchaseDate: monthsAgo(1)},
		},
	}
	series := BuildMonthlySeries(testNow, in)

	if got := series.InvestmentChartData[0].Value; got != 0 {
		t.Errorf("oldest bucket cost basis = %v, want 0", got)
	}
	if got := series.InvestmentChartData[1].Value; got != 200 {
		t.Errorf("bucket after first buy = %v, want 200", got)
	}
	if got := series.InvestmentChartData[5].Value; got != 700 {
		t.Errorf("current bucket cost basis = %v, want cumulative 700", got)
	}
}

func TestBuildMonthlySeries_EmptyInputIsZeroed(t *testing.T) {
	series := BuildMonthlySeries(testNow, SeriesInput{})
	for i, bucket := range series.MonthlyData {
		if bucket.Income != 0 || bucket.Expenses != 0 {
			t.Errorf("bucket %d not zero: %+v", i, bucket)
		}
	}
}
