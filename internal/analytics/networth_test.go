package analytics

import (
	"testing"

	"github.com/mcosta/finance-dashboard/internal/models"
)

func TestReconstructNetWorth_BackwardConsistency(t *testing.T) {
	monthly := []models.MonthlyChartData{
		{Income: 5000, Expenses: 4200},
		{Income: 5000, Expenses: 5500},
		{Income: 0, Expenses: 300},
		{Income: 6100, Expenses: 4000},
	}
	const current = 12000.0
	ReconstructNetWorth(monthly, current)

	if monthly[len(monthly)-1].NetWorth != current {
		t.Fatalf("newest bucket net worth = %v, want snapshot %v", monthly[len(monthly)-1].NetWorth, current)
	}
	// netWorth[i] == netWorth[i+1] - cashFlow[i+1]
	for i := 0; i < len(monthly)-1; i++ {
		next := monthly[i+1]
		want := next.NetWorth - (next.Income - next.Expenses)
		if !almostEqual(monthly[i].NetWorth, want) {
			t.Errorf("bucket %d net worth = %v, want %v", i, monthly[i].NetWorth, want)
		}
	}
}

func TestReconstructNetWorth_FlatWithoutFlows(t *testing.T) {
	monthly := make([]models.MonthlyChartData, 6)
	ReconstructNetWorth(monthly, 300)
	for i, bucket := range monthly {
		if bucket.NetWorth != 300 {
			t.Errorf("bucket %d net worth = %v, want 300 with zero cash flows", i, bucket.NetWorth)
		}
	}
}

func TestReconstructNetWorth_EmptySeries(t *testing.T) {
	// Must not panic
	ReconstructNetWorth(nil, 1000)
}

func TestTotalInvestmentValueAndCost(t *testing.T) {
	investments := []models.Investment{
		{Quantity: 2, PurchasePrice: 100, CurrentPrice: 150},
		{Quantity: 10, PurchasePrice: 5, CurrentPrice: 4},
	}
	if got := TotalInvestmentValue(investments); got != 340 {
		t.Errorf("TotalInvestmentValue() = %v, want 340", got)
	}
	if got := TotalInvestmentCost(investments); got != 250 {
		t.Errorf("TotalInvestmentCost() = %v, want 250", got)
	}
	if got := TotalInvestmentValue(nil); got != 0 {
		t.Errorf("TotalInvestmentValue(nil) = %v, want 0", got)
	}
}
