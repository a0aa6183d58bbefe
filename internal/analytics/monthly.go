package analytics

import (
	"time"

	"github.com/mcosta/finance-dashboard/internal/models"
)

// Short month labels used on chart axes
var monthLabels = []string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// SeriesInput carries the raw record sets the monthly series is derived
// from. All slices may be empty.
type SeriesInput struct {
	FixedExpenses []models.FixedExpense
	ExtraExpenses []models.ExtraExpense
	CardPurchases []models.CardPurchase
	Investments   []models.Investment
	IncomeSources []models.IncomeSource
	IncomeHistory []models.IncomeHistory
}

// Series holds the derived 6-month chart series, oldest bucket first.
// NetWorth on MonthlyData is zero until ReconstructNetWorth runs.
type Series struct {
	MonthlyData         []models.MonthlyChartData
	ExpenseChartData    []models.ExpenseChartData
	IncomeChartData     []models.IncomeChartData
	InvestmentChartData []models.InvestmentChartData
}

func sameMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}

// BuildMonthlySeries computes the rolling 6-month series ending at the
// month of now.
//
// Income comes from realized history records, split by the type of their
// parent source; the current month falls back to a projection over active
// sources when it has no history yet. Card contributions are amortized
// per purchase and attributed only to the bucket the purchase date falls
// in — later installments of a purchase are not projected into later
// buckets. Fixed expenses are not historized, so the current active set
// applies uniformly to every bucket. The investment series is the
// cumulative cost basis as of each month's end.
func BuildMonthlySeries(now time.Time, in SeriesInput) Series {
	sourceType := make(map[string]string, len(in.IncomeSources))
	for _, s := range in.IncomeSources {
		sourceType[s.ID] = s.Type
	}

	activeFixedSum := 0.0
	for _, e := range in.FixedExpenses {
		if e.IsActive {
			activeFixedSum += e.Amount
		}
	}

	var out Series
	for i := 5; i >= 0; i-- {
		bucket := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		year, month := bucket.Year(), bucket.Month()
		label := monthLabels[month-1]

		// Income: realized history first
		var activeSum, passiveSum, alternativeSum float64
		for _, h := range in.IncomeHistory {
			if !sameMonth(h.Date, year, month) {
				continue
			}
			switch sourceType[h.IncomeSourceID] {
			case models.IncomeTypePassive:
				passiveSum += h.Amount
			case models.IncomeTypeAlternative:
				alternativeSum += h.Amount
			default:
				activeSum += h.Amount
			}
		}

		// Current month without history yet: project from active sources
		if i == 0 && activeSum == 0 && passiveSum == 0 && alternativeSum == 0 {
			activeSum, passiveSum, alternativeSum = ProjectedMonthlyIncome(in.IncomeSources)
		}

		totalIncome := activeSum + passiveSum + alternativeSum
		out.IncomeChartData = append(out.IncomeChartData, models.IncomeChartData{
			Month:       label,
			Active:      activeSum,
			Passive:     passiveSum,
			Alternative: alternativeSum,
		})

		extraSum := 0.0
		for _, e := range in.ExtraExpenses {
			if sameMonth(e.ExpenseDate, year, month) {
				extraSum += e.Amount
			}
		}

		cardSum := 0.0
		for _, p := range in.CardPurchases {
			if sameMonth(p.PurchaseDate, year, month) {
				cardSum += MonthlyShare(p)
			}
		}

		totalExpenses := activeFixedSum + extraSum + cardSum
		out.ExpenseChartData = append(out.ExpenseChartData, models.ExpenseChartData{
			Month: label,
			Fixed: activeFixedSum,
			Extra: extraSum,
		})

		out.MonthlyData = append(out.MonthlyData, models.MonthlyChartData{
			Month:    label,
			Income:   totalIncome,
			Expenses: totalExpenses,
		})

		// Cumulative cost basis of everything bought up to month end
		monthEnd := bucket.AddDate(0, 1, 0)
		costBasis := 0.0
		for _, inv := range in.Investments {
			if inv.PurchaseDate.Before(monthEnd) {
				costBasis += inv.Quantity * inv.PurchasePrice
			}
		}
		out.InvestmentChartData = append(out.InvestmentChartData, models.InvestmentChartData{
			Month: label,
			Value: costBasis,
		})
	}
	return out
}
