package analytics

import "github.com/mcosta/finance-dashboard/internal/models"

// TotalInvestmentValue sums quantity × current price over all positions.
func TotalInvestmentValue(investments []models.Investment) float64 {
	total := 0.0
	for _, inv := range investments {
		total += inv.Quantity * inv.CurrentPrice
	}
	return total
}

// TotalInvestmentCost sums quantity × purchase price over all positions.
func TotalInvestmentCost(investments []models.Investment) float64 {
	total := 0.0
	for _, inv := range investments {
		total += inv.Quantity * inv.PurchasePrice
	}
	return total
}

// ReconstructNetWorth fills in the NetWorth field of the monthly series
// by walking backward from the current snapshot: the newest bucket gets
// the snapshot value, and each earlier bucket gets the next bucket's net
// worth minus that bucket's cash flow.
//
// There is no stored opening balance, so the past is inferred from the
// present rather than accumulated forward.
func ReconstructNetWorth(monthly []models.MonthlyChartData, currentNetWorth float64) {
	running := currentNetWorth
	for i := len(monthly) - 1; i >= 0; i-- {
		monthly[i].NetWorth = running
		running -= monthly[i].Income - monthly[i].Expenses
	}
}
