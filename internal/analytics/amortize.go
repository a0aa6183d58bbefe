package analytics

import "github.com/mcosta/finance-dashboard/internal/models"

// MonthlyShare returns the per-month billing contribution of a purchase.
// Installment purchases contribute amount/total_installments; everything
// else (including installment counts of zero or below, which would
// otherwise divide by zero) contributes the full amount in its purchase
// month.
func MonthlyShare(p models.CardPurchase) float64 {
	if p.IsInstallment && p.TotalInstallments != nil && *p.TotalInstallments > 0 {
		return p.Amount / float64(*p.TotalInstallments)
	}
	return p.Amount
}

// FrequencyMultiplier converts an income frequency into occurrences per
// month. Unknown frequencies count as monthly.
func FrequencyMultiplier(frequency string) float64 {
	switch frequency {
	case models.FrequencyWeekly:
		return 4.33
	case models.FrequencyBiWeekly:
		return 2.17
	case models.FrequencyMonthly:
		return 1
	case models.FrequencyQuarterly:
		return 0.33
	case models.FrequencyAnnually:
		return 0.083
	default:
		return 1
	}
}

// ProjectedMonthlyIncome sums the monthly-equivalent amounts of all active
// income sources, split by source type. Alternative-typed sources land in
// the third return value.
func ProjectedMonthlyIncome(sources []models.IncomeSource) (active, passive, alternative float64) {
	for _, s := range sources {
		if !s.IsActive {
			continue
		}
		val := s.Amount * FrequencyMultiplier(s.Frequency)
		switch s.Type {
		case models.IncomeTypePassive:
			passive += val
		case models.IncomeTypeAlternative:
			alternative += val
		default:
			active += val
		}
	}
	return active, passive, alternative
}
