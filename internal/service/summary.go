package service

import (
	"context"
	"time"

	"github.com/mcosta/finance-dashboard/internal/analytics"
	"github.com/mcosta/finance-dashboard/internal/models"
	"golang.org/x/sync/errgroup"
)

// GetFinancialSummary fetches all of the current user's raw records in
// parallel and derives the consolidated dashboard result: snapshot
// metrics, the rolling 6-month series and the current-month category
// breakdown. Empty record sets produce zero-valued metrics, never errors.
func (s *Service) GetFinancialSummary(ctx context.Context) (*models.FinancialSummary, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	windowStart := time.Date(now.Year(), now.Month()-5, 1, 0, 0, 0, 0, now.Location())

	var (
		cards         []models.CreditCard
		fixedExpenses []models.FixedExpense
		extraExpenses []models.ExtraExpense
		investments   []models.Investment
		incomeSources []models.IncomeSource
		incomeHistory []models.IncomeHistory
		cardPurchases []models.CardPurchase
	)

	// Fan out the raw-record fetches; computation starts only after all
	// of them complete.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cards, err = s.store.GetCreditCards(userID)
		return err
	})
	g.Go(func() error {
		var err error
		fixedExpenses, err = s.store.GetFixedExpenses(userID)
		return err
	})
	g.Go(func() error {
		var err error
		extraExpenses, err = s.store.GetExtraExpenses(userID, windowStart)
		return err
	})
	g.Go(func() error {
		var err error
		investments, err = s.store.GetInvestments(userID)
		return err
	})
	g.Go(func() error {
		var err error
		incomeSources, err = s.store.GetIncomeSources(userID)
		return err
	})
	g.Go(func() error {
		var err error
		incomeHistory, err = s.store.GetIncomeHistory(userID, "", windowStart)
		return err
	})
	g.Go(func() error {
		var err error
		cardPurchases, err = s.store.GetCardPurchases(userID, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Snapshot totals
	var totalCardBalance, totalCreditLimit, currentMonthlyCardBill float64
	for _, c := range cards {
		totalCardBalance += c.CurrentBalance
		totalCreditLimit += c.CreditLimit
		for _, p := range c.Purchases {
			currentMonthlyCardBill += analytics.MonthlyShare(p)
		}
	}

	var monthlyFixedExpenses float64
	for _, e := range fixedExpenses {
		if e.IsActive {
			monthlyFixedExpenses += e.Amount
		}
	}

	var monthlyExtraExpenses float64
	for _, e := range extraExpenses {
		if e.ExpenseDate.Year() == now.Year() && e.ExpenseDate.Month() == now.Month() {
			monthlyExtraExpenses += e.Amount
		}
	}

	totalInvestmentValue := analytics.TotalInvestmentValue(investments)
	totalInvestmentCost := analytics.TotalInvestmentCost(investments)

	active, passive, alternative := analytics.ProjectedMonthlyIncome(incomeSources)
	monthlyIncome := active + passive + alternative

	monthlyExpenses := monthlyFixedExpenses + monthlyExtraExpenses + currentMonthlyCardBill
	monthlyCashFlow := monthlyIncome - monthlyExpenses
	totalAssets := totalInvestmentValue
	totalLiabilities := totalCardBalance
	totalNetWorth := totalAssets - totalLiabilities

	savingsRate := 0.0
	if monthlyIncome > 0 {
		savingsRate = monthlyCashFlow / monthlyIncome * 100
	}

	// Historical series + retroactive net worth
	series := analytics.BuildMonthlySeries(now, analytics.SeriesInput{
		FixedExpenses: fixedExpenses,
		ExtraExpenses: extraExpenses,
		CardPurchases: cardPurchases,
		Investments:   investments,
		IncomeSources: incomeSources,
		IncomeHistory: incomeHistory,
	})
	analytics.ReconstructNetWorth(series.MonthlyData, totalNetWorth)

	breakdown := analytics.BuildExpenseBreakdown(now, fixedExpenses, extraExpenses, cardPurchases)

	return &models.FinancialSummary{
		TotalNetWorth:    totalNetWorth,
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		MonthlyIncome:    monthlyIncome,
		MonthlyExpenses:  monthlyExpenses,
		MonthlyCashFlow:  monthlyCashFlow,
		SavingsRate:      savingsRate,
		// Reported as the amortized bill due this month; the outstanding
		// balance total lives in TotalLiabilities.
		TotalCreditCardDebt:  currentMonthlyCardBill,
		TotalCreditLimit:     totalCreditLimit,
		TotalInvestmentValue: totalInvestmentValue,
		TotalInvestmentGain:  totalInvestmentValue - totalInvestmentCost,
		CardCount:            len(cards),
		InvestmentCount:      len(investments),
		IncomeSourceCount:    len(incomeSources),
		MonthlyData:          series.MonthlyData,
		ExpenseBreakdown:     breakdown,
		ExpenseChartData:     series.ExpenseChartData,
		IncomeChartData:      series.IncomeChartData,
		InvestmentChartData:  series.InvestmentChartData,
	}, nil
}
