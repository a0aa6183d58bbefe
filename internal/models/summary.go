package models

// MonthlyChartData represents one month bucket of the income/expense/net
// worth series
type MonthlyChartData struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	NetWorth float64 `json:"netWorth"`
}

// ExpenseBreakdownItem is one slice of the current-month category
// distribution
type ExpenseBreakdownItem struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// ExpenseChartData splits a month's expenses into fixed vs extra
type ExpenseChartData struct {
	Month string  `json:"month"`
	Fixed float64 `json:"fixed"`
	Extra float64 `json:"extra"`
}

// IncomeChartData splits a month's income by source type
type IncomeChartData struct {
	Month       string  `json:"month"`
	Active      float64 `json:"active"`
	Passive     float64 `json:"passive"`
	Alternative float64 `json:"alternative"`
}

// InvestmentChartData carries the cumulative invested cost basis as of a
// month's end
type InvestmentChartData struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// FinancialSummary is the consolidated dashboard result. Field names are
// part of the output contract; charts bind to them directly.
//
// TotalLiabilities carries the sum of card balances (debt outstanding),
// while TotalCreditCardDebt carries the amortized bill due this month.
// The two are distinct figures.
type FinancialSummary struct {
	TotalNetWorth        float64 `json:"totalNetWorth"`
	TotalAssets          float64 `json:"totalAssets"`
	TotalLiabilities     float64 `json:"totalLiabilities"`
	MonthlyIncome        float64 `json:"monthlyIncome"`
	MonthlyExpenses      float64 `json:"monthlyExpenses"`
	MonthlyCashFlow      float64 `json:"monthlyCashFlow"`
	SavingsRate          float64 `json:"savingsRate"`
	TotalCreditCardDebt  float64 `json:"totalCreditCardDebt"`
	TotalCreditLimit     float64 `json:"totalCreditLimit"`
	TotalInvestmentValue float64 `json:"totalInvestmentValue"`
	TotalInvestmentGain  float64 `json:"totalInvestmentGain"`
	CardCount            int     `json:"cardCount"`
	InvestmentCount      int     `json:"investmentCount"`
	IncomeSourceCount    int     `json:"incomeSourceCount"`

	MonthlyData         []MonthlyChartData     `json:"monthlyData"`
	ExpenseBreakdown    []ExpenseBreakdownItem `json:"expenseBreakdown"`
	ExpenseChartData    []ExpenseChartData     `json:"expenseChartData"`
	IncomeChartData     []IncomeChartData      `json:"incomeChartData"`
	InvestmentChartData []InvestmentChartData  `json:"investmentChartData"`
}
