package analytics

import (
	"sort"
	"time"

	"github.com/mcosta/finance-dashboard/internal/models"
)

// Display colors per category. Unknown categories fall back to gray.
var categoryColors = map[string]string{
	"Shopping":       "#3b82f6",
	"Groceries":      "#10b981",
	"Mercado":        "#10b981",
	"Entertainment":  "#f59e0b",
	"Lazer":          "#f59e0b",
	"Transportation": "#ef4444",
	"Transporte":     "#ef4444",
	"Travel":         "#8b5cf6",
	"Viagem":         "#8b5cf6",
	"Dining":         "#ec4899",
	"Alimentação":    "#ec4899",
	"utilities":      "#06b6d4",
	"insurance":      "#64748b",
	"subscriptions":  "#6366f1",
	"rent":           "#d946ef",
	"Outros":         "#9ca3af",
}

const defaultCategoryColor = "#9ca3af"

// CategoryColor returns the display color for a category name.
func CategoryColor(name string) string {
	if c, ok := categoryColors[name]; ok {
		return c
	}
	return defaultCategoryColor
}

// BuildExpenseBreakdown aggregates current-month spend by category across
// active fixed expenses, current-month extra expenses and current-month
// amortized card purchases, sorted descending by amount.
func BuildExpenseBreakdown(now time.Time, fixed []models.FixedExpense, extra []models.ExtraExpense, purchases []models.CardPurchase) []models.ExpenseBreakdownItem {
	year, month := now.Year(), now.Month()
	byCategory := make(map[string]float64)

	for _, e := range fixed {
		if !e.IsActive {
			continue
		}
		cat := e.Category
		if cat == "" {
			cat = "Outros"
		}
		byCategory[cat] += e.Amount
	}
	for _, e := range extra {
		if !sameMonth(e.ExpenseDate, year, month) {
			continue
		}
		cat := e.Category
		if cat == "" {
			cat = "Outros"
		}
		byCategory[cat] += e.Amount
	}
	for _, p := range purchases {
		if !sameMonth(p.PurchaseDate, year, month) {
			continue
		}
		cat := p.Category
		if cat == "" {
			cat = "Shopping"
		}
		byCategory[cat] += MonthlyShare(p)
	}

	breakdown := make([]models.ExpenseBreakdownItem, 0, len(byCategory))
	for name, value := range byCategory {
		if value == 0 {
			continue
		}
		breakdown = append(breakdown, models.ExpenseBreakdownItem{
			Name:  name,
			Value: value,
			Color: CategoryColor(name),
		})
	}
	sort.Slice(breakdown, func(i, j int) bool { return breakdown[i].Value > breakdown[j].Value })
	return breakdown
}
