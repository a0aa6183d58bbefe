package analytics

import (
	"sort"
	"testing"

	"github.com/mcosta/finance-dashboard/internal/models"
)

func TestBuildExpenseBreakdown_SortedDescending(t *testing.T) {
	breakdown := BuildExpenseBreakdown(testNow,
		[]models.FixedExpense{
			{Category: "rent", Amount: 2000, IsActive: true},
			{Category: "utilities", Amount: 300, IsActive: true},
		},
		[]models.ExtraExpense{
			{Category: "Lazer", Amount: 450, ExpenseDate: testNow},
		},
		[]models.CardPurchase{
			{Category: "Mercado", Amount: 600, PurchaseDate: testNow},
		},
	)

	if len(breakdown) != 4 {
		t.Fatalf("breakdown size = %d, want 4", len(breakdown))
	}
	if !sort.SliceIsSorted(breakdown, func(i, j int) bool { return breakdown[i].Value > breakdown[j].Value }) {
		t.Errorf("breakdown not sorted descending: %+v", breakdown)
	}
	if breakdown[0].Name != "rent" || breakdown[0].Value != 2000 {
		t.Errorf("top category = %+v, want rent/2000", breakdown[0])
	}
}

func TestBuildExpenseBreakdown_CurrentMonthOnly(t *testing.T) {
	breakdown := BuildExpenseBreakdown(testNow,
		nil,
		[]models.ExtraExpense{
			{Category: "Lazer", Amount: 450, ExpenseDate: monthsAgo(1)},
		},
		[]models.CardPurchase{
			{Category: "Mercado", Amount: 600, PurchaseDate: monthsAgo(2)},
		},
	)
	if len(breakdown) != 0 {
		t.Errorf("past-month records leaked into breakdown: %+v", breakdown)
	}
}

func TestBuildExpenseBreakdown_InactiveFixedExcluded(t *testing.T) {
	breakdown := BuildExpenseBreakdown(testNow,
		[]models.FixedExpense{{Category: "rent", Amount: 2000, IsActive: false}},
		nil, nil,
	)
	if len(breakdown) != 0 {
		t.Errorf("inactive fixed expense in breakdown: %+v", breakdown)
	}
}

func TestBuildExpenseBreakdown_DefaultCategories(t *testing.T) {
	breakdown := BuildExpenseBreakdown(testNow,
		[]models.FixedExpense{{Amount: 100, IsActive: true}},
		nil,
		[]models.CardPurchase{{Amount: 50, PurchaseDate: testNow}},
	)

	byName := map[string]models.ExpenseBreakdownItem{}
	for _, item := range breakdown {
		byName[item.Name] = item
	}
	if item, ok := byName["Outros"]; !ok || item.Value != 100 {
		t.Errorf("uncategorized fixed expense = %+v, want Outros/100", item)
	}
	if item, ok := byName["Shopping"]; !ok || item.Value != 50 {
		t.Errorf("uncategorized card purchase = %+v, want Shopping/50", item)
	}
}

func TestBuildExpenseBreakdown_AmortizesCardPurchases(t *testing.T) {
	breakdown := BuildExpenseBreakdown(testNow, nil, nil,
		[]models.CardPurchase{
			{Category: "Viagem", Amount: 1200, PurchaseDate: testNow, IsInstallment: true, TotalInstallments: intPtr(12)},
		},
	)
	if len(breakdown) != 1 || breakdown[0].Value != 100 {
		t.Errorf("installment purchase breakdown = %+v, want Viagem/100", breakdown)
	}
}

func TestBuildExpenseBreakdown_MergesSameCategory(t *testing.T) {
	breakdown := BuildExpenseBreakdown(testNow,
		[]models.FixedExpense{{Category: "Mercado", Amount: 300, IsActive: true}},
		[]models.ExtraExpense{{Category: "Mercado", Amount: 200, ExpenseDate: testNow}},
		nil,
	)
	if len(breakdown) != 1 || breakdown[0].Value != 500 {
		t.Errorf("merged category = %+v, want Mercado/500", breakdown)
	}
}

func TestCategoryColor(t *testing.T) {
	if got := CategoryColor("Mercado"); got != "#10b981" {
		t.Errorf("CategoryColor(Mercado) = %s, want #10b981", got)
	}
	if got := CategoryColor("something-new"); got != defaultCategoryColor {
		t.Errorf("CategoryColor(unknown) = %s, want default gray", got)
	}
}
