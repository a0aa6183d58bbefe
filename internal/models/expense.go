package models

import "time"

// FixedExpense is a recurring monthly obligation. Only active fixed
// expenses contribute to monthly totals.
type FixedExpense struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	DueDay    int       `json:"due_day"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExtraExpense is a one-off expense
type ExtraExpense struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	ExpenseDate time.Time `json:"expense_date"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}
