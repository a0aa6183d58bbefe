package models

import "time"

// CreditCard represents a user's credit card. CurrentBalance is a running
// total of all attached purchase amounts, maintained incrementally at
// purchase create/delete time.
type CreditCard struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	LastFour       string    `json:"last_four"`
	CreditLimit    float64   `json:"credit_limit"`
	CurrentBalance float64   `json:"current_balance"`
	DueDate        int       `json:"due_date"` // day of month
	Color          string    `json:"color"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Joined data
	Purchases []CardPurchase `json:"purchases,omitempty"`
}

// CardPurchase represents a purchase charged against a credit card.
// Amount is the full purchase amount, not the per-installment share.
// TotalInstallments and CurrentInstallment are nil unless IsInstallment.
type CardPurchase struct {
	ID                 string    `json:"id"`
	CardID             string    `json:"card_id"`
	UserID             string    `json:"user_id"`
	Description        string    `json:"description"`
	Amount             float64   `json:"amount"`
	PurchaseDate       time.Time `json:"purchase_date"`
	Category           string    `json:"category"`
	IsInstallment      bool      `json:"is_installment"`
	CurrentInstallment *int      `json:"current_installment"`
	TotalInstallments  *int      `json:"total_installments"`
	CreatedAt          time.Time `json:"created_at"`
}
