package models

import "time"

// Investment types
const (
	InvestmentTypeStock      = "stock"
	InvestmentTypeETF        = "etf"
	InvestmentTypeBond       = "bond"
	InvestmentTypeMutualFund = "mutual_fund"
	InvestmentTypeCrypto     = "crypto"
	InvestmentTypeRealEstate = "real_estate"
)

// Investment represents a position in an asset. PurchasePrice is the cost
// basis per unit, CurrentPrice the mark-to-market per unit.
type Investment struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Symbol        string    `json:"symbol"` // optional, used for price lookup
	Quantity      float64   `json:"quantity"`
	PurchasePrice float64   `json:"purchase_price"`
	CurrentPrice  float64   `json:"current_price"`
	PurchaseDate  time.Time `json:"purchase_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
