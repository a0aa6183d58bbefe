package models

import "time"

// Income source types
const (
	IncomeTypeActive      = "active"
	IncomeTypePassive     = "passive"
	IncomeTypeAlternative = "alternative"
)

// Income frequencies
const (
	FrequencyWeekly    = "weekly"
	FrequencyBiWeekly  = "bi-weekly"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyAnnually  = "annually"
)

// IncomeSource represents a recurring income source
type IncomeSource struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Frequency string    `json:"frequency"`
	Source    string    `json:"source"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IncomeHistory is a realized income event tied to an IncomeSource.
// History records are preferred over projections when reconstructing
// historical months.
type IncomeHistory struct {
	ID             string    `json:"id"`
	IncomeSourceID string    `json:"income_source_id"`
	UserID         string    `json:"user_id"`
	Amount         float64   `json:"amount"`
	Date           time.Time `json:"date"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}
