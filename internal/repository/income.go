package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcosta/finance-dashboard/internal/models"
)

// GetIncomeSources retrieves a user's income sources, newest first
func (r *Repository) GetIncomeSources(userID string) ([]models.IncomeSource, error) {
	query := `
		SELECT id, user_id, name, type, amount, frequency, source, is_active, created_at, updated_at
		FROM finance.income_sources
		WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list income sources: %w", err)
	}
	defer rows.Close()

	var sources []models.IncomeSource
	for rows.Next() {
		var s models.IncomeSource
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Type, &s.Amount,
			&s.Frequency, &s.Source, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan income source: %w", err)
		}
		sources = append(sources, s)
	}
	return sources, rows.Err()
}

// CreateIncomeSource creates a recurring income source
func (r *Repository) CreateIncomeSource(s *models.IncomeSource) error {
	s.ID = uuid.NewString()
	query := `
		INSERT INTO finance.income_sources (id, user_id, name, type, amount, frequency, source, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query, s.ID, s.UserID, s.Name, s.Type, s.Amount, s.Frequency, s.Source, s.IsActive).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create income source: %w", err)
	}
	return nil
}

// UpdateIncomeSource updates a recurring income source
func (r *Repository) UpdateIncomeSource(s *models.IncomeSource) error {
	query := `
		UPDATE finance.income_sources
		SET name = $3, type = $4, amount = $5, frequency = $6, source = $7, is_active = $8, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`
	err := r.db.QueryRow(query, s.ID, s.UserID, s.Name, s.Type, s.Amount, s.Frequency, s.Source, s.IsActive).
		Scan(&s.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update income source: %w", err)
	}
	return nil
}

// DeleteIncomeSource removes an income source and, via FK cascade, its
// history
func (r *Repository) DeleteIncomeSource(id, userID string) error {
	res, err := r.db.Exec(`DELETE FROM finance.income_sources WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete income source: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetIncomeHistory retrieves a user's realized income events dated on or
// after since, newest first, optionally filtered to one source.
func (r *Repository) GetIncomeHistory(userID, sourceID string, since time.Time) ([]models.IncomeHistory, error) {
	query := `
		SELECT id, income_source_id, user_id, amount, date, notes, created_at
		FROM finance.income_history
		WHERE user_id = $1 AND date >= $2 AND ($3 = '' OR income_source_id = $3)
		ORDER BY date DESC`
	rows, err := r.db.Query(query, userID, since, sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list income history: %w", err)
	}
	defer rows.Close()

	var history []models.IncomeHistory
	for rows.Next() {
		var h models.IncomeHistory
		if err := rows.Scan(&h.ID, &h.IncomeSourceID, &h.UserID, &h.Amount,
			&h.Date, &h.Notes, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan income history: %w", err)
		}
		history = append(history, h)
	}
	return history, rows.Err()
}

// CreateIncomeHistory records a realized income event
func (r *Repository) CreateIncomeHistory(h *models.IncomeHistory) error {
	h.ID = uuid.NewString()
	query := `
		INSERT INTO finance.income_history (id, income_source_id, user_id, amount, date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRow(query, h.ID, h.IncomeSourceID, h.UserID, h.Amount, h.Date, h.Notes).
		Scan(&h.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create income history: %w", err)
	}
	return nil
}
