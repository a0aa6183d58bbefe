package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcosta/finance-dashboard/internal/models"
)

// GetInvestments retrieves a user's investments, newest first
func (r *Repository) GetInvestments(userID string) ([]models.Investment, error) {
	return r.queryInvestments(`
		SELECT id, user_id, name, type, symbol, quantity, purchase_price, current_price, purchase_date, created_at, updated_at
		FROM finance.investments
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
}

// GetInvestmentsByType retrieves a user's investments of one type. Used
// by the crypto price refresh.
func (r *Repository) GetInvestmentsByType(userID, invType string) ([]models.Investment, error) {
	return r.queryInvestments(`
		SELECT id, user_id, name, type, symbol, quantity, purchase_price, current_price, purchase_date, created_at, updated_at
		FROM finance.investments
		WHERE user_id = $1 AND type = $2
		ORDER BY created_at DESC`, userID, invType)
}

func (r *Repository) queryInvestments(query string, args ...interface{}) ([]models.Investment, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	defer rows.Close()

	var investments []models.Investment
	for rows.Next() {
		var i models.Investment
		if err := rows.Scan(&i.ID, &i.UserID, &i.Name, &i.Type, &i.Symbol, &i.Quantity,
			&i.PurchasePrice, &i.CurrentPrice, &i.PurchaseDate, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan investment: %w", err)
		}
		investments = append(investments, i)
	}
	return investments, rows.Err()
}

// CreateInvestment creates a new position
func (r *Repository) CreateInvestment(i *models.Investment) error {
	i.ID = uuid.NewString()
	query := `
		INSERT INTO finance.investments (id, user_id, name, type, symbol, quantity, purchase_price, current_price, purchase_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query, i.ID, i.UserID, i.Name, i.Type, i.Symbol, i.Quantity,
		i.PurchasePrice, i.CurrentPrice, i.PurchaseDate).Scan(&i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create investment: %w", err)
	}
	return nil
}

// UpdateInvestment updates a position
func (r *Repository) UpdateInvestment(i *models.Investment) error {
	query := `
		UPDATE finance.investments
		SET name = $3, type = $4, symbol = $5, quantity = $6, purchase_price = $7, current_price = $8,
		    purchase_date = $9, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`
	err := r.db.QueryRow(query, i.ID, i.UserID, i.Name, i.Type, i.Symbol, i.Quantity,
		i.PurchasePrice, i.CurrentPrice, i.PurchaseDate).Scan(&i.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update investment: %w", err)
	}
	return nil
}

// UpdateInvestmentPrice updates only the mark-to-market price of a
// position. Used by the price refresh flow.
func (r *Repository) UpdateInvestmentPrice(id, userID string, price float64) error {
	res, err := r.db.Exec(`
		UPDATE finance.investments
		SET current_price = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2`, id, userID, price)
	if err != nil {
		return fmt.Errorf("failed to update investment price: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteInvestment removes a position
func (r *Repository) DeleteInvestment(id, userID string) error {
	res, err := r.db.Exec(`DELETE FROM finance.investments WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
