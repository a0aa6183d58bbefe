package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcosta/finance-dashboard/internal/models"
)

// GetFixedExpenses retrieves a user's fixed expenses ordered by due day
func (r *Repository) GetFixedExpenses(userID string) ([]models.FixedExpense, error) {
	query := `
		SELECT id, user_id, name, amount, category, due_day, is_active, created_at, updated_at
		FROM finance.fixed_expenses
		WHERE user_id = $1
		ORDER BY due_day`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.FixedExpense
	for rows.Next() {
		var e models.FixedExpense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.Amount, &e.Category,
			&e.DueDay, &e.IsActive, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fixed expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// CreateFixedExpense creates a recurring expense
func (r *Repository) CreateFixedExpense(e *models.FixedExpense) error {
	e.ID = uuid.NewString()
	query := `
		INSERT INTO finance.fixed_expenses (id, user_id, name, amount, category, due_day, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query, e.ID, e.UserID, e.Name, e.Amount, e.Category, e.DueDay, e.IsActive).
		Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create fixed expense: %w", err)
	}
	return nil
}

// UpdateFixedExpense updates a recurring expense, including its active
// toggle
func (r *Repository) UpdateFixedExpense(e *models.FixedExpense) error {
	query := `
		UPDATE finance.fixed_expenses
		SET name = $3, amount = $4, category = $5, due_day = $6, is_active = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`
	err := r.db.QueryRow(query, e.ID, e.UserID, e.Name, e.Amount, e.Category, e.DueDay, e.IsActive).
		Scan(&e.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update fixed expense: %w", err)
	}
	return nil
}

// DeleteFixedExpense removes a recurring expense
func (r *Repository) DeleteFixedExpense(id, userID string) error {
	res, err := r.db.Exec(`DELETE FROM finance.fixed_expenses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete fixed expense: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetExtraExpenses retrieves a user's one-off expenses dated on or after
// since, newest first.
func (r *Repository) GetExtraExpenses(userID string, since time.Time) ([]models.ExtraExpense, error) {
	query := `
		SELECT id, user_id, description, amount, expense_date, category, created_at
		FROM finance.extra_expenses
		WHERE user_id = $1 AND expense_date >= $2
		ORDER BY expense_date DESC`
	rows, err := r.db.Query(query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list extra expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.ExtraExpense
	for rows.Next() {
		var e models.ExtraExpense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Amount,
			&e.ExpenseDate, &e.Category, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan extra expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// CreateExtraExpense creates a one-off expense
func (r *Repository) CreateExtraExpense(e *models.ExtraExpense) error {
	e.ID = uuid.NewString()
	query := `
		INSERT INTO finance.extra_expenses (id, user_id, description, amount, expense_date, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRow(query, e.ID, e.UserID, e.Description, e.Amount, e.ExpenseDate, e.Category).
		Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create extra expense: %w", err)
	}
	return nil
}

// DeleteExtraExpense removes a one-off expense
func (r *Repository) DeleteExtraExpense(id, userID string) error {
	res, err := r.db.Exec(`DELETE FROM finance.extra_expenses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete extra expense: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
