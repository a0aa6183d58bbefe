package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcosta/finance-dashboard/internal/models"
)

// GetCreditCards retrieves all of a user's cards with their purchases
// attached, newest card first.
func (r *Repository) GetCreditCards(userID string) ([]models.CreditCard, error) {
	query := `
		SELECT id, user_id, name, last_four, credit_limit, current_balance, due_date, color, created_at, updated_at
		FROM finance.credit_cards
		WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit cards: %w", err)
	}
	defer rows.Close()

	var cards []models.CreditCard
	for rows.Next() {
		var c models.CreditCard
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.LastFour, &c.CreditLimit,
			&c.CurrentBalance, &c.DueDate, &c.Color, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan credit card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	purchases, err := r.GetCardPurchases(userID, "")
	if err != nil {
		return nil, err
	}
	attachPurchases(cards, purchases)
	return cards, nil
}

// attachPurchases groups purchases onto their parent cards in one pass,
// avoiding a per-card query.
func attachPurchases(cards []models.CreditCard, purchases []models.CardPurchase) {
	byCard := make(map[string][]models.CardPurchase)
	for _, p := range purchases {
		byCard[p.CardID] = append(byCard[p.CardID], p)
	}
	for i := range cards {
		cards[i].Purchases = byCard[cards[i].ID]
	}
}

// CreateCreditCard creates a new card for a user
func (r *Repository) CreateCreditCard(c *models.CreditCard) error {
	c.ID = uuid.NewString()
	query := `
		INSERT INTO finance.credit_cards (id, user_id, name, last_four, credit_limit, current_balance, due_date, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query, c.ID, c.UserID, c.Name, c.LastFour, c.CreditLimit,
		c.CurrentBalance, c.DueDate, c.Color).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create credit card: %w", err)
	}
	return nil
}

// UpdateCreditCard updates a card's own fields. The running balance is
// only ever touched through purchase mutations.
func (r *Repository) UpdateCreditCard(c *models.CreditCard) error {
	query := `
		UPDATE finance.credit_cards
		SET name = $3, last_four = $4, credit_limit = $5, due_date = $6, color = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`
	err := r.db.QueryRow(query, c.ID, c.UserID, c.Name, c.LastFour, c.CreditLimit, c.DueDate, c.Color).
		Scan(&c.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update credit card: %w", err)
	}
	return nil
}

// DeleteCreditCard deletes a card and, via FK cascade, its purchases
func (r *Repository) DeleteCreditCard(id, userID string) error {
	res, err := r.db.Exec(`DELETE FROM finance.credit_cards WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete credit card: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetCardPurchases retrieves a user's purchases, newest first, optionally
// filtered to a single card.
func (r *Repository) GetCardPurchases(userID, cardID string) ([]models.CardPurchase, error) {
	query := `
		SELECT id, card_id, user_id, description, amount, purchase_date, category,
		       is_installment, current_installment, total_installments, created_at
		FROM finance.card_purchases
		WHERE user_id = $1 AND ($2 = '' OR card_id = $2)
		ORDER BY purchase_date DESC`
	rows, err := r.db.Query(query, userID, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list card purchases: %w", err)
	}
	defer rows.Close()

	var purchases []models.CardPurchase
	for rows.Next() {
		var p models.CardPurchase
		if err := rows.Scan(&p.ID, &p.CardID, &p.UserID, &p.Description, &p.Amount, &p.PurchaseDate,
			&p.Category, &p.IsInstallment, &p.CurrentInstallment, &p.TotalInstallments, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan card purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}

// CreateCardPurchase inserts a purchase and bumps the parent card's
// running balance by the full purchase amount in the same transaction.
// The balance update is a single relative UPDATE, so concurrent inserts
// against one card serialize at the row and cannot lose increments. A
// missing parent card does not fail the insert: the balance adjustment
// is best-effort.
func (r *Repository) CreateCardPurchase(p *models.CardPurchase) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	p.ID = uuid.NewString()
	query := `
		INSERT INTO finance.card_purchases (id, card_id, user_id, description, amount, purchase_date,
		                                    category, is_installment, current_installment, total_installments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err = tx.QueryRow(query, p.ID, p.CardID, p.UserID, p.Description, p.Amount, p.PurchaseDate,
		p.Category, p.IsInstallment, p.CurrentInstallment, p.TotalInstallments).Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create card purchase: %w", err)
	}

	_, err = tx.Exec(`
		UPDATE finance.credit_cards
		SET current_balance = current_balance + $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND user_id = $3`,
		p.Amount, p.CardID, p.UserID)
	if err != nil {
		return fmt.Errorf("failed to adjust card balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit purchase: %w", err)
	}
	return nil
}

// DeleteCardPurchase removes a purchase and releases its amount from the
// parent card's balance in the same transaction.
func (r *Repository) DeleteCardPurchase(id, userID string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var amount float64
	var cardID string
	err = tx.QueryRow(`
		SELECT amount, card_id FROM finance.card_purchases
		WHERE id = $1 AND user_id = $2`, id, userID).Scan(&amount, &cardID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to find card purchase: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM finance.card_purchases WHERE id = $1 AND user_id = $2`, id, userID); err != nil {
		return fmt.Errorf("failed to delete card purchase: %w", err)
	}

	_, err = tx.Exec(`
		UPDATE finance.credit_cards
		SET current_balance = current_balance - $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND user_id = $3`,
		amount, cardID, userID)
	if err != nil {
		return fmt.Errorf("failed to adjust card balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit purchase deletion: %w", err)
	}
	return nil
}
