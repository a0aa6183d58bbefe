package service

import (
	"context"
	"fmt"

	"github.com/mcosta/finance-dashboard/internal/models"
)

// GetCreditCards returns the current user's cards with purchases attached
func (s *Service) GetCreditCards(ctx context.Context) ([]models.CreditCard, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.GetCreditCards(userID)
}

// CreateCreditCard creates a card for the current user. New cards start
// with a zero balance regardless of input.
func (s *Service) CreateCreditCard(ctx context.Context, c *models.CreditCard) (*models.CreditCard, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	c.UserID = userID
	c.CurrentBalance = 0
	if err := s.store.CreateCreditCard(c); err != nil {
		return nil, err
	}
	s.log.Infof("Credit card created for user %s: %s", userID, c.Name)
	return c, nil
}

// UpdateCreditCard updates a card's own fields
func (s *Service) UpdateCreditCard(ctx context.Context, c *models.CreditCard) (*models.CreditCard, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	c.UserID = userID
	if err := s.store.UpdateCreditCard(c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCreditCard removes a card and its purchases
func (s *Service) DeleteCreditCard(ctx context.Context, id string) error {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.store.DeleteCreditCard(id, userID)
}

// GetCardPurchases returns the current user's purchases, optionally
// filtered to one card.
func (s *Service) GetCardPurchases(ctx context.Context, cardID string) ([]models.CardPurchase, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.GetCardPurchases(userID, cardID)
}

// CreateCardPurchase records a purchase against a card. The parent
// card's running balance is bumped by the full purchase amount in the
// same transaction; the amortized billing share is derived at read time.
func (s *Service) CreateCardPurchase(ctx context.Context, p *models.CardPurchase) (*models.CardPurchase, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if p.CardID == "" {
		return nil, fmt.Errorf("card_id is required")
	}
	if p.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	// Non-installment purchases carry no installment counters
	if !p.IsInstallment {
		p.TotalInstallments = nil
		p.CurrentInstallment = nil
	} else if p.CurrentInstallment == nil {
		first := 1
		p.CurrentInstallment = &first
	}
	p.UserID = userID
	if err := s.store.CreateCardPurchase(p); err != nil {
		return nil, err
	}
	s.log.Infof("Card purchase created for user %s: %.2f on card %s", userID, p.Amount, p.CardID)
	return p, nil
}

// DeleteCardPurchase removes a purchase and releases its amount from the
// parent card's balance
func (s *Service) DeleteCardPurchase(ctx context.Context, id string) error {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.store.DeleteCardPurchase(id, userID)
}
