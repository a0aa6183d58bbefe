package service

import (
	"context"
	"time"

	"github.com/mcosta/finance-dashboard/internal/models"
)

// GetFixedExpenses returns the current user's recurring expenses
func (s *Service) GetFixedExpenses(ctx context.Context) ([]models.FixedExpense, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.GetFixedExpenses(userID)
}

// CreateFixedExpense creates a recurring expense
func (s *Service) CreateFixedExpense(ctx context.Context, e *models.FixedExpense) (*models.FixedExpense, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	e.UserID = userID
	if err := s.store.CreateFixedExpense(e); err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateFixedExpense updates a recurring expense, including toggling it
// active or inactive
func (s *Service) UpdateFixedExpense(ctx context.Context, e *models.FixedExpense) (*models.FixedExpense, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	e.UserID = userID
	if err := s.store.UpdateFixedExpense(e); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteFixedExpense removes a recurring expense
func (s *Service) DeleteFixedExpense(ctx context.Context, id string) error {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.store.DeleteFixedExpense(id, userID)
}

// GetExtraExpenses returns the current user's one-off expenses since the
// given time; a zero time returns everything.
func (s *Service) GetExtraExpenses(ctx context.Context, since time.Time) ([]models.ExtraExpense, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.GetExtraExpenses(userID, since)
}

// CreateExtraExpense creates a one-off expense
func (s *Service) CreateExtraExpense(ctx context.Context, e *models.ExtraExpense) (*models.ExtraExpense, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	e.UserID = userID
	if err := s.store.CreateExtraExpense(e); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteExtraExpense removes a one-off expense
func (s *Service) DeleteExtraExpense(ctx context.Context, id string) error {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.store.DeleteExtraExpense(id, userID)
}
