package service

import (
	"context"
	"time"

	"github.com/mcosta/finance-dashboard/internal/models"
)

// GetIncomeSources returns the current user's income sources
func (s *Service) GetIncomeSources(ctx context.Context) ([]models.IncomeSource, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.GetIncomeSources(userID)
}

// CreateIncomeSource creates a recurring income source
func (s *Service) CreateIncomeSource(ctx context.Context, src *models.IncomeSource) (*models.IncomeSource, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	src.UserID = userID
	if err := s.store.CreateIncomeSource(src); err != nil {
		return nil, err
	}
	return src, nil
}

// UpdateIncomeSource updates a recurring income source
func (s *Service) UpdateIncomeSource(ctx context.Context, src *models.IncomeSource) (*models.IncomeSource, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	src.UserID = userID
	if err := s.store.UpdateIncomeSource(src); err != nil {
		return nil, err
	}
	return src, nil
}

// DeleteIncomeSource removes an income source and its history
func (s *Service) DeleteIncomeSource(ctx context.Context, id string) error {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.store.DeleteIncomeSource(id, userID)
}

// GetIncomeHistory returns the current user's realized income events
// since the given time, optionally filtered to one source.
func (s *Service) GetIncomeHistory(ctx context.Context, sourceID string, since time.Time) ([]models.IncomeHistory, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.GetIncomeHistory(userID, sourceID, since)
}

// CreateIncomeHistory records a realized income event
func (s *Service) CreateIncomeHistory(ctx context.Context, h *models.IncomeHistory) (*models.IncomeHistory, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	h.UserID = userID
	if err := s.store.CreateIncomeHistory(h); err != nil {
		return nil, err
	}
	return h, nil
}
