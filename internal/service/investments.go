package service

import (
	"context"
	"strings"

	"github.com/mcosta/finance-dashboard/internal/models"
)

// PriceRefreshResult reports the outcome of a crypto price refresh batch
type PriceRefreshResult struct {
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// GetInvestments returns the current user's positions
func (s *Service) GetInvestments(ctx context.Context) ([]models.Investment, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.GetInvestments(userID)
}

// CreateInvestment creates a position
func (s *Service) CreateInvestment(ctx context.Context, inv *models.Investment) (*models.Investment, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	inv.UserID = userID
	if err := s.store.CreateInvestment(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// UpdateInvestment updates a position
func (s *Service) UpdateInvestment(ctx context.Context, inv *models.Investment) (*models.Investment, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	inv.UserID = userID
	if err := s.store.UpdateInvestment(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// DeleteInvestment removes a position
func (s *Service) DeleteInvestment(ctx context.Context, id string) error {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.store.DeleteInvestment(id, userID)
}

// RefreshCryptoPrices refreshes the current user's crypto positions from
// the quote source
func (s *Service) RefreshCryptoPrices(ctx context.Context) (*PriceRefreshResult, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.RefreshCryptoPricesForUser(userID)
}

// RefreshCryptoPricesForUser marks every crypto position of a user to
// market via the quote source. Quotes are crossed through USDT into the
// reference currency, with a direct BRL pair as fallback. A failure for
// one symbol never blocks the rest of the batch; the result counts
// partial failures instead of surfacing them as errors.
func (s *Service) RefreshCryptoPricesForUser(userID string) (*PriceRefreshResult, error) {
	investments, err := s.store.GetInvestmentsByType(userID, models.InvestmentTypeCrypto)
	if err != nil {
		return nil, err
	}
	result := &PriceRefreshResult{}
	if len(investments) == 0 {
		return result, nil
	}

	// Base quote: everything is priced through USDT -> BRL
	usdtBrl, err := s.quotes.Price("USDTBRL")
	if err != nil || usdtBrl <= 0 {
		s.log.Errorf("Failed to get USDT/BRL base quote: %v", err)
		result.Failed = len(investments)
		return result, nil
	}

	for _, inv := range investments {
		if inv.Symbol == "" {
			continue
		}
		symbol := strings.ToUpper(inv.Symbol)

		var price float64
		if symbol == "USDT" {
			price = usdtBrl
		} else {
			usdtPrice, err := s.quotes.Price(symbol + "USDT")
			if err == nil && usdtPrice > 0 {
				price = usdtPrice * usdtBrl
			} else {
				// Fallback: direct BRL pair
				brlPrice, brlErr := s.quotes.Price(symbol + "BRL")
				if brlErr != nil || brlPrice <= 0 {
					s.log.Warnf("No quote for %s (USDT cross: %v, BRL pair: %v)", symbol, err, brlErr)
					result.Failed++
					continue
				}
				price = brlPrice
			}
		}

		if err := s.store.UpdateInvestmentPrice(inv.ID, userID, price); err != nil {
			s.log.Errorf("Failed to store price for %s: %v", symbol, err)
			result.Failed++
			continue
		}
		result.Updated++
	}

	s.log.Infof("Crypto price refresh for user %s: %d updated, %d failed", userID, result.Updated, result.Failed)
	return result, nil
}
