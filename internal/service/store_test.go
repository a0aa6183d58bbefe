package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mcosta/finance-dashboard/internal/config"
	"github.com/mcosta/finance-dashboard/internal/models"
	"github.com/mcosta/finance-dashboard/internal/repository"
	"github.com/sirupsen/logrus"
)

// fakeStore is an in-memory Store. Purchase mutations adjust the parent
// card's balance the way the real repository does inside its
// transaction, with a missing parent card being non-fatal.
type fakeStore struct {
	nextID      int
	users       []models.User
	profiles    map[string]*models.Profile
	cards       []models.CreditCard
	purchases   []models.CardPurchase
	fixed       []models.FixedExpense
	extra       []models.ExtraExpense
	investments []models.Investment
	sources     []models.IncomeSource
	history     []models.IncomeHistory
}

func newFakeStore() *fakeStore {
	return &fakeStore{profiles: map[string]*models.Profile{}}
}

func (f *fakeStore) genID() string {
	f.nextID++
	return fmt.Sprintf("id-%d", f.nextID)
}

func (f *fakeStore) CreateUser(u *models.User) error {
	u.ID = f.genID()
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeStore) FindUserByEmail(email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStore) ListUsers() ([]models.User, error) { return f.users, nil }

func (f *fakeStore) GetProfile(userID string) (*models.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakeStore) UpdateProfile(p *models.Profile) error {
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeStore) GetCreditCards(userID string) ([]models.CreditCard, error) {
	var out []models.CreditCard
	for _, c := range f.cards {
		if c.UserID != userID {
			continue
		}
		for _, p := range f.purchases {
			if p.CardID == c.ID {
				c.Purchases = append(c.Purchases, p)
			}
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeStore) CreateCreditCard(c *models.CreditCard) error {
	c.ID = f.genID()
	f.cards = append(f.cards, *c)
	return nil
}

func (f *fakeStore) UpdateCreditCard(c *models.CreditCard) error {
	for i := range f.cards {
		if f.cards[i].ID == c.ID && f.cards[i].UserID == c.UserID {
			c.CurrentBalance = f.cards[i].CurrentBalance
			f.cards[i] = *c
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeStore) DeleteCreditCard(id, userID string) error {
	for i := range f.cards {
		if f.cards[i].ID == id && f.cards[i].UserID == userID {
			f.cards = append(f.cards[:i], f.cards[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeStore) GetCardPurchases(userID, cardID string) ([]models.CardPurchase, error) {
	var out []models.CardPurchase
	for _, p := range f.purchases {
		if p.UserID == userID && (cardID == "" || p.CardID == cardID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) adjustCardBalance(cardID, userID string, delta float64) {
	for i := range f.cards {
		if f.cards[i].ID == cardID && f.cards[i].UserID == userID {
			f.cards[i].CurrentBalance += delta
			return
		}
	}
	// Missing parent card: balance adjustment is best-effort
}

func (f *fakeStore) CreateCardPurchase(p *models.CardPurchase) error {
	p.ID = f.genID()
	f.purchases = append(f.purchases, *p)
	f.adjustCardBalance(p.CardID, p.UserID, p.Amount)
	return nil
}

func (f *fakeStore) DeleteCardPurchase(id, userID string) error {
	for i := range f.purchases {
		if f.purchases[i].ID == id && f.purchases[i].UserID == userID {
			p := f.purchases[i]
			f.purchases = append(f.purchases[:i], f.purchases[i+1:]...)
			f.adjustCardBalance(p.CardID, userID, -p.Amount)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeStore) GetFixedExpenses(userID string) ([]models.FixedExpense, error) {
	var out []models.FixedExpense
	for _, e := range f.fixed {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateFixedExpense(e *models.FixedExpense) error {
	e.ID = f.genID()
	f.fixed = append(f.fixed, *e)
	return nil
}

func (f *fakeStore) UpdateFixedExpense(e *models.FixedExpense) error {
	for i := range f.fixed {
		if f.fixed[i].ID == e.ID && f.fixed[i].UserID == e.UserID {
			f.fixed[i] = *e
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeStore) DeleteFixedExpense(id, userID string) error {
	for i := range f.fixed {
		if f.fixed[i].ID == id && f.fixed[i].UserID == userID {
			f.fixed = append(f.fixed[:i], f.fixed[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeStore) GetExtraExpenses(userID string, since time.Time) ([]models.ExtraExpense, error) {
	var out []models.ExtraExpense
	for _, e := range f.extra {
		if e.UserID == userID && !e.ExpenseDate.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateExtraExpense(e *models.ExtraExpense) error {
	e.ID = f.genID()
	f.extra = append(f.extra, *e)
	return nil
}

func (f *fakeStore) DeleteExtraExpense(id, userID string) error {
	for i := range f.extra {
		if f.extra[i].ID == id && f.extra[i].UserID == userID {
			f.extra = append(f.extra[:i], f.extra[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeStore) GetInvestments(userID string) ([]models.Investment, error) {
	var out []models.Investment
	for _, i := range f.investments {
		if i.UserID == userID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeStore) GetInvestmentsByType(userID, invType string) ([]models.Investment, error) {
	var out []models.Investment
	for _, i := range f.investments {
		if i.UserID == userID && i.Type == invType {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateInvestment(inv *models.Investment) error {
	inv.ID = f.genID()
	f.investments = append(f.investments, *inv)
	return nil
}

func (f *fakeStore) UpdateInvestment(inv *models.Investment) error {
	for i := range f.investments {
		if f.investments[i].ID == inv.ID && f.investments[i].UserID == inv.UserID {
			f.investments[i] = *inv
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeStore) UpdateInvestmentPrice(id, userID string, price float64) error {
	for i := range f.investments {
		if f.investments[i].ID == id && f.investments[i].UserID == userID {
			f.investments[i].CurrentPrice = price
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeStore) DeleteInvestment(id, userID string) error {
	for i := range f.investments {
		if f.investments[i].ID == id && f.investments[i].UserID == userID {
			f.investments = append(f.investments[:i], f.investments[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeStore) GetIncomeSources(userID string) ([]models.IncomeSource, error) {
	var out []models.IncomeSource
	for _, s := range f.sources {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateIncomeSource(s *models.IncomeSource) error {
	s.ID = f.genID()
	f.sources = append(f.sources, *s)
	return nil
}

func (f *fakeStore) UpdateIncomeSource(s *models.IncomeSource) error {
	for i := range f.sources {
		if f.sources[i].ID == s.ID && f.sources[i].UserID == s.UserID {
			f.sources[i] = *s
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeStore) DeleteIncomeSource(id, userID string) error {
	for i := range f.sources {
		if f.sources[i].ID == id && f.sources[i].UserID == userID {
			f.sources = append(f.sources[:i], f.sources[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeStore) GetIncomeHistory(userID, sourceID string, since time.Time) ([]models.IncomeHistory, error) {
	var out []models.IncomeHistory
	for _, h := range f.history {
		if h.UserID == userID && !h.Date.Before(since) && (sourceID == "" || h.IncomeSourceID == sourceID) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateIncomeHistory(h *models.IncomeHistory) error {
	h.ID = f.genID()
	f.history = append(f.history, *h)
	return nil
}

// fakeQuotes serves canned prices per symbol
type fakeQuotes struct {
	prices map[string]float64
	calls  []string
}

func (q *fakeQuotes) Price(symbol string) (float64, error) {
	q.calls = append(q.calls, symbol)
	price, ok := q.prices[symbol]
	if !ok {
		return 0, fmt.Errorf("no ticker for %s", symbol)
	}
	return price, nil
}

func newTestService(store Store, quotes QuoteSource) *Service {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewService(store, quotes, log, &config.Config{JWTSecret: "test-secret"})
}

func authCtx(userID string) context.Context {
	return context.WithValue(context.Background(), "userID", userID)
}
