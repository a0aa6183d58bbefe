package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mcosta/finance-dashboard/internal/config"
	"github.com/mcosta/finance-dashboard/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrNotAuthenticated is returned when no user identity is available in
// the request context. Fatal for any operation.
var ErrNotAuthenticated = errors.New("user not authenticated")

// Store defines the ledger storage operations the service depends on.
// Every read is implicitly scoped to the requesting user.
type Store interface {
	CreateUser(user *models.User) error
	FindUserByEmail(email string) (*models.User, error)
	ListUsers() ([]models.User, error)

	GetProfile(userID string) (*models.Profile, error)
	UpdateProfile(p *models.Profile) error

	GetCreditCards(userID string) ([]models.CreditCard, error)
	CreateCreditCard(c *models.CreditCard) error
	UpdateCreditCard(c *models.CreditCard) error
	DeleteCreditCard(id, userID string) error

	GetCardPurchases(userID, cardID string) ([]models.CardPurchase, error)
	CreateCardPurchase(p *models.CardPurchase) error
	DeleteCardPurchase(id, userID string) error

	GetFixedExpenses(userID string) ([]models.FixedExpense, error)
	CreateFixedExpense(e *models.FixedExpense) error
	UpdateFixedExpense(e *models.FixedExpense) error
	DeleteFixedExpense(id, userID string) error

	GetExtraExpenses(userID string, since time.Time) ([]models.ExtraExpense, error)
	CreateExtraExpense(e *models.ExtraExpense) error
	DeleteExtraExpense(id, userID string) error

	GetInvestments(userID string) ([]models.Investment, error)
	GetInvestmentsByType(userID, invType string) ([]models.Investment, error)
	CreateInvestment(i *models.Investment) error
	UpdateInvestment(i *models.Investment) error
	UpdateInvestmentPrice(id, userID string, price float64) error
	DeleteInvestment(id, userID string) error

	GetIncomeSources(userID string) ([]models.IncomeSource, error)
	CreateIncomeSource(s *models.IncomeSource) error
	UpdateIncomeSource(s *models.IncomeSource) error
	DeleteIncomeSource(id, userID string) error

	GetIncomeHistory(userID, sourceID string, since time.Time) ([]models.IncomeHistory, error)
	CreateIncomeHistory(h *models.IncomeHistory) error
}

// QuoteSource returns the current unit price for a ticker symbol, or an
// error when the quote is unavailable.
type QuoteSource interface {
	Price(symbol string) (float64, error)
}

// Service handles business logic
type Service struct {
	store  Store
	quotes QuoteSource
	log    *logrus.Logger
	config *config.Config
}

// NewService initializes a new service
func NewService(store Store, quotes QuoteSource, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{store: store, quotes: quotes, log: log, config: cfg}
}

func (s *Service) userIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value("userID").(string)
	if !ok || userID == "" {
		return "", ErrNotAuthenticated
	}
	return userID, nil
}

// Register creates a new user with hashed password
func (s *Service) Register(username, email, password string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.store.CreateUser(user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.store.FindUserByEmail(email)
	if err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.ID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, nil
}

// ListUsers returns every user. Only background jobs use this; request
// handlers are always scoped to the authenticated user.
func (s *Service) ListUsers() ([]models.User, error) {
	return s.store.ListUsers()
}

// GetProfile returns the current user's profile
func (s *Service) GetProfile(ctx context.Context) (*models.Profile, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.GetProfile(userID)
}

// UpdateProfile updates the current user's profile
func (s *Service) UpdateProfile(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	p.ID = userID
	if err := s.store.UpdateProfile(p); err != nil {
		return nil, err
	}
	return p, nil
}
