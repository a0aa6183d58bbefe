package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcosta/finance-dashboard/internal/models"
)

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(user *models.User) error {
	user.ID = uuid.NewString()
	query := `
		INSERT INTO finance.users (id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query, user.ID, user.Username, user.Email, user.PasswordHash).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	// Every user starts with an empty profile row
	profileQuery := `
		INSERT INTO finance.profiles (id, full_name, currency, language, created_at, updated_at)
		VALUES ($1, $2, 'BRL', 'pt', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`
	if _, err := r.db.Exec(profileQuery, user.ID, user.Username); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM finance.users
		WHERE email = $1`
	err := r.db.QueryRow(query, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// ListUsers retrieves all users. Used by scheduled jobs that run across
// the whole user base.
func (r *Repository) ListUsers() ([]models.User, error) {
	query := `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM finance.users
		ORDER BY created_at`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetProfile retrieves a user's profile
func (r *Repository) GetProfile(userID string) (*models.Profile, error) {
	p := &models.Profile{}
	query := `
		SELECT id, full_name, currency, language, created_at, updated_at
		FROM finance.profiles
		WHERE id = $1`
	err := r.db.QueryRow(query, userID).
		Scan(&p.ID, &p.FullName, &p.Currency, &p.Language, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// UpdateProfile updates a user's profile
func (r *Repository) UpdateProfile(p *models.Profile) error {
	query := `
		UPDATE finance.profiles
		SET full_name = $2, currency = $3, language = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at`
	err := r.db.QueryRow(query, p.ID, p.FullName, p.Currency, p.Language).Scan(&p.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}
