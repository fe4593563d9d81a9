package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"shorturl-be/internal/entities"
)

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string, role entities.Role) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
}

type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. A taken username yields ErrDuplicate.
func (r *userRepository) Create(ctx context.Context, username, passwordHash string, role entities.Role) (*entities.User, error) {
	query := `
		INSERT INTO "user" (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING user_id, username, password_hash, role, created_at
	`

	var user entities.User
	if err := r.db.GetContext(ctx, &user, query, username, passwordHash, role); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("username %q: %w", username, ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// FindByUsername finds a user by username
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	query := `
		SELECT user_id, username, password_hash, role, created_at
		FROM "user"
		WHERE username = $1
	`

	var user entities.User
	err := r.db.GetContext(ctx, &user, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}
