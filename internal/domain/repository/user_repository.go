package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserDuplicate is returned when the username or email is already taken.
	ErrUserDuplicate = errors.New("username or email already exists")
)

// UserRepository defines the interface for user account database operations.
type UserRepository interface {
	// CreateUser persists a new account and fills in generated fields.
	// Returns ErrUserDuplicate on a username or email conflict.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByUsername retrieves a user by its unique username.
	FindUserByUsername(ctx context.Context, username string) (*entity.User, error)
}
