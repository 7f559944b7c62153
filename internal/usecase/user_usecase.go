// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	FullName string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the authenticated user together with a fresh token pair.
type AuthOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// TokenPairOutput returns a refreshed token pair.
type TokenPairOutput struct {
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPairOutput, error)
	GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
