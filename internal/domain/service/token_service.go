package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and validates the JWT pair backing session identity.
type TokenService interface {
	// GenerateTokens creates an access token carrying the user's roles and a
	// refresh token carrying only the subject.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken parses and verifies an access token.
	ValidateAccessToken(tokenString string) (*jwt.Token, error)

	// ValidateRefreshToken parses and verifies a refresh token.
	ValidateRefreshToken(tokenString string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
