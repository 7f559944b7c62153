package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository defines the interface for order database operations.
type OrderRepository interface {
	// CreateOrder persists an order together with its line items.
	// Callers run this inside a transaction; a failure on any item must
	// roll back the order row as well.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves the user's order with its items.
	// Returns ErrOrderNotFound when absent or owned by another user.
	FindOrderByID(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// FindOrderByIdempotencyKey retrieves the user's order previously created
	// with the given idempotency key. Returns ErrOrderNotFound when no such
	// order exists.
	FindOrderByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*entity.Order, error)

	// ListOrders retrieves all orders for a user, newest first, items included.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
