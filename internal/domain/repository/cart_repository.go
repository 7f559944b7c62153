package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartItemNotFound is returned when a cart row does not exist or does
	// not belong to the given user.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines the interface for cart database operations.
// Mutations by row id are always scoped to the owning user so one user can
// never touch another user's rows.
type CartRepository interface {
	// ListCart retrieves all cart rows for a user with their products joined in.
	ListCart(ctx context.Context, userID uuid.UUID) ([]*entity.CartEntry, error)

	// FindByVariant retrieves the single cart row for the exact
	// (user, product, size, color) combination.
	// Returns ErrCartItemNotFound when no such row exists.
	FindByVariant(ctx context.Context, userID, productID uuid.UUID, size, color string) (*entity.CartItem, error)

	// CreateCartItem persists a new cart row and fills in the generated ID.
	CreateCartItem(ctx context.Context, item *entity.CartItem) error

	// UpdateQuantity sets the quantity of the user's cart row.
	// Returns ErrCartItemNotFound when the row is absent or owned by another user.
	UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.CartItem, error)

	// DeleteCartItem removes the user's cart row.
	// Returns ErrCartItemNotFound when the row is absent or owned by another user.
	DeleteCartItem(ctx context.Context, userID, itemID uuid.UUID) error

	// ClearCart removes all cart rows for the user.
	ClearCart(ctx context.Context, userID uuid.UUID) error
}
