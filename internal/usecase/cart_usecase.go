package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddToCartInput defines the data required to add a product to the cart.
// Size and Color are optional variant selections; an absent selection is
// normalized to the empty string before matching.
type AddToCartInput struct {
	ProductID uuid.UUID
	Quantity  int
	Size      string
	Color     string
}

// UpdateCartItemInput defines the data required to change a cart line.
type UpdateCartItemInput struct {
	Quantity int
}

// CartUsecase defines the interface for cart-related business operations.
// Every operation is scoped to the authenticated user.
type CartUsecase interface {
	GetCart(ctx context.Context, userID uuid.UUID) ([]*entity.CartEntry, error)
	AddToCart(ctx context.Context, userID uuid.UUID, input AddToCartInput) (*entity.CartItem, error)
	UpdateCartItem(ctx context.Context, userID, itemID uuid.UUID, input UpdateCartItemInput) (*entity.CartItem, error)
	RemoveCartItem(ctx context.Context, userID, itemID uuid.UUID) error
}
