package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// ToggleWishlistOutput reports the result of a wishlist toggle. Item is set
// only when the product was added.
type ToggleWishlistOutput struct {
	Added bool
	Item  *entity.WishlistItem
}

// WishlistUsecase defines the interface for wishlist-related business operations.
type WishlistUsecase interface {
	GetWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistEntry, error)
	ToggleWishlist(ctx context.Context, userID, productID uuid.UUID) (*ToggleWishlistOutput, error)
}
