package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrWishlistItemNotFound is returned when a wishlist row is not found.
var ErrWishlistItemNotFound = errors.New("wishlist item not found")

// WishlistRepository defines the interface for wishlist database operations.
type WishlistRepository interface {
	// ListWishlist retrieves all wishlist rows for a user with their products joined in.
	ListWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistEntry, error)

	// FindByUserAndProduct retrieves the wishlist row for (user, product).
	// Returns ErrWishlistItemNotFound when no such row exists.
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.WishlistItem, error)

	// CreateWishlistItem persists a new wishlist row and fills in the generated ID.
	CreateWishlistItem(ctx context.Context, item *entity.WishlistItem) error

	// DeleteWishlistItem removes a wishlist row by its ID.
	DeleteWishlistItem(ctx context.Context, id uuid.UUID) error
}
