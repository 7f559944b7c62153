package entity

import "github.com/google/uuid"

// WishlistItem marks a product as wished by a user. At most one row exists
// per (user, product); the toggle operation inserts or deletes it.
type WishlistItem struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
}

// WishlistEntry is the composite returned by wishlist reads, with the
// product joined in.
type WishlistEntry struct {
	WishlistItem
	Product Product
}
