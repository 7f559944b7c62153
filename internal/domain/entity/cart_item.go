package entity

import "github.com/google/uuid"

// CartItem is one line in a user's cart: a product plus quantity and an
// optional size/color variant. At most one row exists per
// (user, product, size, color) combination; adding the same variant again
// merges into the existing row by incrementing its quantity.
type CartItem struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int    // Always >= 1.
	Size      string // Empty string when no size was selected.
	Color     string // Empty string when no color was selected.
}

// CartEntry is the composite returned by cart reads: the cart row together
// with its product joined in, so the contract is visible in the type system.
type CartEntry struct {
	CartItem
	Product Product
}
