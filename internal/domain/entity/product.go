package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item. It is shared by cart items, wishlist items and
// order items but owned by none of them; its lifecycle is independent.
type Product struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Price         decimal.Decimal  // Base price, always >= 0.
	DiscountPrice *decimal.Decimal // Optional discounted price; when set, it is the effective price.
	Category      string
	Tags          []string
	Images        []string // Ordered gallery, at least one entry.
	Stock         int
	Colors        []string
	Sizes         []string
	CreatedAt     time.Time
}

// EffectivePrice returns the price a buyer actually pays: the discount price
// when one is set, the base price otherwise.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}

	return p.Price
}
