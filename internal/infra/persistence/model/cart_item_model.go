package model

import "github.com/google/uuid"

// CartItemModel is the GORM-specific struct for the 'cart_items' table.
// The composite unique index backs the merge-on-match rule: at most one row
// per (user, product, size, color).
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_variant;index:idx_cart_items_user"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_variant"`
	Quantity  int       `gorm:"not null;default:1"`
	Size      string    `gorm:"type:varchar(50);not null;default:'';uniqueIndex:idx_cart_items_variant"`
	Color     string    `gorm:"type:varchar(50);not null;default:'';uniqueIndex:idx_cart_items_variant"`

	Product ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
