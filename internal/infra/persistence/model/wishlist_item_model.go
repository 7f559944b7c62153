package model

import "github.com/google/uuid"

// WishlistItemModel is the GORM-specific struct for the 'wishlist_items'
// table. The unique index guarantees toggling never double-inserts, even
// under concurrent calls.
type WishlistItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_items_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_items_user_product"`

	Product ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}
