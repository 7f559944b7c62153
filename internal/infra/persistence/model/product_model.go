package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name          string           `gorm:"type:varchar(255);not null;index:idx_products_name"`
	Description   string           `gorm:"type:text;not null"`
	Price         decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	DiscountPrice *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Category      string           `gorm:"type:varchar(100);not null;index:idx_products_category"`
	Tags          StringList
	Images        StringList `gorm:"not null"`
	Stock         int        `gorm:"not null;default:0"`
	Colors        StringList
	Sizes         StringList
	CreatedAt     time.Time `gorm:"index:idx_products_created_at"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
