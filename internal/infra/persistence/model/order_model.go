package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID             uuid.UUID           `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID         uuid.UUID           `gorm:"type:uuid;not null;index:idx_orders_user"`
	Status         string              `gorm:"type:varchar(20);not null;default:'pending'"`
	Total          decimal.Decimal     `gorm:"type:decimal(10,2);not null"`
	Address        ShippingAddressJSON `gorm:"not null"`
	IdempotencyKey *string             `gorm:"type:varchar(255);uniqueIndex:idx_orders_idempotency_key"`
	CreatedAt      time.Time           `gorm:"index:idx_orders_created_at"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// UnitPrice is the historical snapshot captured at purchase time.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_order_items_order"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Size      string          `gorm:"type:varchar(50);not null;default:''"`
	Color     string          `gorm:"type:varchar(50);not null;default:''"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
