package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
// The only modeled transitions are pending -> shipped -> delivered.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// ShippingAddress is the structured destination captured on an order.
type ShippingAddress struct {
	FullName string `json:"full_name"`
	Street   string `json:"street"`
	City     string `json:"city"`
	PostCode string `json:"post_code"`
	Country  string `json:"country"`
	Phone    string `json:"phone,omitempty"`
}

// Order is a placed purchase. It is created atomically with its items;
// an order row never exists without its line items.
type Order struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Status         OrderStatus
	Total          decimal.Decimal // Sum of item unit price x quantity, two decimal places.
	Address        ShippingAddress
	IdempotencyKey string // Optional client token collapsing duplicate retries; empty when unused.
	Items          []OrderItem
	CreatedAt      time.Time
}

// OrderItem is one line of an order. UnitPrice is the price at the time of
// purchase, captured independently of the product's current price.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	Size      string
	Color     string
}
