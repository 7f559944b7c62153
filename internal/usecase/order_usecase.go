package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// PlaceOrderItemInput is one submitted order line. UnitPrice is the price
// the client saw; it is re-verified against the catalog before the order
// is accepted.
type PlaceOrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	Size      string
	Color     string
}

// PlaceOrderInput defines the data required to place an order.
// IdempotencyKey is an optional client token; retries carrying the same key
// return the originally created order instead of placing a duplicate.
type PlaceOrderInput struct {
	Items          []PlaceOrderItemInput
	Address        entity.ShippingAddress
	IdempotencyKey string
}

// OrderUsecase defines the interface for order-related business operations.
// Every operation is scoped to the authenticated user.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, input PlaceOrderInput) (*entity.Order, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	GenerateOrderQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error)
}
