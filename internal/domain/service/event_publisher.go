package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderPlacedEvent is published after an order commits. Downstream consumers
// (fulfilment, mail) react to it; the storefront never blocks on them.
type OrderPlacedEvent struct {
	OrderID   string          `json:"order_id"`
	UserID    string          `json:"user_id"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
	PlacedAt  time.Time       `json:"placed_at"`
	RequestID string          `json:"request_id,omitempty"`
}

// EventPublisher publishes storefront events to the configured broker.
type EventPublisher interface {
	// PublishOrderPlaced publishes an order-placed event.
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases broker resources.
	Close() error
}
