package impl

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const defaultPriceTolerance = "0.01"

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager      repository.TransactionManager
	publisher      service.EventPublisher
	qrcodeService  service.QRCodeService
	priceTolerance decimal.Decimal
	logger         *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	qrcodeService service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) (usecase.OrderUsecase, error) {
	toleranceStr := defaultPriceTolerance
	if cfg.Checkout != nil && cfg.Checkout.PriceTolerance != "" {
		toleranceStr = cfg.Checkout.PriceTolerance
	}
	tolerance, err := decimal.NewFromString(toleranceStr)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid price tolerance %q", toleranceStr)
	}

	return &orderService{
		txManager:      txManager,
		publisher:      publisher,
		qrcodeService:  qrcodeService,
		priceTolerance: tolerance,
		logger:         logger,
	}, nil
}

// PlaceOrder creates an order from the submitted lines. The order row, its
// items and the cart cleanup commit or roll back as one transaction, so a
// failure anywhere leaves no partial order and an intact cart.
//
// Submitted prices are advisory only. Each line is re-priced from the
// catalog; a divergence beyond the configured tolerance rejects the whole
// order so a stale client cannot buy at an outdated price.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input usecase.PlaceOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrOrderEmpty
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "item quantity must be at least 1")
		}
	}

	srv.logger.Info("Placing order",
		"userID", userID,
		"itemCount", len(input.Items),
	)

	var order *entity.Order
	var replayed bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		// A retry carrying the same idempotency key returns the order the
		// first attempt created. The unique index on the key backs this up
		// against concurrent retries.
		if input.IdempotencyKey != "" {
			existing, err := orderRepo.FindOrderByIdempotencyKey(ctx, userID, input.IdempotencyKey)
			if err == nil {
				order = existing
				replayed = true

				return nil
			}
			if !errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(err, "failed to look up idempotency key")
			}
		}

		items, total, err := srv.priceOrderItems(ctx, repoFactory.ProductRepo(), input.Items)
		if err != nil {
			return err
		}

		newOrder := &entity.Order{
			UserID:         userID,
			Status:         entity.OrderStatusPending,
			Total:          total,
			Address:        input.Address,
			IdempotencyKey: input.IdempotencyKey,
			Items:          items,
		}
		if err := orderRepo.CreateOrder(ctx, newOrder); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		// The cart is emptied in the same transaction; a rollback restores it.
		if err := repoFactory.CartRepo().ClearCart(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		order = newOrder

		return nil
	})
	if err != nil {
		return nil, err
	}

	// A replayed order already had its event published by the first attempt.
	if !replayed {
		srv.publishOrderPlaced(ctx, order)
	}

	return order, nil
}

// priceOrderItems re-verifies every submitted line against the catalog and
// returns the authoritative items and order total, rounded to two decimal
// places.
func (srv *orderService) priceOrderItems(ctx context.Context, productRepo repository.ProductRepository, inputs []usecase.PlaceOrderItemInput) ([]entity.OrderItem, decimal.Decimal, error) {
	items := make([]entity.OrderItem, 0, len(inputs))
	total := decimal.Zero

	for _, input := range inputs {
		product, err := productRepo.FindProductByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, decimal.Zero, errors.Wrap(domainerrors.ErrProductNotFound, input.ProductID.String())
			}

			return nil, decimal.Zero, errors.Wrap(err, "failed to find product")
		}

		catalogPrice := product.EffectivePrice()
		if input.UnitPrice.Sub(catalogPrice).Abs().GreaterThan(srv.priceTolerance) {
			return nil, decimal.Zero, domainerrors.ErrPriceMismatch.WithDetails(
				fmt.Sprintf("product %s: submitted %s, catalog %s",
					product.ID, input.UnitPrice.StringFixed(2), catalogPrice.StringFixed(2)),
			)
		}

		items = append(items, entity.OrderItem{
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
			UnitPrice: catalogPrice,
			Size:      normalizeVariant(input.Size),
			Color:     normalizeVariant(input.Color),
		})
		total = total.Add(catalogPrice.Mul(decimal.NewFromInt(int64(input.Quantity))))
	}

	return items, total.Round(2), nil
}

// publishOrderPlaced emits the order-placed event after the transaction has
// committed. Publishing is best effort: the order already exists, so a broker
// failure is logged and swallowed rather than surfaced to the buyer.
func (srv *orderService) publishOrderPlaced(ctx context.Context, order *entity.Order) {
	event := &service.OrderPlacedEvent{
		OrderID:   order.ID.String(),
		UserID:    order.UserID.String(),
		Total:     order.Total,
		ItemCount: len(order.Items),
		PlacedAt:  order.CreatedAt,
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
	}

	if err := srv.publisher.PublishOrderPlaced(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish order-placed event",
			"orderID", order.ID,
			"error", err,
		)
	}
}

// GetOrder retrieves one of the user's orders with its items.
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindOrderByID(ctx, userID, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, orderID.String())
			}

			return errors.Wrap(err, "failed to find order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders retrieves the user's order history, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orders []*entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().ListOrders(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}
		orders = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// GenerateOrderQR renders a QR code for one of the user's orders. Ownership
// is checked first so order IDs cannot be probed through this endpoint.
func (srv *orderService) GenerateOrderQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetOrder(ctx, userID, orderID); err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateOrderQR(orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}
