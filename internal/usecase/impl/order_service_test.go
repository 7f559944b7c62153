package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOrderService(t *testing.T, txManager repository.TransactionManager, publisher service.EventPublisher, qrService service.QRCodeService) usecase.OrderUsecase {
	t.Helper()

	svc, err := NewOrderService(txManager, publisher, qrService, &config.Config{}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	return svc
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	qrService := mockService.NewMockQRCodeService(t)

	factory.EXPECT().OrderRepo().Return(orderRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)
	factory.EXPECT().CartRepo().Return(cartRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := newTestOrderService(t, txManager, publisher, qrService)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	orderID := uuid.New()
	placedAt := time.Now()

	product := &entity.Product{
		ID:    productID,
		Name:  "Vintage Denim Jacket",
		Price: decimal.RequireFromString("39.99"),
	}

	productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(product, nil)

	orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			order.ID = orderID
			order.CreatedAt = placedAt

			return nil
		})

	cartRepo.EXPECT().
		ClearCart(ctx, userID).
		Return(nil)

	publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(nil)

	order, err := svc.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{
		Items: []usecase.PlaceOrderItemInput{
			{ProductID: productID, Quantity: 2, UnitPrice: decimal.RequireFromString("39.99"), Size: "M"},
		},
		Address: entity.ShippingAddress{
			FullName: "Alex Doe",
			Street:   "1 Main St",
			City:     "Springfield",
			PostCode: "12345",
			Country:  "US",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("79.98")),
		"expected total 79.98, got %s", order.Total)
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].UnitPrice.Equal(product.Price))
}

func TestOrderService_PlaceOrder_EmptyItems(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockService.NewMockEventPublisher(t)
	qrService := mockService.NewMockQRCodeService(t)
	svc := newTestOrderService(t, txManager, publisher, qrService)

	order, err := svc.PlaceOrder(context.Background(), uuid.New(), usecase.PlaceOrderInput{})
	assert.Nil(t, order)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ORDER_EMPTY", appErr.ErrorCode())
}

func TestOrderService_PlaceOrder_InvalidQuantity(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockService.NewMockEventPublisher(t)
	qrService := mockService.NewMockQRCodeService(t)
	svc := newTestOrderService(t, txManager, publisher, qrService)

	order, err := svc.PlaceOrder(context.Background(), uuid.New(), usecase.PlaceOrderInput{
		Items: []usecase.PlaceOrderItemInput{
			{ProductID: uuid.New(), Quantity: 0, UnitPrice: decimal.RequireFromString("10.00")},
		},
	})
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestOrderService_PlaceOrder_PriceMismatch(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	qrService := mockService.NewMockQRCodeService(t)

	factory.EXPECT().OrderRepo().Return(orderRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := newTestOrderService(t, txManager, publisher, qrService)

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, Price: decimal.RequireFromString("39.99")}, nil)

	// Stale client price diverges far beyond the tolerance. No order row and
	// no cart mutation may happen.
	order, err := svc.PlaceOrder(ctx, uuid.New(), usecase.PlaceOrderInput{
		Items: []usecase.PlaceOrderItemInput{
			{ProductID: productID, Quantity: 1, UnitPrice: decimal.RequireFromString("29.99")},
		},
	})
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRICE_MISMATCH", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), productID.String())
}

func TestOrderService_PlaceOrder_DiscountWithinTolerance(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	qrService := mockService.NewMockQRCodeService(t)

	factory.EXPECT().OrderRepo().Return(orderRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)
	factory.EXPECT().CartRepo().Return(cartRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := newTestOrderService(t, txManager, publisher, qrService)

	ctx := context.Background()
	productID := uuid.New()
	discount := decimal.RequireFromString("24.99")

	// The discount price is the effective price; the base price must not be
	// what checkout charges.
	productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{
			ID:            productID,
			Price:         decimal.RequireFromString("34.99"),
			DiscountPrice: &discount,
		}, nil)

	orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)
	cartRepo.EXPECT().
		ClearCart(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil)
	publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(nil)

	// Submitted price differs from the catalog by exactly the tolerance.
	order, err := svc.PlaceOrder(ctx, uuid.New(), usecase.PlaceOrderInput{
		Items: []usecase.PlaceOrderItemInput{
			{ProductID: productID, Quantity: 1, UnitPrice: decimal.RequireFromString("25.00")},
		},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].UnitPrice.Equal(discount))
	assert.True(t, order.Total.Equal(discount))
}

func TestOrderService_PlaceOrder_CreateFailureKeepsCart(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	qrService := mockService.NewMockQRCodeService(t)

	factory.EXPECT().OrderRepo().Return(orderRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := newTestOrderService(t, txManager, publisher, qrService)

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, Price: decimal.RequireFromString("10.00")}, nil)

	orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(errors.New("insert failed"))

	// ClearCart is never expected: a failed insert aborts the transaction
	// before the cart is touched, and no event may leak out.
	order, err := svc.PlaceOrder(ctx, uuid.New(), usecase.PlaceOrderInput{
		Items: []usecase.PlaceOrderItemInput{
			{ProductID: productID, Quantity: 1, UnitPrice: decimal.RequireFromString("10.00")},
		},
	})
	assert.Nil(t, order)
	assert.Error(t, err)
}

func TestOrderService_PlaceOrder_IdempotentReplay(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	qrService := mockService.NewMockQRCodeService(t)

	factory.EXPECT().OrderRepo().Return(orderRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := newTestOrderService(t, txManager, publisher, qrService)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Order{
		ID:             uuid.New(),
		UserID:         userID,
		Status:         entity.OrderStatusPending,
		Total:          decimal.RequireFromString("79.98"),
		IdempotencyKey: "retry-token-1",
	}

	orderRepo.EXPECT().
		FindOrderByIdempotencyKey(ctx, userID, "retry-token-1").
		Return(existing, nil)

	// No CreateOrder, no cart clearing, no second event.
	order, err := svc.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{
		Items: []usecase.PlaceOrderItemInput{
			{ProductID: uuid.New(), Quantity: 2, UnitPrice: decimal.RequireFromString("39.99")},
		},
		IdempotencyKey: "retry-token-1",
	})
	require.NoError(t, err)
	assert.Equal(t, existing, order)
}

func TestOrderService_PlaceOrder_PublishFailureIsNonFatal(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	qrService := mockService.NewMockQRCodeService(t)

	factory.EXPECT().OrderRepo().Return(orderRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)
	factory.EXPECT().CartRepo().Return(cartRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := newTestOrderService(t, txManager, publisher, qrService)

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, Price: decimal.RequireFromString("15.00")}, nil)
	orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)
	cartRepo.EXPECT().
		ClearCart(ctx, mock.AnythingOfType("uuid.UUID")).
		Return(nil)
	publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(errors.New("broker unavailable"))

	order, err := svc.PlaceOrder(ctx, uuid.New(), usecase.PlaceOrderInput{
		Items: []usecase.PlaceOrderItemInput{
			{ProductID: productID, Quantity: 1, UnitPrice: decimal.RequireFromString("15.00")},
		},
	})
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	qrService := mockService.NewMockQRCodeService(t)

	factory.EXPECT().OrderRepo().Return(orderRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := newTestOrderService(t, txManager, publisher, qrService)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	// An order owned by someone else surfaces exactly like a missing one.
	orderRepo.EXPECT().
		FindOrderByID(ctx, userID, orderID).
		Return(nil, repository.ErrOrderNotFound)

	order, err := svc.GetOrder(ctx, userID, orderID)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ORDER_NOT_FOUND", appErr.ErrorCode())
}

func TestOrderService_GenerateOrderQR(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	qrService := mockService.NewMockQRCodeService(t)

	factory.EXPECT().OrderRepo().Return(orderRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := newTestOrderService(t, txManager, publisher, qrService)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindOrderByID(ctx, userID, orderID).
		Return(&entity.Order{ID: orderID, UserID: userID}, nil)
	qrService.EXPECT().
		GenerateOrderQR(orderID).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := svc.GenerateOrderQR(ctx, userID, orderID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
