package impl

import (
	"context"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_GetCart(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	factory.EXPECT().CartRepo().Return(cartRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := NewCartService(txManager, slog.New(slog.DiscardHandler))

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.CartEntry{
		{
			CartItem: entity.CartItem{ID: uuid.New(), UserID: userID, Quantity: 2, Size: "M"},
			Product:  entity.Product{Name: "Vintage Denim Jacket", Price: decimal.RequireFromString("39.99")},
		},
	}

	cartRepo.EXPECT().
		ListCart(ctx, userID).
		Return(expected, nil)

	entries, err := svc.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}

func TestCartService_AddToCart_NewVariant(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory.EXPECT().CartRepo().Return(cartRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := NewCartService(txManager, slog.New(slog.DiscardHandler))

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	itemID := uuid.New()

	productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)
	cartRepo.EXPECT().
		FindByVariant(ctx, userID, productID, "M", "black").
		Return(nil, repository.ErrCartItemNotFound)
	cartRepo.EXPECT().
		CreateCartItem(ctx, mock.AnythingOfType("*entity.CartItem")).
		RunAndReturn(func(_ context.Context, item *entity.CartItem) error {
			item.ID = itemID

			return nil
		})

	item, err := svc.AddToCart(ctx, userID, usecase.AddToCartInput{
		ProductID: productID,
		Quantity:  2,
		Size:      "M",
		Color:     "black",
	})
	require.NoError(t, err)
	assert.Equal(t, itemID, item.ID)
	assert.Equal(t, 2, item.Quantity)
}

func TestCartService_AddToCart_MergesExistingVariant(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory.EXPECT().CartRepo().Return(cartRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := NewCartService(txManager, slog.New(slog.DiscardHandler))

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	itemID := uuid.New()

	productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)
	cartRepo.EXPECT().
		FindByVariant(ctx, userID, productID, "M", "").
		Return(&entity.CartItem{ID: itemID, UserID: userID, ProductID: productID, Quantity: 1, Size: "M"}, nil)

	// The same variant merges into the existing line, never a second row.
	cartRepo.EXPECT().
		UpdateQuantity(ctx, userID, itemID, 3).
		Return(&entity.CartItem{ID: itemID, UserID: userID, ProductID: productID, Quantity: 3, Size: "M"}, nil)

	item, err := svc.AddToCart(ctx, userID, usecase.AddToCartInput{
		ProductID: productID,
		Quantity:  2,
		Size:      "M",
	})
	require.NoError(t, err)
	assert.Equal(t, itemID, item.ID)
	assert.Equal(t, 3, item.Quantity)
}

func TestCartService_AddToCart_DistinctVariantIsNewLine(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory.EXPECT().CartRepo().Return(cartRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := NewCartService(txManager, slog.New(slog.DiscardHandler))

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)

	// Same product, different size: no match, fresh line.
	cartRepo.EXPECT().
		FindByVariant(ctx, userID, productID, "L", "").
		Return(nil, repository.ErrCartItemNotFound)
	cartRepo.EXPECT().
		CreateCartItem(ctx, mock.AnythingOfType("*entity.CartItem")).
		Return(nil)

	item, err := svc.AddToCart(ctx, userID, usecase.AddToCartInput{
		ProductID: productID,
		Quantity:  1,
		Size:      "L",
	})
	require.NoError(t, err)
	assert.Equal(t, "L", item.Size)
}

func TestCartService_AddToCart_ProductMissing(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory.EXPECT().CartRepo().Return(cartRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := NewCartService(txManager, slog.New(slog.DiscardHandler))

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	item, err := svc.AddToCart(ctx, uuid.New(), usecase.AddToCartInput{ProductID: productID, Quantity: 1})
	assert.Nil(t, item)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), productID.String())
}

func TestCartService_AddToCart_NegativeQuantity(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewCartService(txManager, slog.New(slog.DiscardHandler))

	item, err := svc.AddToCart(context.Background(), uuid.New(), usecase.AddToCartInput{
		ProductID: uuid.New(),
		Quantity:  -2,
	})
	assert.Nil(t, item)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCartService_UpdateCartItem_InvalidQuantity(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewCartService(txManager, slog.New(slog.DiscardHandler))

	item, err := svc.UpdateCartItem(context.Background(), uuid.New(), uuid.New(), usecase.UpdateCartItemInput{Quantity: 0})
	assert.Nil(t, item)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCartService_UpdateCartItem_NotOwned(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	factory.EXPECT().CartRepo().Return(cartRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := NewCartService(txManager, slog.New(slog.DiscardHandler))

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	// Another user's row is indistinguishable from a missing one.
	cartRepo.EXPECT().
		UpdateQuantity(ctx, userID, itemID, 5).
		Return(nil, repository.ErrCartItemNotFound)

	item, err := svc.UpdateCartItem(ctx, userID, itemID, usecase.UpdateCartItemInput{Quantity: 5})
	assert.Nil(t, item)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CART_ITEM_NOT_FOUND", appErr.ErrorCode())
}

func TestCartService_RemoveCartItem(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	factory.EXPECT().CartRepo().Return(cartRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := NewCartService(txManager, slog.New(slog.DiscardHandler))

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	cartRepo.EXPECT().
		DeleteCartItem(ctx, userID, itemID).
		Return(nil)

	require.NoError(t, svc.RemoveCartItem(ctx, userID, itemID))
}
