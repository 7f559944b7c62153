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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewService_AddReview_Success(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	factory.EXPECT().ProductRepo().Return(productRepo)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := NewReviewService(txManager, slog.New(slog.DiscardHandler))

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)
	reviewRepo.EXPECT().
		CreateReview(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)

	review, err := svc.AddReview(ctx, userID, productID, usecase.AddReviewInput{
		Rating:  5,
		Comment: "Fits perfectly.",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, userID, review.UserID)
}

func TestReviewService_AddReview_RatingOutOfRange(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewReviewService(txManager, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	for _, rating := range []int{0, 6, -3} {
		review, err := svc.AddReview(ctx, uuid.New(), uuid.New(), usecase.AddReviewInput{Rating: rating})
		assert.Nil(t, review)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	}
}

func TestReviewService_ListReviews_ProductMissing(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory.EXPECT().ProductRepo().Return(productRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := NewReviewService(txManager, slog.New(slog.DiscardHandler))

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	reviews, err := svc.ListReviews(ctx, productID)
	assert.Nil(t, reviews)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
}
