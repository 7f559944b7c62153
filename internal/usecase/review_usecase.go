package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddReviewInput defines the data required to review a product.
type AddReviewInput struct {
	Rating  int
	Comment string
}

// ReviewUsecase defines the interface for product review business operations.
type ReviewUsecase interface {
	AddReview(ctx context.Context, userID, productID uuid.UUID, input AddReviewInput) (*entity.Review, error)
	ListReviews(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)
}
