package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository defines the interface for product review database operations.
type ReviewRepository interface {
	// CreateReview persists a new review and fills in generated fields.
	CreateReview(ctx context.Context, review *entity.Review) error

	// ListReviewsByProduct retrieves all reviews for a product, newest first.
	ListReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)
}
