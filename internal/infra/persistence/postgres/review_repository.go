package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a review repository bound to the given DB
// handle, which may be a transaction.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	reviewModel := toReviewModel(review)

	if err := r.db.WithContext(ctx).Create(reviewModel).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to create review")
	}

	*review = *toReviewEntity(reviewModel)

	return nil
}

func (r *reviewRepository) ListReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []model.ReviewModel
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviewModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for i := range reviewModels {
		reviews = append(reviews, toReviewEntity(&reviewModels[i]))
	}

	return reviews, nil
}

// --- Mappers ---

func toReviewModel(review *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:        review.ID,
		UserID:    review.UserID,
		ProductID: review.ProductID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

func toReviewEntity(reviewModel *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:        reviewModel.ID,
		UserID:    reviewModel.UserID,
		ProductID: reviewModel.ProductID,
		Rating:    reviewModel.Rating,
		Comment:   reviewModel.Comment,
		CreatedAt: reviewModel.CreatedAt,
	}
}
