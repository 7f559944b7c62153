package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		txManager: txManager,
		logger:    logger,
	}
}

// AddReview records a rating for a product.
func (srv *reviewService) AddReview(ctx context.Context, userID, productID uuid.UUID, input usecase.AddReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "rating must be between 1 and 5")
	}

	review := &entity.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ProductRepo().FindProductByID(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, productID.String())
			}

			return errors.Wrap(err, "failed to find product")
		}

		if err := repoFactory.ReviewRepo().CreateReview(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// ListReviews returns all reviews for a product, newest first.
func (srv *reviewService) ListReviews(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	var reviews []*entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ProductRepo().FindProductByID(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, productID.String())
			}

			return errors.Wrap(err, "failed to find product")
		}

		found, err := repoFactory.ReviewRepo().ListReviewsByProduct(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}
		reviews = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return reviews, nil
}
