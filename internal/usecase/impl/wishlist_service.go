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

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.WishlistUsecase {
	return &wishlistService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetWishlist returns the user's wishlist with products joined in.
func (srv *wishlistService) GetWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistEntry, error) {
	var entries []*entity.WishlistEntry
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.WishlistRepo().ListWishlist(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list wishlist")
		}
		entries = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// ToggleWishlist flips the wished state of a product for the user: present
// rows are removed, absent ones created. The check and the mutation share one
// transaction so concurrent toggles cannot double-insert.
func (srv *wishlistService) ToggleWishlist(ctx context.Context, userID, productID uuid.UUID) (*usecase.ToggleWishlistOutput, error) {
	srv.logger.Debug("Toggling wishlist", "userID", userID, "productID", productID)

	output := &usecase.ToggleWishlistOutput{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		wishlistRepo := repoFactory.WishlistRepo()

		if _, err := repoFactory.ProductRepo().FindProductByID(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, productID.String())
			}

			return errors.Wrap(err, "failed to find product")
		}

		existing, err := wishlistRepo.FindByUserAndProduct(ctx, userID, productID)
		switch {
		case err == nil:
			if err := wishlistRepo.DeleteWishlistItem(ctx, existing.ID); err != nil {
				return errors.Wrap(err, "failed to delete wishlist item")
			}
			output.Added = false

			return nil

		case errors.Is(err, repository.ErrWishlistItemNotFound):
			item := &entity.WishlistItem{
				UserID:    userID,
				ProductID: productID,
			}
			if err := wishlistRepo.CreateWishlistItem(ctx, item); err != nil {
				return errors.Wrap(err, "failed to create wishlist item")
			}
			output.Added = true
			output.Item = item

			return nil

		default:
			return errors.Wrap(err, "failed to look up wishlist item")
		}
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
