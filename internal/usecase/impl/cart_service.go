package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetCart returns the user's cart lines with their products joined in.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) ([]*entity.CartEntry, error) {
	var entries []*entity.CartEntry
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CartRepo().ListCart(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list cart")
		}
		entries = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// AddToCart adds a product variant to the user's cart. When the exact
// (product, size, color) combination is already present, the quantities are
// merged into the existing line instead of creating a second row.
func (srv *cartService) AddToCart(ctx context.Context, userID uuid.UUID, input usecase.AddToCartInput) (*entity.CartItem, error) {
	if input.Quantity < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "quantity cannot be negative")
	}
	// An absent quantity binds to zero and means one unit.
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	size := normalizeVariant(input.Size)
	color := normalizeVariant(input.Color)

	srv.logger.Debug("Adding to cart",
		"userID", userID,
		"productID", input.ProductID,
		"quantity", input.Quantity,
	)

	var item *entity.CartItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		// The product must exist before a cart row can reference it. A bad
		// reference is a client input problem, not a lookup outcome.
		if _, err := repoFactory.ProductRepo().FindProductByID(ctx, input.ProductID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrValidationFailed.WithDetails("product " + input.ProductID.String() + " does not exist")
			}

			return errors.Wrap(err, "failed to find product")
		}

		existing, err := cartRepo.FindByVariant(ctx, userID, input.ProductID, size, color)
		switch {
		case err == nil:
			// Merge into the existing line.
			updated, err := cartRepo.UpdateQuantity(ctx, userID, existing.ID, existing.Quantity+input.Quantity)
			if err != nil {
				return errors.Wrap(err, "failed to merge cart item")
			}
			item = updated

			return nil

		case errors.Is(err, repository.ErrCartItemNotFound):
			newItem := &entity.CartItem{
				UserID:    userID,
				ProductID: input.ProductID,
				Quantity:  input.Quantity,
				Size:      size,
				Color:     color,
			}
			if err := cartRepo.CreateCartItem(ctx, newItem); err != nil {
				return errors.Wrap(err, "failed to create cart item")
			}
			item = newItem

			return nil

		default:
			return errors.Wrap(err, "failed to look up cart variant")
		}
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateCartItem sets the quantity of one of the user's cart lines.
func (srv *cartService) UpdateCartItem(ctx context.Context, userID, itemID uuid.UUID, input usecase.UpdateCartItemInput) (*entity.CartItem, error) {
	if input.Quantity <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be at least 1")
	}

	var item *entity.CartItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		updated, err := repoFactory.CartRepo().UpdateQuantity(ctx, userID, itemID, input.Quantity)
		if err != nil {
			if errors.Is(err, repository.ErrCartItemNotFound) {
				return errors.Wrap(domainerrors.ErrCartItemNotFound, itemID.String())
			}

			return errors.Wrap(err, "failed to update cart item")
		}
		item = updated

		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// RemoveCartItem deletes one of the user's cart lines.
func (srv *cartService) RemoveCartItem(ctx context.Context, userID, itemID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CartRepo().DeleteCartItem(ctx, userID, itemID); err != nil {
			if errors.Is(err, repository.ErrCartItemNotFound) {
				return errors.Wrap(domainerrors.ErrCartItemNotFound, itemID.String())
			}

			return errors.Wrap(err, "failed to delete cart item")
		}

		return nil
	})
}

// normalizeVariant collapses an absent selection to the empty string so the
// (user, product, size, color) uniqueness rule treats "no size" consistently.
func normalizeVariant(value string) string {
	return strings.TrimSpace(value)
}
