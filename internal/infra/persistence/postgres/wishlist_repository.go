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

type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository creates a wishlist repository bound to the given DB
// handle, which may be a transaction.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) ListWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistEntry, error) {
	var itemModels []model.WishlistItemModel
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id").
		Find(&itemModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist items")
	}

	entries := make([]*entity.WishlistEntry, 0, len(itemModels))
	for i := range itemModels {
		entries = append(entries, &entity.WishlistEntry{
			WishlistItem: *toWishlistItemEntity(&itemModels[i]),
			Product:      *toProductEntity(&itemModels[i].Product),
		})
	}

	return entries, nil
}

func (r *wishlistRepository) FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.WishlistItem, error) {
	var itemModel model.WishlistItemModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&itemModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWishlistItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find wishlist item")
	}

	return toWishlistItemEntity(&itemModel), nil
}

func (r *wishlistRepository) CreateWishlistItem(ctx context.Context, item *entity.WishlistItem) error {
	itemModel := &model.WishlistItemModel{
		ID:        item.ID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
	}

	if err := r.db.WithContext(ctx).Omit("Product").Create(itemModel).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to create wishlist item")
	}

	*item = *toWishlistItemEntity(itemModel)

	return nil
}

func (r *wishlistRepository) DeleteWishlistItem(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.WishlistItemModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete wishlist item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWishlistItemNotFound
	}

	return nil
}

// --- Mappers ---

func toWishlistItemEntity(itemModel *model.WishlistItemModel) *entity.WishlistItem {
	return &entity.WishlistItem{
		ID:        itemModel.ID,
		UserID:    itemModel.UserID,
		ProductID: itemModel.ProductID,
	}
}
