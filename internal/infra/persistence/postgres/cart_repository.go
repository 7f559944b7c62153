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

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a cart repository bound to the given DB handle,
// which may be a transaction.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) ListCart(ctx context.Context, userID uuid.UUID) ([]*entity.CartEntry, error) {
	var itemModels []model.CartItemModel
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id").
		Find(&itemModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	entries := make([]*entity.CartEntry, 0, len(itemModels))
	for i := range itemModels {
		entries = append(entries, &entity.CartEntry{
			CartItem: *toCartItemEntity(&itemModels[i]),
			Product:  *toProductEntity(&itemModels[i].Product),
		})
	}

	return entries, nil
}

func (r *cartRepository) FindByVariant(ctx context.Context, userID, productID uuid.UUID, size, color string) (*entity.CartItem, error) {
	var itemModel model.CartItemModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND size = ? AND color = ?", userID, productID, size, color).
		First(&itemModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by variant")
	}

	return toCartItemEntity(&itemModel), nil
}

func (r *cartRepository) CreateCartItem(ctx context.Context, item *entity.CartItem) error {
	itemModel := toCartItemModel(item)

	if err := r.db.WithContext(ctx).Omit("Product").Create(itemModel).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to create cart item")
	}

	*item = *toCartItemEntity(itemModel)

	return nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.CartItem, error) {
	result := r.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", quantity)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update cart item quantity")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCartItemNotFound
	}

	var itemModel model.CartItemModel
	if err := r.db.WithContext(ctx).First(&itemModel, "id = ?", itemID).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload cart item")
	}

	return toCartItemEntity(&itemModel), nil
}

func (r *cartRepository) DeleteCartItem(ctx context.Context, userID, itemID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

func (r *cartRepository) ClearCart(ctx context.Context, userID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItemModel{}).Error

	return errors.Wrap(err, "failed to clear cart")
}

// --- Mappers ---

func toCartItemModel(item *entity.CartItem) *model.CartItemModel {
	return &model.CartItemModel{
		ID:        item.ID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Size:      item.Size,
		Color:     item.Color,
	}
}

func toCartItemEntity(itemModel *model.CartItemModel) *entity.CartItem {
	return &entity.CartItem{
		ID:        itemModel.ID,
		UserID:    itemModel.UserID,
		ProductID: itemModel.ProductID,
		Quantity:  itemModel.Quantity,
		Size:      itemModel.Size,
		Color:     itemModel.Color,
	}
}
