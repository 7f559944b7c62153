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

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository bound to the given DB
// handle, which may be a transaction.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderModel := toOrderModel(order)

	// GORM inserts the order row and its items in one Create thanks to the
	// Items association. Inside txManager.Execute these statements share the
	// surrounding transaction, so a failed item insert never leaves an
	// orphaned order row.
	if err := r.db.WithContext(ctx).Create(orderModel).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to create order")
	}

	*order = *toOrderEntity(orderModel)

	return nil
}

func (r *orderRepository) FindOrderByID(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	var orderModel model.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&orderModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderEntity(&orderModel), nil
}

func (r *orderRepository) FindOrderByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*entity.Order, error) {
	var orderModel model.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND idempotency_key = ?", userID, key).
		First(&orderModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by idempotency key")
	}

	return toOrderEntity(&orderModel), nil
}

func (r *orderRepository) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []model.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, toOrderEntity(&orderModels[i]))
	}

	return orders, nil
}

// --- Mappers ---

func toOrderModel(order *entity.Order) *model.OrderModel {
	orderModel := &model.OrderModel{
		ID:     order.ID,
		UserID: order.UserID,
		Status: string(order.Status),
		Total:  order.Total,
		Address: model.ShippingAddressJSON{
			FullName: order.Address.FullName,
			Street:   order.Address.Street,
			City:     order.Address.City,
			PostCode: order.Address.PostCode,
			Country:  order.Address.Country,
			Phone:    order.Address.Phone,
		},
		CreatedAt: order.CreatedAt,
	}
	if order.IdempotencyKey != "" {
		key := order.IdempotencyKey
		orderModel.IdempotencyKey = &key
	}

	orderModel.Items = make([]model.OrderItemModel, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		orderModel.Items = append(orderModel.Items, model.OrderItemModel{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	return orderModel
}

func toOrderEntity(orderModel *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:     orderModel.ID,
		UserID: orderModel.UserID,
		Status: entity.OrderStatus(orderModel.Status),
		Total:  orderModel.Total,
		Address: entity.ShippingAddress{
			FullName: orderModel.Address.FullName,
			Street:   orderModel.Address.Street,
			City:     orderModel.Address.City,
			PostCode: orderModel.Address.PostCode,
			Country:  orderModel.Address.Country,
			Phone:    orderModel.Address.Phone,
		},
		CreatedAt: orderModel.CreatedAt,
	}
	if orderModel.IdempotencyKey != nil {
		order.IdempotencyKey = *orderModel.IdempotencyKey
	}

	order.Items = make([]entity.OrderItem, 0, len(orderModel.Items))
	for i := range orderModel.Items {
		itemModel := &orderModel.Items[i]
		order.Items = append(order.Items, entity.OrderItem{
			ID:        itemModel.ID,
			OrderID:   itemModel.OrderID,
			ProductID: itemModel.ProductID,
			Quantity:  itemModel.Quantity,
			UnitPrice: itemModel.UnitPrice,
			Size:      itemModel.Size,
			Color:     itemModel.Color,
		})
	}

	return order
}
