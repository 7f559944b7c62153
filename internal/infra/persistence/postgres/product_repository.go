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

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a product repository bound to the given DB
// handle, which may be a transaction.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productModel := toProductModel(product)

	if err := r.db.WithContext(ctx).Create(productModel).Error; err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	*product = *toProductEntity(productModel)

	return nil
}

func (r *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productModel model.ProductModel
	if err := r.db.WithContext(ctx).First(&productModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductEntity(&productModel), nil
}

func (r *productRepository) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := r.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	switch filter.Sort {
	case repository.SortPriceAsc:
		query = query.Order("COALESCE(discount_price, price) ASC")
	case repository.SortPriceDesc:
		query = query.Order("COALESCE(discount_price, price) DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var productModels []model.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, toProductEntity(&productModels[i]))
	}

	return products, nil
}

// --- Mappers ---

func toProductModel(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		DiscountPrice: product.DiscountPrice,
		Category:      product.Category,
		Tags:          model.StringList(product.Tags),
		Images:        model.StringList(product.Images),
		Stock:         product.Stock,
		Colors:        model.StringList(product.Colors),
		Sizes:         model.StringList(product.Sizes),
		CreatedAt:     product.CreatedAt,
	}
}

func toProductEntity(productModel *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:            productModel.ID,
		Name:          productModel.Name,
		Description:   productModel.Description,
		Price:         productModel.Price,
		DiscountPrice: productModel.DiscountPrice,
		Category:      productModel.Category,
		Tags:          []string(productModel.Tags),
		Images:        []string(productModel.Images),
		Stock:         productModel.Stock,
		Colors:        []string(productModel.Colors),
		Sizes:         []string(productModel.Sizes),
		CreatedAt:     productModel.CreatedAt,
	}
}
