package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// ListProductsInput narrows and orders a catalog listing. All fields are
// optional.
type ListProductsInput struct {
	Category string
	Search   string
	Sort     repository.ProductSort
}

// CreateProductInput defines the data required to add a catalog product.
type CreateProductInput struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	DiscountPrice *decimal.Decimal
	Category      string
	Tags          []string
	Images        []string
	Stock         int
	Colors        []string
	Sizes         []string
}

// CatalogUsecase defines the interface for catalog-related business operations.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, input ListProductsInput) ([]*entity.Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)
}
