// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// ProductSort selects the ordering of a catalog listing.
type ProductSort string

const (
	SortPriceAsc  ProductSort = "price_asc"
	SortPriceDesc ProductSort = "price_desc"
	SortNewest    ProductSort = "newest"
)

// ProductFilter narrows and orders a catalog listing. Zero values mean
// "no constraint"; an empty Sort falls back to newest-first.
type ProductFilter struct {
	Category string      // Exact category match.
	Search   string      // Case-insensitive substring match on the product name.
	Sort     ProductSort // Ordering; defaults to SortNewest.
}

// ProductRepository defines the interface for catalog database operations.
type ProductRepository interface {
	// CreateProduct persists a new product and fills in generated fields.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its unique ID.
	// Returns ErrProductNotFound if no such product exists.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts returns the full filtered and sorted catalog. No pagination.
	ListProducts(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
}
