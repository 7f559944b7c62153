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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListProducts returns the filtered and sorted catalog.
func (srv *catalogService) ListProducts(ctx context.Context, input usecase.ListProductsInput) ([]*entity.Product, error) {
	filter := repository.ProductFilter{
		Category: input.Category,
		Search:   input.Search,
		Sort:     input.Sort,
	}

	var products []*entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().ListProducts(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}
		products = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// GetProduct retrieves a single product by ID.
func (srv *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().FindProductByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, productID.String())
			}

			return errors.Wrap(err, "failed to find product")
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// CreateProduct adds a product to the catalog. Admin only, enforced at the
// delivery layer.
func (srv *catalogService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	srv.logger.Info("Creating product", "name", input.Name, "category", input.Category)

	if err := validateCreateProduct(input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		DiscountPrice: input.DiscountPrice,
		Category:      input.Category,
		Tags:          input.Tags,
		Images:        input.Images,
		Stock:         input.Stock,
		Colors:        input.Colors,
		Sizes:         input.Sizes,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProductRepo().CreateProduct(ctx, product); err != nil {
			return errors.Wrap(domainerrors.ErrProductCreationFailed, err.Error())
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

func validateCreateProduct(input usecase.CreateProductInput) error {
	if input.Name == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "name is required")
	}
	if input.Price.IsNegative() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "price must not be negative")
	}
	if input.DiscountPrice != nil {
		if input.DiscountPrice.IsNegative() {
			return errors.Wrap(domainerrors.ErrValidationFailed, "discount price must not be negative")
		}
		if input.DiscountPrice.GreaterThan(input.Price) {
			return errors.Wrap(domainerrors.ErrValidationFailed, "discount price must not exceed the base price")
		}
	}
	if len(input.Images) == 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "at least one image is required")
	}
	if input.Stock < 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "stock must not be negative")
	}

	return nil
}
