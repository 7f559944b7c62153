package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CatalogHandler holds dependencies for catalog browsing and administration.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProducts returns the filtered and sorted catalog.
// Query parameters: category, search, sort (price_asc, price_desc, newest).
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	input := usecase.ListProductsInput{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}

	switch sort := c.QueryParam("sort"); sort {
	case "":
		input.Sort = repository.SortNewest
	case string(repository.SortPriceAsc), string(repository.SortPriceDesc), string(repository.SortNewest):
		input.Sort = repository.ProductSort(sort)
	default:
		return response.BadRequest(c, "INVALID_INPUT", "Unknown sort: "+sort)
	}

	products, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "Products retrieved successfully")
}

// GetProduct returns one product by ID.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "Product retrieved successfully")
}

type createProductRequest struct {
	Name          string           `json:"name" validate:"required,max=256"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price" validate:"required"`
	DiscountPrice *decimal.Decimal `json:"discount_price"`
	Category      string           `json:"category"`
	Tags          []string         `json:"tags"`
	Images        []string         `json:"images" validate:"required,min=1"`
	Stock         int              `json:"stock" validate:"gte=0"`
	Colors        []string         `json:"colors"`
	Sizes         []string         `json:"sizes"`
}

// CreateProduct adds a product to the catalog. Admin only.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Category:      req.Category,
		Tags:          req.Tags,
		Images:        req.Images,
		Stock:         req.Stock,
		Colors:        req.Colors,
		Sizes:         req.Sizes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product), "Product created successfully")
}
