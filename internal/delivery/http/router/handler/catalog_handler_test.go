package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(uc, slog.New(slog.DiscardHandler))

	uc.EXPECT().
		ListProducts(mock.Anything, usecase.ListProductsInput{
			Category: "jackets",
			Sort:     repository.SortPriceDesc,
		}).
		Return([]*entity.Product{
			{ID: uuid.New(), Name: "Vintage Denim Jacket", Price: decimal.RequireFromString("39.99"), Images: []string{"a.jpg"}},
		}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/products?category=jackets&sort=price_desc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Vintage Denim Jacket")
}

func TestCatalogHandler_ListProducts_UnknownSort(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(uc, slog.New(slog.DiscardHandler))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/products?sort=alphabetical", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// The usecase must never be reached.
	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogHandler_GetProduct_MalformedID(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(uc, slog.New(slog.DiscardHandler))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/products/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestCatalogHandler_GetProduct_NotFoundPropagates(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(uc, slog.New(slog.DiscardHandler))

	productID := uuid.New()
	uc.EXPECT().
		GetProduct(mock.Anything, productID).
		Return(nil, domainerrors.ErrProductNotFound)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/products/"+productID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(productID.String())

	err := h.GetProduct(c)
	require.Error(t, err)

	// The central error handler maps this to a 404, not a 500.
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestCatalogHandler_CreateProduct(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(uc, slog.New(slog.DiscardHandler))

	productID := uuid.New()
	uc.EXPECT().
		CreateProduct(mock.Anything, mock.AnythingOfType("usecase.CreateProductInput")).
		RunAndReturn(func(_ context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
			return &entity.Product{
				ID:     productID,
				Name:   input.Name,
				Price:  input.Price,
				Images: input.Images,
			}, nil
		})

	body := `{"name":"Leather Boots","price":"89.99","images":["boots.jpg"],"stock":10}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), productID.String())
}

func TestCatalogHandler_CreateProduct_MissingName(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(uc, slog.New(slog.DiscardHandler))

	body := `{"price":"89.99","images":["boots.jpg"]}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateProduct(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
