package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWishlistHandler_GetWishlist(t *testing.T) {
	uc := mockUsecase.NewMockWishlistUsecase(t)
	h := NewWishlistHandler(uc, slog.New(slog.DiscardHandler))

	userID := uuid.New()
	productID := uuid.New()
	uc.EXPECT().
		GetWishlist(mock.Anything, userID).
		Return([]*entity.WishlistEntry{
			{
				WishlistItem: entity.WishlistItem{ID: uuid.New(), UserID: userID, ProductID: productID},
				Product: entity.Product{
					ID:    productID,
					Name:  "Urban Hoodie",
					Price: decimal.RequireFromString("55.00"),
				},
			},
		}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/wishlist", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	require.NoError(t, h.GetWishlist(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Urban Hoodie")
}

func TestWishlistHandler_ToggleWishlist_Added(t *testing.T) {
	uc := mockUsecase.NewMockWishlistUsecase(t)
	h := NewWishlistHandler(uc, slog.New(slog.DiscardHandler))

	userID := uuid.New()
	productID := uuid.New()
	uc.EXPECT().
		ToggleWishlist(mock.Anything, userID, productID).
		Return(&usecase.ToggleWishlistOutput{
			Added: true,
			Item:  &entity.WishlistItem{ID: uuid.New(), UserID: userID, ProductID: productID},
		}, nil)

	body := `{"product_id":"` + productID.String() + `"}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/wishlist/toggle", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	require.NoError(t, h.ToggleWishlist(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"added":true`)
	assert.Contains(t, rec.Body.String(), "Added to wishlist")
}

func TestWishlistHandler_ToggleWishlist_Removed(t *testing.T) {
	uc := mockUsecase.NewMockWishlistUsecase(t)
	h := NewWishlistHandler(uc, slog.New(slog.DiscardHandler))

	userID := uuid.New()
	productID := uuid.New()
	uc.EXPECT().
		ToggleWishlist(mock.Anything, userID, productID).
		Return(&usecase.ToggleWishlistOutput{Added: false}, nil)

	body := `{"product_id":"` + productID.String() + `"}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/wishlist/toggle", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	require.NoError(t, h.ToggleWishlist(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"added":false`)
	assert.Contains(t, rec.Body.String(), "Removed from wishlist")
	assert.NotContains(t, rec.Body.String(), `"item"`)
}

func TestWishlistHandler_ToggleWishlist_MalformedID(t *testing.T) {
	uc := mockUsecase.NewMockWishlistUsecase(t)
	h := NewWishlistHandler(uc, slog.New(slog.DiscardHandler))

	body := `{"product_id":"not-a-uuid"}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/wishlist/toggle", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", uuid.New())

	require.NoError(t, h.ToggleWishlist(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}
