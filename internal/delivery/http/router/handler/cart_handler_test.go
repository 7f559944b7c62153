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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartHandler_GetCart_Unauthenticated(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, slog.New(slog.DiscardHandler))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// No userID on the context: the middleware did not run.
	require.NoError(t, h.GetCart(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartHandler_AddToCart(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, slog.New(slog.DiscardHandler))

	userID := uuid.New()
	productID := uuid.New()
	itemID := uuid.New()

	uc.EXPECT().
		AddToCart(mock.Anything, userID, usecase.AddToCartInput{
			ProductID: productID,
			Quantity:  2,
			Size:      "M",
			Color:     "black",
		}).
		Return(&entity.CartItem{
			ID:        itemID,
			UserID:    userID,
			ProductID: productID,
			Quantity:  2,
			Size:      "M",
			Color:     "black",
		}, nil)

	body := `{"product_id":"` + productID.String() + `","quantity":2,"size":"M","color":"black"}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	require.NoError(t, h.AddToCart(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), itemID.String())
}

func TestCartHandler_AddToCart_MalformedProductID(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, slog.New(slog.DiscardHandler))

	body := `{"product_id":"not-a-uuid","quantity":1}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", uuid.New())

	err := h.AddToCart(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestCartHandler_UpdateCartItem(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, slog.New(slog.DiscardHandler))

	userID := uuid.New()
	itemID := uuid.New()
	uc.EXPECT().
		UpdateCartItem(mock.Anything, userID, itemID, usecase.UpdateCartItemInput{Quantity: 3}).
		Return(&entity.CartItem{ID: itemID, UserID: userID, Quantity: 3}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPut, "/api/cart/"+itemID.String(), strings.NewReader(`{"quantity":3}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)
	c.SetParamNames("id")
	c.SetParamValues(itemID.String())

	require.NoError(t, h.UpdateCartItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"quantity":3`)
}

func TestCartHandler_UpdateCartItem_InvalidQuantity(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, slog.New(slog.DiscardHandler))

	itemID := uuid.New()
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPut, "/api/cart/"+itemID.String(), strings.NewReader(`{"quantity":0}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues(itemID.String())

	// Rejected by the request validator; the usecase is never reached.
	err := h.UpdateCartItem(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestCartHandler_UpdateCartItem_MalformedID(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, slog.New(slog.DiscardHandler))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPut, "/api/cart/not-a-uuid", strings.NewReader(`{"quantity":3}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.UpdateCartItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_RemoveCartItem(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, slog.New(slog.DiscardHandler))

	userID := uuid.New()
	itemID := uuid.New()
	uc.EXPECT().
		RemoveCartItem(mock.Anything, userID, itemID).
		Return(nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/api/cart/"+itemID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)
	c.SetParamNames("id")
	c.SetParamValues(itemID.String())

	require.NoError(t, h.RemoveCartItem(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
