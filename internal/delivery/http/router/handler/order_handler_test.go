package handler

import (
	"context"
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

func TestOrderHandler_PlaceOrder(t *testing.T) {
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, slog.New(slog.DiscardHandler))

	userID := uuid.New()
	productID := uuid.New()
	orderID := uuid.New()

	uc.EXPECT().
		PlaceOrder(mock.Anything, userID, mock.AnythingOfType("usecase.PlaceOrderInput")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, input usecase.PlaceOrderInput) (*entity.Order, error) {
			require.Len(t, input.Items, 1)
			assert.Equal(t, productID, input.Items[0].ProductID)
			assert.Equal(t, "idem-123", input.IdempotencyKey)
			assert.Equal(t, entity.ShippingAddress{
				FullName: "Alex Doe",
				Street:   "1 Main St",
				City:     "Lisbon",
				PostCode: "1000",
				Country:  "PT",
			}, input.Address)

			return &entity.Order{
				ID:     orderID,
				UserID: userID,
				Status: entity.OrderStatusPending,
				Total:  decimal.RequireFromString("79.98"),
			}, nil
		})

	body := `{
		"items":[{"product_id":"` + productID.String() + `","quantity":2,"unit_price":"39.99"}],
		"address":{"full_name":"Alex Doe","street":"1 Main St","city":"Lisbon","post_code":"1000","country":"PT"},
		"idempotency_key":"idem-123"
	}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	require.NoError(t, h.PlaceOrder(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), orderID.String())
}

func TestOrderHandler_PlaceOrder_EmptyItems(t *testing.T) {
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, slog.New(slog.DiscardHandler))

	body := `{"items":[],"address":{}}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", uuid.New())

	err := h.PlaceOrder(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestOrderHandler_PlaceOrder_MissingAddress(t *testing.T) {
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, slog.New(slog.DiscardHandler))

	productID := uuid.New()
	body := `{"items":[{"product_id":"` + productID.String() + `","quantity":1,"unit_price":"39.99"}]}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", uuid.New())

	// The usecase must never see an order without a shipping address.
	err := h.PlaceOrder(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestOrderHandler_PlaceOrder_IncompleteAddress(t *testing.T) {
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, slog.New(slog.DiscardHandler))

	productID := uuid.New()
	body := `{
		"items":[{"product_id":"` + productID.String() + `","quantity":1,"unit_price":"39.99"}],
		"address":{"full_name":"Alex Doe","street":"1 Main St"}
	}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", uuid.New())

	err := h.PlaceOrder(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestOrderHandler_GetOrder_MalformedID(t *testing.T) {
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, slog.New(slog.DiscardHandler))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.GetOrder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_GetOrderQR(t *testing.T) {
	uc := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, slog.New(slog.DiscardHandler))

	userID := uuid.New()
	orderID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	uc.EXPECT().
		GenerateOrderQR(mock.Anything, userID, orderID).
		Return(png, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/"+orderID.String()+"/qr", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	require.NoError(t, h.GetOrderQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
