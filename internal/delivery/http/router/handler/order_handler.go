package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type placeOrderItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
}

type shippingAddressRequest struct {
	FullName string `json:"full_name" validate:"required,max=128"`
	Street   string `json:"street" validate:"required,max=256"`
	City     string `json:"city" validate:"required,max=128"`
	PostCode string `json:"post_code" validate:"required,max=32"`
	Country  string `json:"country" validate:"required,max=64"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
}

type placeOrderRequest struct {
	Items          []placeOrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Address        shippingAddressRequest  `json:"address"`
	IdempotencyKey string                  `json:"idempotency_key" validate:"omitempty,max=128"`
}

// PlaceOrder places an order from the submitted lines. Prices are re-verified
// against the catalog and the cart is cleared in the same transaction.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	items := make([]usecase.PlaceOrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID: "+item.ProductID)
		}

		items = append(items, usecase.PlaceOrderItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), userID, usecase.PlaceOrderInput{
		Items: items,
		Address: entity.ShippingAddress{
			FullName: req.Address.FullName,
			Street:   req.Address.Street,
			City:     req.Address.City,
			PostCode: req.Address.PostCode,
			Country:  req.Address.Country,
			Phone:    req.Address.Phone,
		},
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order), "Order placed successfully")
}

// ListOrders returns the authenticated user's orders, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponses(orders), "Orders retrieved successfully")
}

// GetOrder returns one of the authenticated user's orders.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "Order retrieved successfully")
}

// GetOrderQR returns a PNG QR code referencing one of the user's orders,
// scanned at pickup points.
func (h *OrderHandler) GetOrderQR(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	png, err := h.uc.GenerateOrderQR(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
