package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WishlistHandler holds dependencies for wishlist handlers.
type WishlistHandler struct {
	uc     usecase.WishlistUsecase
	logger *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(uc usecase.WishlistUsecase, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetWishlist returns the authenticated user's wishlist with products joined in.
func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	entries, err := h.uc.GetWishlist(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWishlistEntryResponses(entries), "Wishlist retrieved successfully")
}

type toggleWishlistRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// ToggleWishlist adds the product to the wishlist when absent and removes it
// when present.
func (h *WishlistHandler) ToggleWishlist(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req toggleWishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	output, err := h.uc.ToggleWishlist(c.Request().Context(), userID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	body := map[string]any{"added": output.Added}
	message := "Removed from wishlist"
	if output.Added {
		body["item"] = toWishlistItemResponse(output.Item)
		message = "Added to wishlist"
	}

	return response.Success(c, http.StatusOK, body, message)
}
