package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_AppError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m.HandleHTTPError(domainerrors.ErrProductNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PRODUCT_NOT_FOUND")
	assert.Contains(t, rec.Body.String(), "Product not found")
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Handlers wrap usecase errors with a stack; unwrapping must still find
	// the AppError.
	m.HandleHTTPError(errors.WithStack(domainerrors.ErrPriceMismatch), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "PRICE_MISMATCH")
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m.HandleHTTPError(errors.New("connection reset"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")

	// Internal details never leak to the client.
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestErrorMiddleware_CommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, c.NoContent(http.StatusOK))
	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
