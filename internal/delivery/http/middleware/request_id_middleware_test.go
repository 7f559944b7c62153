package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesWhenAbsent(t *testing.T) {
	m := NewRequestIDMiddleware()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	next := func(c echo.Context) error {
		seen = deliverycontext.GetRequestID(c)
		assert.Equal(t, seen, deliverycontext.GetRequestIDFromContext(c.Request().Context()))

		return nil
	}

	require.NoError(t, m.Process(next)(c))

	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_PreservesIncoming(t *testing.T) {
	m := NewRequestIDMiddleware()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-from-gateway")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		assert.Equal(t, "req-from-gateway", deliverycontext.GetRequestID(c))
		assert.Equal(t, "req-from-gateway", deliverycontext.GetRequestIDFromContext(c.Request().Context()))

		return nil
	}

	require.NoError(t, m.Process(next)(c))
	assert.Equal(t, "req-from-gateway", rec.Header().Get(deliverycontext.HeaderXRequestID))
}
