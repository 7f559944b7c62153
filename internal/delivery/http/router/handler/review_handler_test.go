package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewHandler_ListReviews(t *testing.T) {
	uc := mockUsecase.NewMockReviewUsecase(t)
	h := NewReviewHandler(uc, slog.New(slog.DiscardHandler))

	productID := uuid.New()
	uc.EXPECT().
		ListReviews(mock.Anything, productID).
		Return([]*entity.Review{
			{
				ID:        uuid.New(),
				UserID:    uuid.New(),
				ProductID: productID,
				Rating:    5,
				Comment:   "Fits perfectly",
				CreatedAt: time.Now(),
			},
		}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/products/"+productID.String()+"/reviews", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(productID.String())

	require.NoError(t, h.ListReviews(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fits perfectly")
}

func TestReviewHandler_ListReviews_MalformedID(t *testing.T) {
	uc := mockUsecase.NewMockReviewUsecase(t)
	h := NewReviewHandler(uc, slog.New(slog.DiscardHandler))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/products/not-a-uuid/reviews", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.ListReviews(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestReviewHandler_AddReview(t *testing.T) {
	uc := mockUsecase.NewMockReviewUsecase(t)
	h := NewReviewHandler(uc, slog.New(slog.DiscardHandler))

	userID := uuid.New()
	productID := uuid.New()
	uc.EXPECT().
		AddReview(mock.Anything, userID, productID, usecase.AddReviewInput{
			Rating:  4,
			Comment: "Good quality",
		}).
		Return(&entity.Review{
			ID:        uuid.New(),
			UserID:    userID,
			ProductID: productID,
			Rating:    4,
			Comment:   "Good quality",
		}, nil)

	body := `{"rating":4,"comment":"Good quality"}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/products/"+productID.String()+"/reviews", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)
	c.SetParamNames("id")
	c.SetParamValues(productID.String())

	require.NoError(t, h.AddReview(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Good quality")
}

func TestReviewHandler_AddReview_RatingOutOfRange(t *testing.T) {
	uc := mockUsecase.NewMockReviewUsecase(t)
	h := NewReviewHandler(uc, slog.New(slog.DiscardHandler))

	body := `{"rating":6}`
	e := newTestEcho()
	productID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/products/"+productID.String()+"/reviews", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues(productID.String())

	err := h.AddReview(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
