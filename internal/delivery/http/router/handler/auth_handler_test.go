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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewAuthHandler(uc, slog.New(slog.DiscardHandler))

	userID := uuid.New()
	uc.EXPECT().
		Register(mock.Anything, usecase.RegisterInput{
			Username: "alex",
			Password: "s3cret-pass",
			Email:    "alex@example.com",
		}).
		RunAndReturn(func(_ context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
			return &usecase.AuthOutput{
				User:         &entity.User{ID: userID, Username: input.Username, PasswordHash: "$2a$12$hash"},
				AccessToken:  "access",
				RefreshToken: "refresh",
			}, nil
		})

	body := `{"username":"alex","password":"s3cret-pass","email":"alex@example.com"}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.Contains(t, rec.Body.String(), "access")

	// The password hash must never appear in an API payload.
	assert.NotContains(t, rec.Body.String(), "$2a$12$hash")
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewAuthHandler(uc, slog.New(slog.DiscardHandler))

	body := `{"username":"alex","password":"short"}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewAuthHandler(uc, slog.New(slog.DiscardHandler))

	userID := uuid.New()
	uc.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Username: "alex", Password: "s3cret-pass"}).
		Return(&usecase.AuthOutput{
			User:         &entity.User{ID: userID, Username: "alex"},
			AccessToken:  "access",
			RefreshToken: "refresh",
		}, nil)

	body := `{"username":"alex","password":"s3cret-pass"}`
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "refresh")
}

func TestAuthHandler_GetMe(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewAuthHandler(uc, slog.New(slog.DiscardHandler))

	userID := uuid.New()
	uc.EXPECT().
		GetMe(mock.Anything, userID).
		Return(&entity.User{ID: userID, Username: "alex"}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	require.NoError(t, h.GetMe(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alex")
}
