package impl

import (
	"context"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register_Success(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := NewUserService(txManager, hasher, tokenService, slog.New(slog.DiscardHandler))

	ctx := context.Background()
	userID := uuid.New()

	hasher.EXPECT().
		Hash("s3cret-pass").
		Return("$2a$12$hash", nil)
	userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = userID

			return nil
		})
	tokenService.EXPECT().
		GenerateTokens(userID, []string{entity.RoleCustomer}).
		Return("access", "refresh", nil)

	output, err := svc.Register(ctx, usecase.RegisterInput{
		Username: "alex",
		Password: "s3cret-pass",
		Email:    "alex@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "$2a$12$hash", output.User.PasswordHash)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := NewUserService(txManager, hasher, tokenService, slog.New(slog.DiscardHandler))

	ctx := context.Background()

	hasher.EXPECT().
		Hash("s3cret-pass").
		Return("$2a$12$hash", nil)
	userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrUserDuplicate)

	output, err := svc.Register(ctx, usecase.RegisterInput{Username: "alex", Password: "s3cret-pass"})
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "USER_ALREADY_EXISTS", appErr.ErrorCode())
}

func TestUserService_Login_Success(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := NewUserService(txManager, hasher, tokenService, slog.New(slog.DiscardHandler))

	ctx := context.Background()
	userID := uuid.New()
	admin := &entity.User{ID: userID, Username: "root", PasswordHash: "$2a$12$hash", IsAdmin: true}

	userRepo.EXPECT().
		FindUserByUsername(ctx, "root").
		Return(admin, nil)
	hasher.EXPECT().
		Check("s3cret-pass", "$2a$12$hash").
		Return(true)
	tokenService.EXPECT().
		GenerateTokens(userID, []string{entity.RoleCustomer, entity.RoleAdmin}).
		Return("access", "refresh", nil)

	output, err := svc.Login(ctx, usecase.LoginInput{Username: "root", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, admin, output.User)
	assert.Equal(t, "access", output.AccessToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := NewUserService(txManager, hasher, tokenService, slog.New(slog.DiscardHandler))

	ctx := context.Background()

	userRepo.EXPECT().
		FindUserByUsername(ctx, "alex").
		Return(&entity.User{ID: uuid.New(), Username: "alex", PasswordHash: "$2a$12$hash"}, nil)
	hasher.EXPECT().
		Check("wrong", "$2a$12$hash").
		Return(false)

	output, err := svc.Login(ctx, usecase.LoginInput{Username: "alex", Password: "wrong"})
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := NewUserService(txManager, hasher, tokenService, slog.New(slog.DiscardHandler))

	ctx := context.Background()

	userRepo.EXPECT().
		FindUserByUsername(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	// The error must not reveal whether the username exists.
	output, err := svc.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "whatever"})
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
}

func TestUserService_RefreshToken_Invalid(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	svc := NewUserService(txManager, hasher, tokenService, slog.New(slog.DiscardHandler))

	tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, assert.AnError)

	output, err := svc.RefreshToken(context.Background(), "garbage")
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "REFRESH_TOKEN_INVALID", appErr.ErrorCode())
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	factory.EXPECT().UserRepo().Return(userRepo)

	txManager := newPassthroughTxManager(t, factory)
	svc := NewUserService(txManager, hasher, tokenService, slog.New(slog.DiscardHandler))

	ctx := context.Background()
	userID := uuid.New()

	token := &jwt.Token{Claims: jwt.MapClaims{"sub": userID.String(), "type": "refresh"}}
	tokenService.EXPECT().
		ValidateRefreshToken("valid-refresh").
		Return(token, nil)
	userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID, Username: "alex"}, nil)
	tokenService.EXPECT().
		GenerateTokens(userID, []string{entity.RoleCustomer}).
		Return("new-access", "new-refresh", nil)

	output, err := svc.RefreshToken(ctx, "valid-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}
