// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register creates a new account and logs it in.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Registering user", "username", input.Username)

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username:     input.Username,
		PasswordHash: hash,
		Email:        input.Email,
		FullName:     input.FullName,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().CreateUser(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserDuplicate) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, input.Username)
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return srv.issueTokens(user)
}

// Login verifies the credentials and returns a fresh token pair.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.logger.Debug("User login attempt", "username", input.Username)

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindUserByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// Same error as a bad password so probing for usernames
				// yields nothing.
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueTokens(user)
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func (srv *userService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.TokenPairOutput, error) {
	token, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "missing subject claim")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "malformed subject claim")
	}

	// Roles are re-derived from the account on every refresh, so an admin
	// flag change takes effect at the next rotation.
	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrRefreshTokenInvalid
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(user.ID, entity.RolesFor(user))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// GetMe retrieves the authenticated user's account.
func (srv *userService) GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, userID.String())
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (srv *userService) issueTokens(user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, entity.RolesFor(user))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
