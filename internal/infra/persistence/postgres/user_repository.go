package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository bound to the given DB handle,
// which may be a transaction.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userModel := toUserModel(user)

	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserDuplicate
		}

		return errors.Wrap(err, "failed to create user")
	}

	*user = *toUserEntity(userModel)

	return nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).First(&userModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserEntity(&userModel), nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).First(&userModel, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserEntity(&userModel), nil
}

// --- Mappers ---

func toUserModel(user *entity.User) *model.UserModel {
	userModel := &model.UserModel{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		IsAdmin:      user.IsAdmin,
		CreatedAt:    user.CreatedAt,
	}
	if user.Email != "" {
		email := user.Email
		userModel.Email = &email
	}
	if user.FullName != "" {
		fullName := user.FullName
		userModel.FullName = &fullName
	}

	return userModel
}

func toUserEntity(userModel *model.UserModel) *entity.User {
	user := &entity.User{
		ID:           userModel.ID,
		Username:     userModel.Username,
		PasswordHash: userModel.PasswordHash,
		IsAdmin:      userModel.IsAdmin,
		CreatedAt:    userModel.CreatedAt,
	}
	if userModel.Email != nil {
		user.Email = *userModel.Email
	}
	if userModel.FullName != nil {
		user.FullName = *userModel.FullName
	}

	return user
}
