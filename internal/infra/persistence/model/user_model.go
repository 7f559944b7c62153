package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_users_username"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Email        *string   `gorm:"type:varchar(255);uniqueIndex:idx_users_email"`
	FullName     *string   `gorm:"type:varchar(255)"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
