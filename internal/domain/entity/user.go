// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can browse the catalog, keep a cart and wishlist,
// and place orders. It is the ownership anchor for all per-user data.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Unique login identifier.
	PasswordHash string    // Bcrypt hash of the user's password. Never serialized to clients.
	Email        string    // Optional contact email; unique when present.
	FullName     string    // Optional display name.
	IsAdmin      bool      // Grants access to catalog administration.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
