package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's rating of a product, 1 to 5 stars with an optional
// comment.
type Review struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
}
