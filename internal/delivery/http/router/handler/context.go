package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID extracts the authenticated user's ID set by the auth
// middleware. The bool is false when the middleware did not run.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}
