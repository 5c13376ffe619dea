// Package middleware holds the Fiber middleware shared by all routes:
// authentication, request logging with correlation ids, and rate
// limiting.
package middleware

import (
	"strings"

	"github.com/HarminderDhillon/twitter-clone/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// TokenParser validates a bearer token and returns the authenticated
// user's id and username.
type TokenParser interface {
	ParseToken(token string) (uuid.UUID, string, error)
}

const (
	// AuthUserID is the locals key holding the authenticated user's id.
	AuthUserID = "auth_user_id"
	// AuthUsername is the locals key holding the authenticated username.
	AuthUsername = "auth_username"
)

// RequireAuth rejects requests without a valid bearer token and stores
// the authenticated identity in locals for handlers.
func RequireAuth(parser TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Missing or malformed authorization header"))
		}

		id, username, err := parser.ParseToken(token)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized, err)
		}

		c.Locals(AuthUserID, id)
		c.Locals(AuthUsername, username)
		return c.Next()
	}
}

// Username returns the authenticated username set by RequireAuth, or ""
// on unauthenticated routes.
func Username(c *fiber.Ctx) string {
	username, _ := c.Locals(AuthUsername).(string)
	return username
}
