package middleware

import (
	"context"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/vetlink/vetlink-api/internal/model"
	"github.com/vetlink/vetlink-api/internal/session"
	"github.com/vetlink/vetlink-api/internal/util"
)

const (
	localUserID = "user_id"
	localRole   = "role"
	localToken  = "token"
)

// Authenticator resolves a bearer token to a session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (session.Session, error)
}

// RequireAuth rejects requests without a valid "Authorization: Bearer" token
// and stores the caller's identity in the request locals.
func RequireAuth(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := BearerToken(c)
		if token == "" {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "missing bearer token",
			})
		}

		sess, err := auth.Authenticate(c.UserContext(), token)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "invalid or expired session",
			}, err)
		}

		c.Locals(localUserID, sess.UserID)
		c.Locals(localRole, sess.Role)
		c.Locals(localToken, token)
		return c.Next()
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(roles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !slices.Contains(roles, CurrentRole(c)) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: "your account cannot access this resource",
			})
		}
		return c.Next()
	}
}

func BearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func CurrentUserID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(localUserID).(uuid.UUID)
	return id
}

func CurrentRole(c *fiber.Ctx) model.Role {
	role, _ := c.Locals(localRole).(model.Role)
	return role
}

func CurrentToken(c *fiber.Ctx) string {
	token, _ := c.Locals(localToken).(string)
	return token
}
