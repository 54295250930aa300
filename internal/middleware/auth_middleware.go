package middleware

import (
	"strings"

	"github.com/fadilmartias/apostila-analyzer/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const userLocalsKey = "user"

type AuthUser struct {
	ID   uuid.UUID
	Role string
}

func (u AuthUser) IsAdmin() bool {
	return u.Role == "admin"
}

type TokenParser interface {
	Parse(token string) (util.TokenClaims, error)
}

// Protected requires a valid "Authorization: Bearer <jwt>" header and stores
// the caller in c.Locals.
func Protected(tokens TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Token não fornecido.",
			})
		}
		claims, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Token inválido ou expirado.",
			}, err)
		}
		c.Locals(userLocalsKey, AuthUser{ID: claims.UserID, Role: claims.Role})
		return c.Next()
	}
}

// RequireRole must run after Protected.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok || user.Role != role {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: "Acesso restrito ao administrador.",
			})
		}
		return c.Next()
	}
}

func CurrentUser(c *fiber.Ctx) (AuthUser, bool) {
	user, ok := c.Locals(userLocalsKey).(AuthUser)
	return user, ok
}
