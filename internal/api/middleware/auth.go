package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/markethub/offers/internal/constants"
	"github.com/markethub/offers/pkg/token"
)

const (
	LocalAccountID = "accountID"
	LocalRole      = "role"
)

// RequireAuth resolves the caller's account id and role from the bearer
// token; downstream handlers trust these values as given.
func RequireAuth(maker *token.Maker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return unauthorized(c)
		}

		claims, err := maker.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(LocalAccountID, claims.AccountID)
		c.Locals(LocalRole, claims.Role)

		return c.Next()
	}
}

func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals(LocalRole) != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"code":    constants.ErrCodeForbidden,
				"message": constants.GetErrorMessage(constants.ErrCodeForbidden),
			})
		}

		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"code":    constants.ErrCodeUnauthorized,
		"message": constants.GetErrorMessage(constants.ErrCodeUnauthorized),
	})
}
