package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"

	"github.com/telartis/picqer-ontime/types"
)

// RequireBasicAuth guards the webhook routes with the configured credentials.
// Without credentials the routes are open.
func RequireBasicAuth(user, password string) fiber.Handler {
	if user == "" {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return basicauth.New(basicauth.Config{
		Users: map[string]string{user: password},
		Realm: "picqer-ontime",
		Unauthorized: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="picqer-ontime"`)
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{Error: "Unauthorized"})
		},
	})
}
