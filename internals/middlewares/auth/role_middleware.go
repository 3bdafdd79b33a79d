// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"
)

// OnlyRoles membatasi akses ke role tertentu. Pasang SETELAH AuthMiddleware.
func OnlyRoles(errorMessage string, allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok || role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Role missing")
		}
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, errorMessage)
	}
}
