// internals/middlewares/rate_limiter_middleware.go
package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "gajidpr_backend/internals/helpers"
)

// GlobalRateLimiter membatasi trafik per IP untuk seluruh API.
func GlobalRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        300,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.Error(c, fiber.StatusTooManyRequests, "Terlalu banyak permintaan, coba lagi nanti")
		},
	})
}

// LoginRateLimiter lebih ketat: brute-force password jadi mahal.
func LoginRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.Error(c, fiber.StatusTooManyRequests, "Terlalu banyak percobaan login, coba lagi nanti")
		},
	})
}
