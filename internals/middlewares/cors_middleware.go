// internals/middlewares/cors_middleware.go
package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"gajidpr_backend/internals/configs"
)

// CorsMiddleware: origin diambil dari env (CORS_ALLOW_ORIGINS), default terbuka.
func CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: configs.GetEnv("CORS_ALLOW_ORIGINS", "*"),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}
