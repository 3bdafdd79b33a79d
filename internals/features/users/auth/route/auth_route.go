package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gajidpr_backend/internals/features/users/auth/controller"
	"gajidpr_backend/internals/middlewares"
	authMw "gajidpr_backend/internals/middlewares/auth"
)

// AuthRoutes: login publik (rate-limited ketat), logout & me butuh token.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	// logout memvalidasi tokennya sendiri supaya bisa membedakan
	// "token tidak dikirim" (400) dari "token tidak sah" (400 juga,
	// dengan pesan berbeda) tanpa tertelan 401 middleware.
	api.Post("/logout", ctrl.Logout)

	api.Get("/me", authMw.AuthMiddleware(db), ctrl.Me)
}
