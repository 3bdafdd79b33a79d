// internals/route/routes.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gajidpr_backend/internals/constants"
	anggotaRoute "gajidpr_backend/internals/features/payroll/anggota/route"
	komponenRoute "gajidpr_backend/internals/features/payroll/komponen/route"
	penggajianRoute "gajidpr_backend/internals/features/payroll/penggajian/route"
	authRoute "gajidpr_backend/internals/features/users/auth/route"
	authMw "gajidpr_backend/internals/middlewares/auth"
)

// SetupRoutes merakit seluruh endpoint:
//
//	/api/login|logout|me        → auth
//	/api/admin/*                → Admin only (JWT + role gate)
//	/api/public/*               → terbuka
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db)

	log.Println("[INFO] Setting up ADMIN group...")
	admin := api.Group("/admin",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles("Akses khusus Admin", constants.RoleAdmin),
	)
	anggotaRoute.AnggotaAdminRoutes(admin, db)
	komponenRoute.KomponenGajiAdminRoutes(admin, db)
	penggajianRoute.PenggajianAdminRoutes(admin, db)

	log.Println("[INFO] Setting up PUBLIC group...")
	public := api.Group("/public")
	penggajianRoute.PenggajianPublicRoutes(public, db)
}
