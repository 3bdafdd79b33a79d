package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gajidpr_backend/internals/features/payroll/anggota/controller"
)

// AnggotaAdminRoutes memasang CRUD anggota di bawah group admin.
func AnggotaAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnggotaController(db)

	anggota := admin.Group("/anggota")
	anggota.Get("/", ctrl.Index)
	anggota.Post("/", ctrl.Store)
	anggota.Get("/:id", ctrl.Show)
	anggota.Put("/:id", ctrl.Update)
	anggota.Delete("/:id", ctrl.Destroy)
}
