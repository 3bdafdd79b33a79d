package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gajidpr_backend/internals/features/payroll/penggajian/controller"
)

// PenggajianAdminRoutes: ringkasan take-home-pay + penugasan komponen.
func PenggajianAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPenggajianController(db)

	penggajian := admin.Group("/penggajian")
	penggajian.Get("/", ctrl.Index)
	penggajian.Post("/", ctrl.Store)
	penggajian.Get("/:id", ctrl.Show)
	penggajian.Put("/:id", ctrl.Update)
	penggajian.Delete("/:id", ctrl.Destroy)
	penggajian.Delete("/:id/komponen/:idKomponen", ctrl.DestroyKomponen)
}
