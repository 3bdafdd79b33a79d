package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gajidpr_backend/internals/features/payroll/komponen/controller"
)

// KomponenGajiAdminRoutes memasang CRUD katalog komponen gaji di group admin.
func KomponenGajiAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewKomponenGajiController(db)

	komponen := admin.Group("/komponen-gaji")
	komponen.Get("/", ctrl.Index)
	komponen.Post("/", ctrl.Store)
	komponen.Get("/:id", ctrl.Show)
	komponen.Put("/:id", ctrl.Update)
	komponen.Delete("/:id", ctrl.Destroy)
}
