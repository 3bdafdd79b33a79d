package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gajidpr_backend/internals/features/payroll/penggajian/controller"
)

// PenggajianPublicRoutes: ringkasan take-home-pay untuk warga, tanpa auth.
func PenggajianPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPublicController(db)

	public.Get("/anggota", ctrl.DaftarAnggota)
	public.Get("/penggajian/:id", ctrl.DataPenggajian)
}
