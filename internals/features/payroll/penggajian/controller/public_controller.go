// internals/features/payroll/penggajian/controller/public_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gajidpr_backend/internals/features/payroll/penggajian/service"
	helper "gajidpr_backend/internals/helpers"
)

// PublicController menyajikan ringkasan take-home-pay untuk publik.
// Formulanya sama persis dengan sisi admin — satu aggregator bersama,
// hanya default & cap pagination yang berbeda.
type PublicController struct {
	Aggregator *service.PenggajianAggregator
}

func NewPublicController(db *gorm.DB) *PublicController {
	return &PublicController{Aggregator: service.NewPenggajianAggregator(db)}
}

// GET /api/public/anggota?search=&page=&per_page=
func (ctrl *PublicController) DaftarAnggota(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	rows, total, err := ctrl.Aggregator.ListRingkasan(c.Query("search"), paging.Limit, paging.Offset)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar anggota")
	}

	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(total, paging, len(rows)))
}

// GET /api/public/penggajian/:id
func (ctrl *PublicController) DataPenggajian(c *fiber.Ctx) error {
	idAnggota, err := parseID(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	payload, err := ctrl.Aggregator.Detail(idAnggota)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat data penggajian")
	}
	if payload == nil {
		return helper.Error(c, fiber.StatusNotFound, msgAnggotaTidakDitemukan)
	}
	return helper.Success(c, "OK", payload)
}
