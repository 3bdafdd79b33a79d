// internals/features/payroll/penggajian/controller/penggajian_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	anggotaModel "gajidpr_backend/internals/features/payroll/anggota/model"
	"gajidpr_backend/internals/features/payroll/penggajian/dto"
	"gajidpr_backend/internals/features/payroll/penggajian/service"
	helper "gajidpr_backend/internals/helpers"
)

const msgAnggotaTidakDitemukan = "Data anggota tidak ditemukan."

type PenggajianController struct {
	DB         *gorm.DB
	Aggregator *service.PenggajianAggregator
	Validator  *service.PenggajianValidator
	StoreSvc   *service.PenggajianStore
}

func NewPenggajianController(db *gorm.DB) *PenggajianController {
	return &PenggajianController{
		DB:         db,
		Aggregator: service.NewPenggajianAggregator(db),
		Validator:  service.NewPenggajianValidator(db),
		StoreSvc:   service.NewPenggajianStore(db),
	}
}

// GET /api/admin/penggajian?search=&page=&per_page=
func (ctrl *PenggajianController) Index(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	rows, total, err := ctrl.Aggregator.ListRingkasan(c.Query("search"), paging.Limit, paging.Offset)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil ringkasan penggajian")
	}

	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(total, paging, len(rows)))
}

// POST /api/admin/penggajian — append komponen ke anggota
func (ctrl *PenggajianController) Store(c *fiber.Ctx) error {
	var req dto.StorePenggajianRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	komponenIDs := dto.UniqueIDs(req.KomponenGajiIDs)

	var ang anggotaModel.AnggotaModel
	if err := ctrl.DB.First(&ang, "id_anggota = ?", req.IDAnggota).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, msgAnggotaTidakDitemukan)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat data anggota")
	}

	if _, err := ctrl.Validator.ValidateKomponenUntukAnggota(&ang, komponenIDs); err != nil {
		return ctrl.rejectionResponse(c, err)
	}

	if err := ctrl.StoreSvc.Append(ang.IDAnggota, komponenIDs); err != nil {
		return ctrl.rejectionResponse(c, err)
	}

	payload, err := ctrl.Aggregator.Detail(ang.IDAnggota)
	if err != nil || payload == nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat detail penggajian")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Penggajian berhasil disimpan", payload)
}

// GET /api/admin/penggajian/:id
func (ctrl *PenggajianController) Show(c *fiber.Ctx) error {
	idAnggota, err := parseID(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	payload, err := ctrl.Aggregator.Detail(idAnggota)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat detail penggajian")
	}
	if payload == nil {
		return helper.Error(c, fiber.StatusNotFound, msgAnggotaTidakDitemukan)
	}
	return helper.Success(c, "OK", payload)
}

// PUT /api/admin/penggajian/:id — replace seluruh daftar komponen anggota
func (ctrl *PenggajianController) Update(c *fiber.Ctx) error {
	idAnggota, err := parseID(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ang anggotaModel.AnggotaModel
	if err := ctrl.DB.First(&ang, "id_anggota = ?", idAnggota).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, msgAnggotaTidakDitemukan)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat data anggota")
	}

	var req dto.UpdatePenggajianRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	komponenIDs := dto.UniqueIDs(*req.KomponenGajiIDs)

	if _, err := ctrl.Validator.ValidateKomponenUntukAnggota(&ang, komponenIDs); err != nil {
		return ctrl.rejectionResponse(c, err)
	}

	if err := ctrl.StoreSvc.Replace(ang.IDAnggota, komponenIDs); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan penugasan komponen")
	}

	payload, err := ctrl.Aggregator.Detail(ang.IDAnggota)
	if err != nil || payload == nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat detail penggajian")
	}
	return helper.Success(c, "Penggajian berhasil diperbarui", payload)
}

// DELETE /api/admin/penggajian/:id — hapus seluruh penugasan anggota
func (ctrl *PenggajianController) Destroy(c *fiber.Ctx) error {
	idAnggota, err := parseID(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ang anggotaModel.AnggotaModel
	if err := ctrl.DB.First(&ang, "id_anggota = ?", idAnggota).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, msgAnggotaTidakDitemukan)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat data anggota")
	}

	if err := ctrl.StoreSvc.DeleteAllForAnggota(idAnggota); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus penugasan komponen")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DELETE /api/admin/penggajian/:id/komponen/:idKomponen — hapus satu relasi
func (ctrl *PenggajianController) DestroyKomponen(c *fiber.Ctx) error {
	idAnggota, err := parseID(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	idKomponen, err := parseID(c, "idKomponen")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID komponen tidak valid")
	}

	var ang anggotaModel.AnggotaModel
	if err := ctrl.DB.First(&ang, "id_anggota = ?", idAnggota).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, msgAnggotaTidakDitemukan)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat data anggota")
	}

	if err := ctrl.StoreSvc.DeleteOne(idAnggota, idKomponen); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Relasi komponen gaji untuk anggota ini tidak ditemukan.")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus relasi komponen")
	}

	payload, err := ctrl.Aggregator.Detail(idAnggota)
	if err != nil || payload == nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat detail penggajian")
	}
	return helper.Success(c, "Relasi komponen berhasil dihapus", payload)
}

// rejectionResponse memetakan error aturan bisnis ke payload 422
// yang machine-checkable (missing_components / duplicate_components).
func (ctrl *PenggajianController) rejectionResponse(c *fiber.Ctx, err error) error {
	var missing *service.MissingComponentsError
	if errors.As(err, &missing) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message":            missing.Error(),
			"missing_components": missing.IDs,
			"errors":             fiber.Map{"komponen_gaji_ids": "Beberapa komponen gaji tidak ditemukan."},
		})
	}

	var mismatch *service.PositionMismatchError
	if errors.As(err, &mismatch) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": mismatch.Error(),
			"errors":  fiber.Map{"komponen_gaji_ids": "Komponen gaji yang dipilih tidak sesuai jabatan anggota."},
		})
	}

	var duplicate *service.DuplicateAssignmentError
	if errors.As(err, &duplicate) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message":              duplicate.Error(),
			"duplicate_components": duplicate.IDs,
			"errors":               fiber.Map{"komponen_gaji_ids": "Beberapa komponen sudah terdaftar sebelumnya."},
		})
	}

	return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses penugasan komponen")
}

func parseID(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}
