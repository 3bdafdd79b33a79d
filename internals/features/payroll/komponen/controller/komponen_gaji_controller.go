// internals/features/payroll/komponen/controller/komponen_gaji_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gajidpr_backend/internals/constants"
	"gajidpr_backend/internals/features/payroll/komponen/dto"
	"gajidpr_backend/internals/features/payroll/komponen/model"
	penggajianModel "gajidpr_backend/internals/features/payroll/penggajian/model"
	helper "gajidpr_backend/internals/helpers"
)

const msgKomponenTidakDitemukan = "Data komponen gaji tidak ditemukan."

type KomponenGajiController struct {
	DB *gorm.DB
}

func NewKomponenGajiController(db *gorm.DB) *KomponenGajiController {
	return &KomponenGajiController{DB: db}
}

// GET /api/admin/komponen-gaji?search=&kategori=&jabatan=&satuan=&page=&per_page=
func (ctrl *KomponenGajiController) Index(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)
	search := strings.TrimSpace(c.Query("search"))
	kategori := c.Query("kategori")
	jabatan := c.Query("jabatan")
	satuan := c.Query("satuan")

	applyFilters := func(q *gorm.DB) *gorm.DB {
		if search != "" {
			like := "%" + strings.ToLower(search) + "%"
			cond := "LOWER(nama_komponen) LIKE ? OR LOWER(kategori) LIKE ? OR LOWER(jabatan) LIKE ? " +
				"OR LOWER(satuan) LIKE ? OR CAST(nominal AS TEXT) LIKE ?"
			args := []interface{}{like, like, like, like, like}
			if id, err := strconv.ParseInt(search, 10, 64); err == nil {
				cond += " OR id_komponen_gaji = ?"
				args = append(args, id)
			}
			q = q.Where(cond, args...)
		}
		if kategori != "" && constants.IsValidValue(kategori, constants.KategoriKomponenValues) {
			q = q.Where("kategori = ?", kategori)
		}
		if jabatan != "" && constants.IsValidValue(jabatan, constants.JabatanKomponenValues) {
			q = q.Where("jabatan = ?", jabatan)
		}
		if satuan != "" && constants.IsValidValue(satuan, constants.SatuanKomponenValues) {
			q = q.Where("satuan = ?", satuan)
		}
		return q
	}

	var total int64
	if err := applyFilters(ctrl.DB.Model(&model.KomponenGajiModel{})).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung komponen gaji")
	}

	var rows []model.KomponenGajiModel
	if err := applyFilters(ctrl.DB.Model(&model.KomponenGajiModel{})).
		Order("id_komponen_gaji ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil komponen gaji")
	}

	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(total, paging, len(rows)))
}

// POST /api/admin/komponen-gaji
func (ctrl *KomponenGajiController) Store(c *fiber.Ctx) error {
	var req dto.CreateKomponenGajiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Nominal.IsNegative() {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Validasi gagal",
			fiber.Map{"nominal": "Nominal tidak boleh negatif."})
	}

	var cnt int64
	if err := ctrl.DB.Model(&model.KomponenGajiModel{}).
		Where("id_komponen_gaji = ?", req.IDKomponenGaji).
		Count(&cnt).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal cek duplikasi ID")
	}
	if cnt > 0 {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Validasi gagal",
			fiber.Map{"id_komponen_gaji": "ID komponen gaji sudah digunakan."})
	}

	kom := req.ToModel()
	if err := ctrl.DB.Create(&kom).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Validasi gagal",
				fiber.Map{"id_komponen_gaji": "ID komponen gaji sudah digunakan."})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat komponen gaji")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Komponen gaji berhasil dibuat", kom)
}

// GET /api/admin/komponen-gaji/:id
func (ctrl *KomponenGajiController) Show(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var kom model.KomponenGajiModel
	if err := ctrl.DB.First(&kom, "id_komponen_gaji = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, msgKomponenTidakDitemukan)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat komponen gaji")
	}
	return helper.Success(c, "OK", kom)
}

// PUT /api/admin/komponen-gaji/:id — update parsial; id tidak bisa diganti
func (ctrl *KomponenGajiController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var kom model.KomponenGajiModel
	if err := ctrl.DB.First(&kom, "id_komponen_gaji = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, msgKomponenTidakDitemukan)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat komponen gaji")
	}

	var req dto.UpdateKomponenGajiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.IDKomponenGaji != nil {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Validasi gagal",
			fiber.Map{"id_komponen_gaji": "ID komponen gaji tidak dapat diubah."})
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Nominal != nil && req.Nominal.IsNegative() {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Validasi gagal",
			fiber.Map{"nominal": "Nominal tidak boleh negatif."})
	}

	req.ApplyTo(&kom)
	if err := ctrl.DB.Save(&kom).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui komponen gaji")
	}
	return helper.Success(c, "Komponen gaji berhasil diperbarui", kom)
}

// DELETE /api/admin/komponen-gaji/:id
// Penugasan penggajian yang memakai komponen ini ikut terhapus (satu tx).
func (ctrl *KomponenGajiController) Destroy(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var kom model.KomponenGajiModel
	if err := ctrl.DB.First(&kom, "id_komponen_gaji = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, msgKomponenTidakDitemukan)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat komponen gaji")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_komponen_gaji = ?", id).
			Delete(&penggajianModel.PenggajianModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&kom).Error
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus komponen gaji")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
