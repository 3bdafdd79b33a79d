// internals/features/payroll/anggota/controller/anggota_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gajidpr_backend/internals/constants"
	"gajidpr_backend/internals/features/payroll/anggota/dto"
	"gajidpr_backend/internals/features/payroll/anggota/model"
	penggajianModel "gajidpr_backend/internals/features/payroll/penggajian/model"
	helper "gajidpr_backend/internals/helpers"
)

const msgAnggotaTidakDitemukan = "Data anggota tidak ditemukan."

type AnggotaController struct {
	DB *gorm.DB
}

func NewAnggotaController(db *gorm.DB) *AnggotaController {
	return &AnggotaController{DB: db}
}

// Baris list admin: atribut anggota + total nominal seluruh komponen
// yang ditugaskan (tanpa formula take-home-pay).
type AnggotaRingkasRow struct {
	IDAnggota        int64   `json:"id_anggota"`
	NamaDepan        string  `json:"nama_depan"`
	NamaBelakang     string  `json:"nama_belakang"`
	GelarDepan       *string `json:"gelar_depan"`
	GelarBelakang    *string `json:"gelar_belakang"`
	Jabatan          string  `json:"jabatan"`
	StatusPernikahan string  `json:"status_pernikahan"`
	JumlahAnak       int     `json:"jumlah_anak"`
	TotalNominal     float64 `json:"total_nominal"`
}

// GET /api/admin/anggota?search=&jabatan=&page=&per_page=
func (ctrl *AnggotaController) Index(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)
	search := strings.TrimSpace(c.Query("search"))
	jabatan := c.Query("jabatan")

	applyFilters := func(q *gorm.DB) *gorm.DB {
		if search != "" {
			like := "%" + strings.ToLower(search) + "%"
			cond := "LOWER(anggota.nama_depan) LIKE ? OR LOWER(anggota.nama_belakang) LIKE ? OR LOWER(anggota.jabatan) LIKE ?"
			args := []interface{}{like, like, like}
			if id, err := strconv.ParseInt(search, 10, 64); err == nil {
				cond += " OR anggota.id_anggota = ?"
				args = append(args, id)
			}
			q = q.Where(cond, args...)
		}
		if jabatan != "" && constants.IsValidValue(jabatan, constants.JabatanAnggotaValues) {
			q = q.Where("anggota.jabatan = ?", jabatan)
		}
		return q
	}

	var total int64
	if err := applyFilters(ctrl.DB.Model(&model.AnggotaModel{})).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung data anggota")
	}

	rows := make([]AnggotaRingkasRow, 0, paging.Limit)
	q := applyFilters(ctrl.DB.Table("anggota")).
		Joins("LEFT JOIN penggajian ON anggota.id_anggota = penggajian.id_anggota").
		Joins("LEFT JOIN komponen_gaji ON penggajian.id_komponen_gaji = komponen_gaji.id_komponen_gaji").
		Select("anggota.id_anggota, anggota.nama_depan, anggota.nama_belakang, anggota.gelar_depan, anggota.gelar_belakang, " +
			"anggota.jabatan, anggota.status_pernikahan, anggota.jumlah_anak, " +
			"COALESCE(SUM(komponen_gaji.nominal), 0) AS total_nominal").
		Group("anggota.id_anggota, anggota.nama_depan, anggota.nama_belakang, anggota.gelar_depan, anggota.gelar_belakang, " +
			"anggota.jabatan, anggota.status_pernikahan, anggota.jumlah_anak").
		Order("anggota.id_anggota ASC").
		Limit(paging.Limit).
		Offset(paging.Offset)
	if err := q.Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data anggota")
	}

	return helper.SuccessList(c, "OK", rows, helper.BuildPagination(total, paging, len(rows)))
}

// POST /api/admin/anggota
func (ctrl *AnggotaController) Store(c *fiber.Ctx) error {
	var req dto.CreateAnggotaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// id diberikan caller; keunikan dicek di sini, PK jadi backstop
	var cnt int64
	if err := ctrl.DB.Model(&model.AnggotaModel{}).
		Where("id_anggota = ?", req.IDAnggota).
		Count(&cnt).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal cek duplikasi ID")
	}
	if cnt > 0 {
		return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Validasi gagal",
			fiber.Map{"id_anggota": "ID anggota sudah digunakan."})
	}

	ang := req.ToModel()
	if err := ctrl.DB.Create(&ang).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.ErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Validasi gagal",
				fiber.Map{"id_anggota": "ID anggota sudah digunakan."})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat data anggota")
	}

	row, err := ctrl.findWithAggregates(ang.IDAnggota)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat data anggota")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Anggota berhasil dibuat", row)
}

// GET /api/admin/anggota/:id
func (ctrl *AnggotaController) Show(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	row, err := ctrl.findWithAggregates(id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat data anggota")
	}
	if row == nil {
		return helper.Error(c, fiber.StatusNotFound, msgAnggotaTidakDitemukan)
	}
	return helper.Success(c, "OK", row)
}

// PUT /api/admin/anggota/:id
func (ctrl *AnggotaController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ang model.AnggotaModel
	if err := ctrl.DB.First(&ang, "id_anggota = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, msgAnggotaTidakDitemukan)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat data anggota")
	}

	var req dto.UpdateAnggotaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(&ang)
	if err := ctrl.DB.Save(&ang).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui data anggota")
	}

	row, err := ctrl.findWithAggregates(id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat data anggota")
	}
	return helper.Success(c, "Anggota berhasil diperbarui", row)
}

// DELETE /api/admin/anggota/:id
// Cascade manual: baris penggajian dihapus dulu, lalu anggotanya,
// dalam satu transaksi (schema tidak mendeklarasikan ON DELETE CASCADE).
func (ctrl *AnggotaController) Destroy(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var ang model.AnggotaModel
	if err := ctrl.DB.First(&ang, "id_anggota = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, msgAnggotaTidakDitemukan)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat data anggota")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_anggota = ?", id).
			Delete(&penggajianModel.PenggajianModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ang).Error
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus data anggota")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (ctrl *AnggotaController) findWithAggregates(id int64) (*AnggotaRingkasRow, error) {
	var rows []AnggotaRingkasRow
	err := ctrl.DB.Table("anggota").
		Joins("LEFT JOIN penggajian ON anggota.id_anggota = penggajian.id_anggota").
		Joins("LEFT JOIN komponen_gaji ON penggajian.id_komponen_gaji = komponen_gaji.id_komponen_gaji").
		Select("anggota.id_anggota, anggota.nama_depan, anggota.nama_belakang, anggota.gelar_depan, anggota.gelar_belakang, "+
			"anggota.jabatan, anggota.status_pernikahan, anggota.jumlah_anak, "+
			"COALESCE(SUM(komponen_gaji.nominal), 0) AS total_nominal").
		Where("anggota.id_anggota = ?", id).
		Group("anggota.id_anggota, anggota.nama_depan, anggota.nama_belakang, anggota.gelar_depan, anggota.gelar_belakang, " +
			"anggota.jabatan, anggota.status_pernikahan, anggota.jumlah_anak").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
