package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gajidpr_backend/internals/constants"
	database "gajidpr_backend/internals/databases"
	anggotaModel "gajidpr_backend/internals/features/payroll/anggota/model"
	"gajidpr_backend/internals/features/payroll/komponen/model"
	penggajianModel "gajidpr_backend/internals/features/payroll/penggajian/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	ctrl := NewKomponenGajiController(db)
	app.Get("/komponen-gaji", ctrl.Index)
	app.Post("/komponen-gaji", ctrl.Store)
	app.Get("/komponen-gaji/:id", ctrl.Show)
	app.Put("/komponen-gaji/:id", ctrl.Update)
	app.Delete("/komponen-gaji/:id", ctrl.Destroy)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func validPayload() fiber.Map {
	return fiber.Map{
		"id_komponen_gaji": 201,
		"nama_komponen":    "Gaji Pokok Ketua",
		"kategori":         "Gaji Pokok",
		"jabatan":          "Ketua",
		"nominal":          5040000,
		"satuan":           "Bulan",
	}
}

func TestStoreKomponenGaji(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, fiber.MethodPost, "/komponen-gaji", validPayload())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	require.Equal(t, "Gaji Pokok Ketua", data["nama_komponen"])

	// id yang sama tidak boleh dipakai dua kali
	resp, body = doJSON(t, app, fiber.MethodPost, "/komponen-gaji", validPayload())
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	require.Contains(t, body["errors"].(map[string]interface{}), "id_komponen_gaji")
}

func TestStoreKomponenGajiValidasi(t *testing.T) {
	app, _ := newTestApp(t)

	t.Run("nominal negatif", func(t *testing.T) {
		payload := validPayload()
		payload["nominal"] = -1000
		resp, body := doJSON(t, app, fiber.MethodPost, "/komponen-gaji", payload)
		require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		require.Contains(t, body["errors"].(map[string]interface{}), "nominal")
	})

	t.Run("kategori di luar enum", func(t *testing.T) {
		payload := validPayload()
		payload["kategori"] = "Bonus"
		resp, _ := doJSON(t, app, fiber.MethodPost, "/komponen-gaji", payload)
		require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("satuan di luar enum", func(t *testing.T) {
		payload := validPayload()
		payload["satuan"] = "Tahun"
		resp, _ := doJSON(t, app, fiber.MethodPost, "/komponen-gaji", payload)
		require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestIndexKomponenGajiFilter(t *testing.T) {
	app, db := newTestApp(t)
	rows := []model.KomponenGajiModel{
		{IDKomponenGaji: 201, NamaKomponen: "Gaji Pokok Ketua", Kategori: constants.KategoriGajiPokok, Jabatan: constants.JabatanKetua, Nominal: decimal.NewFromInt(5040000), Satuan: constants.SatuanBulan},
		{IDKomponenGaji: 204, NamaKomponen: "Tunjangan Istri/Suami", Kategori: constants.KategoriTunjanganMelekat, Jabatan: constants.JabatanSemua, Nominal: decimal.NewFromInt(420000), Satuan: constants.SatuanBulan},
		{IDKomponenGaji: 225, NamaKomponen: "Fasilitas Kredit Mobil", Kategori: constants.KategoriTunjanganLain, Jabatan: constants.JabatanSemua, Nominal: decimal.NewFromInt(70000000), Satuan: constants.SatuanPeriode},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	resp, body := doJSON(t, app, fiber.MethodGet, "/komponen-gaji?kategori=Gaji+Pokok", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, body["data"].([]interface{}), 1)

	resp, body = doJSON(t, app, fiber.MethodGet, "/komponen-gaji?satuan=Periode", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, body["data"].([]interface{}), 1)

	// match nama (204) dan kategori "Tunjangan Lain" (225)
	resp, body = doJSON(t, app, fiber.MethodGet, "/komponen-gaji?search=tunjangan", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, body["data"].([]interface{}), 2)

	// search by id
	resp, body = doJSON(t, app, fiber.MethodGet, "/komponen-gaji?search=225", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, body["data"].([]interface{}), 1)

	// filter tidak dikenal diabaikan → semua baris
	resp, body = doJSON(t, app, fiber.MethodGet, "/komponen-gaji?kategori=Bonus", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, body["data"].([]interface{}), 3)
}

func TestUpdateKomponenGaji(t *testing.T) {
	app, _ := newTestApp(t)
	resp, _ := doJSON(t, app, fiber.MethodPost, "/komponen-gaji", validPayload())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// partial update: hanya nominal
	resp, body := doJSON(t, app, fiber.MethodPut, "/komponen-gaji/201", fiber.Map{"nominal": 6000000})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	require.Equal(t, "Gaji Pokok Ketua", data["nama_komponen"])

	// id tidak boleh diganti lewat body
	resp, body = doJSON(t, app, fiber.MethodPut, "/komponen-gaji/201", fiber.Map{"id_komponen_gaji": 999})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	require.Contains(t, body["errors"].(map[string]interface{}), "id_komponen_gaji")

	resp, _ = doJSON(t, app, fiber.MethodPut, "/komponen-gaji/999", fiber.Map{"nominal": 1})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDestroyKomponenGajiCascade(t *testing.T) {
	app, db := newTestApp(t)
	resp, _ := doJSON(t, app, fiber.MethodPost, "/komponen-gaji", validPayload())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.NoError(t, db.Create(&anggotaModel.AnggotaModel{
		IDAnggota: 101, NamaDepan: "Puan", NamaBelakang: "Maharani",
		Jabatan: constants.JabatanKetua, StatusPernikahan: constants.StatusKawin, JumlahAnak: 2,
	}).Error)
	require.NoError(t, db.Create(&penggajianModel.PenggajianModel{IDKomponenGaji: 201, IDAnggota: 101}).Error)

	resp, _ = doJSON(t, app, fiber.MethodDelete, "/komponen-gaji/201", nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// relasi penggajian ikut terhapus
	var cnt int64
	require.NoError(t, db.Model(&penggajianModel.PenggajianModel{}).Count(&cnt).Error)
	require.EqualValues(t, 0, cnt)

	resp, _ = doJSON(t, app, fiber.MethodDelete, "/komponen-gaji/201", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
