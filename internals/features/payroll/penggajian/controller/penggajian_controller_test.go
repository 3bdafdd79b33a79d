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
	komponenModel "gajidpr_backend/internals/features/payroll/komponen/model"
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
	ctrl := NewPenggajianController(db)
	app.Get("/penggajian", ctrl.Index)
	app.Post("/penggajian", ctrl.Store)
	app.Get("/penggajian/:id", ctrl.Show)
	app.Put("/penggajian/:id", ctrl.Update)
	app.Delete("/penggajian/:id", ctrl.Destroy)
	app.Delete("/penggajian/:id/komponen/:idKomponen", ctrl.DestroyKomponen)

	pub := NewPublicController(db)
	app.Get("/public/anggota", pub.DaftarAnggota)
	app.Get("/public/penggajian/:id", pub.DataPenggajian)

	return app, db
}

func seedControllerFixture(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&anggotaModel.AnggotaModel{
		IDAnggota: 101, NamaDepan: "Puan", NamaBelakang: "Maharani",
		Jabatan: constants.JabatanKetua, StatusPernikahan: constants.StatusKawin, JumlahAnak: 2,
	}).Error)
	komponen := []komponenModel.KomponenGajiModel{
		{IDKomponenGaji: 201, NamaKomponen: "Gaji Pokok Ketua", Kategori: constants.KategoriGajiPokok, Jabatan: constants.JabatanKetua, Nominal: decimal.NewFromInt(5040000), Satuan: constants.SatuanBulan},
		{IDKomponenGaji: 203, NamaKomponen: "Gaji Pokok Anggota", Kategori: constants.KategoriGajiPokok, Jabatan: constants.JabatanAnggota, Nominal: decimal.NewFromInt(4200000), Satuan: constants.SatuanBulan},
		{IDKomponenGaji: 204, NamaKomponen: "Tunjangan Istri/Suami", Kategori: constants.KategoriTunjanganMelekat, Jabatan: constants.JabatanSemua, Nominal: decimal.NewFromInt(420000), Satuan: constants.SatuanBulan},
	}
	for i := range komponen {
		require.NoError(t, db.Create(&komponen[i]).Error)
	}
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

func TestStorePenggajian(t *testing.T) {
	app, db := newTestApp(t)
	seedControllerFixture(t, db)

	// id duplikat di payload di-dedup sebelum diproses
	resp, body := doJSON(t, app, fiber.MethodPost, "/penggajian", fiber.Map{
		"id_anggota":        101,
		"komponen_gaji_ids": []int64{201, 204, 204},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	summary := data["summary"].(map[string]interface{})
	require.InDelta(t, 2, summary["jumlah_komponen"].(float64), 0.001)
	// 5.040.000 + 420.000 (kawin) + 2×0 (tunjangan anak tak terdaftar di katalog)
	require.InDelta(t, 5460000, summary["take_home_pay"].(float64), 0.001)
}

func TestStorePenggajianAnggotaTidakAda(t *testing.T) {
	app, db := newTestApp(t)
	seedControllerFixture(t, db)

	resp, body := doJSON(t, app, fiber.MethodPost, "/penggajian", fiber.Map{
		"id_anggota":        999,
		"komponen_gaji_ids": []int64{201},
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.Equal(t, "Data anggota tidak ditemukan.", body["message"])
}

func TestStorePenggajianKomponenTidakAda(t *testing.T) {
	app, db := newTestApp(t)
	seedControllerFixture(t, db)

	resp, body := doJSON(t, app, fiber.MethodPost, "/penggajian", fiber.Map{
		"id_anggota":        101,
		"komponen_gaji_ids": []int64{201, 998, 999},
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	require.Equal(t, []interface{}{float64(998), float64(999)}, body["missing_components"])
	require.Contains(t, body["errors"].(map[string]interface{}), "komponen_gaji_ids")
}

func TestStorePenggajianJabatanTidakCocok(t *testing.T) {
	app, db := newTestApp(t)
	seedControllerFixture(t, db)

	// komponen 203 khusus jabatan Anggota, 101 adalah Ketua
	resp, body := doJSON(t, app, fiber.MethodPost, "/penggajian", fiber.Map{
		"id_anggota":        101,
		"komponen_gaji_ids": []int64{203},
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	require.Equal(t, `Komponen gaji "Gaji Pokok Anggota" tidak dapat diberikan ke jabatan Ketua.`, body["message"])
}

func TestStorePenggajianDuplikat(t *testing.T) {
	app, db := newTestApp(t)
	seedControllerFixture(t, db)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/penggajian", fiber.Map{
		"id_anggota":        101,
		"komponen_gaji_ids": []int64{201},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, fiber.MethodPost, "/penggajian", fiber.Map{
		"id_anggota":        101,
		"komponen_gaji_ids": []int64{201, 204},
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	require.Equal(t, []interface{}{float64(201)}, body["duplicate_components"])
}

func TestUpdatePenggajianReplace(t *testing.T) {
	app, db := newTestApp(t)
	seedControllerFixture(t, db)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/penggajian", fiber.Map{
		"id_anggota":        101,
		"komponen_gaji_ids": []int64{201},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, fiber.MethodPut, "/penggajian/101", fiber.Map{
		"komponen_gaji_ids": []int64{204},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	summary := data["summary"].(map[string]interface{})
	require.InDelta(t, 1, summary["jumlah_komponen"].(float64), 0.001)
}

func TestDestroyPenggajian(t *testing.T) {
	app, db := newTestApp(t)
	seedControllerFixture(t, db)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/penggajian", fiber.Map{
		"id_anggota":        101,
		"komponen_gaji_ids": []int64{201, 204},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodDelete, "/penggajian/101", nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// detail tetap ada (anggota masih hidup), komponennya kosong
	resp, body := doJSON(t, app, fiber.MethodGet, "/penggajian/101", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	require.Empty(t, data["komponen_gaji"])
}

func TestDestroyKomponenRelasi(t *testing.T) {
	app, db := newTestApp(t)
	seedControllerFixture(t, db)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/penggajian", fiber.Map{
		"id_anggota":        101,
		"komponen_gaji_ids": []int64{201, 204},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, fiber.MethodDelete, "/penggajian/101/komponen/201", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	require.Len(t, data["komponen_gaji"], 1)

	resp, body = doJSON(t, app, fiber.MethodDelete, "/penggajian/101/komponen/201", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.Equal(t, "Relasi komponen gaji untuk anggota ini tidak ditemukan.", body["message"])
}

func TestPublicEndpoints(t *testing.T) {
	app, db := newTestApp(t)
	seedControllerFixture(t, db)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/penggajian", fiber.Map{
		"id_anggota":        101,
		"komponen_gaji_ids": []int64{201, 204},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, fiber.MethodGet, "/public/anggota", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rows := body["data"].([]interface{})
	require.Len(t, rows, 1)
	meta := body["meta"].(map[string]interface{})
	require.InDelta(t, 1, meta["total"].(float64), 0.001)

	resp, body = doJSON(t, app, fiber.MethodGet, "/public/penggajian/101", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	require.NotNil(t, data["summary"])

	resp, _ = doJSON(t, app, fiber.MethodGet, "/public/penggajian/999", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
