// internals/features/payroll/penggajian/service/aggregator_service.go
package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gajidpr_backend/internals/constants"
	anggotaModel "gajidpr_backend/internals/features/payroll/anggota/model"
	komponenModel "gajidpr_backend/internals/features/payroll/komponen/model"
)

// Dua komponen "tunjangan melekat" spesial di-resolve by nama, bukan FK.
// Resolver ini satu-satunya tempat yang tahu kedua nama tersebut.
const (
	NamaTunjanganPasangan = "Tunjangan Istri/Suami"
	NamaTunjanganAnak     = "Tunjangan Anak"
)

// Tunjangan anak berlaku maksimal untuk 2 anak.
const MaxAnakDitanggung = 2

type Allowances struct {
	Spouse decimal.Decimal
	Child  decimal.Decimal
}

// PenggajianAggregator menghitung ringkasan take-home-pay per anggota
// lewat satu query agregasi anggota × penggajian × komponen_gaji.
type PenggajianAggregator struct {
	DB *gorm.DB
}

func NewPenggajianAggregator(db *gorm.DB) *PenggajianAggregator {
	return &PenggajianAggregator{DB: db}
}

// ResolveAllowances membaca nominal tunjangan pasangan/anak dari katalog.
// Selalu dipanggil ulang per agregasi (tanpa cache) karena nominal bisa
// berubah di antara request. Komponen yang tidak ada dihitung 0.
func (a *PenggajianAggregator) ResolveAllowances() (Allowances, error) {
	var rows []komponenModel.KomponenGajiModel
	err := a.DB.
		Where("nama_komponen IN ?", []string{NamaTunjanganPasangan, NamaTunjanganAnak}).
		Find(&rows).Error
	if err != nil {
		return Allowances{}, err
	}

	alw := Allowances{Spouse: decimal.Zero, Child: decimal.Zero}
	for _, row := range rows {
		switch row.NamaKomponen {
		case NamaTunjanganPasangan:
			alw.Spouse = row.Nominal
		case NamaTunjanganAnak:
			alw.Child = row.Nominal
		}
	}
	return alw, nil
}

/* =========================================================
   Ringkasan (summary) per anggota
   ========================================================= */

type RingkasanRow struct {
	IDAnggota        int64   `json:"id_anggota"`
	NamaDepan        string  `json:"nama_depan"`
	NamaBelakang     string  `json:"nama_belakang"`
	GelarDepan       *string `json:"gelar_depan"`
	GelarBelakang    *string `json:"gelar_belakang"`
	Jabatan          string  `json:"jabatan"`
	StatusPernikahan string  `json:"status_pernikahan"`
	JumlahAnak       int     `json:"jumlah_anak"`
	TotalBulanan     float64 `json:"total_bulanan"`
	TakeHomePay      float64 `json:"take_home_pay"`
	JumlahKomponen   int64   `json:"jumlah_komponen"`
}

// buildAggregationQuery menyusun query ringkasan. Nominal tunjangan
// disisipkan sebagai literal 2 desimal ke ekspresi SQL sehingga
// take_home_pay ikut tersaring/terurut di level statement dan hasilnya
// konsisten dalam satu statement.
func (a *PenggajianAggregator) buildAggregationQuery(alw Allowances) *gorm.DB {
	spouseValue := alw.Spouse.StringFixed(2)
	childValue := alw.Child.StringFixed(2)

	baseSumExpr := fmt.Sprintf(
		"COALESCE(SUM(CASE WHEN komponen_gaji.satuan = '%s' AND komponen_gaji.nama_komponen NOT IN ('%s','%s') THEN komponen_gaji.nominal ELSE 0 END), 0)",
		constants.SatuanBulan, NamaTunjanganPasangan, NamaTunjanganAnak,
	)

	limitedChildrenExpr := fmt.Sprintf(
		"CASE WHEN COALESCE(anggota.jumlah_anak, 0) > %d THEN %d ELSE COALESCE(anggota.jumlah_anak, 0) END",
		MaxAnakDitanggung, MaxAnakDitanggung,
	)

	takeHomeExpr := fmt.Sprintf(
		"%s + CASE WHEN anggota.status_pernikahan = '%s' THEN %s ELSE 0 END + ((%s) * %s)",
		baseSumExpr, constants.StatusKawin, spouseValue, limitedChildrenExpr, childValue,
	)

	return a.DB.Table("anggota").
		Select(fmt.Sprintf(
			"anggota.id_anggota, anggota.nama_depan, anggota.nama_belakang, anggota.gelar_depan, anggota.gelar_belakang, "+
				"anggota.jabatan, anggota.status_pernikahan, anggota.jumlah_anak, "+
				"%s AS total_bulanan, %s AS take_home_pay, COUNT(penggajian.id_komponen_gaji) AS jumlah_komponen",
			baseSumExpr, takeHomeExpr,
		)).
		Joins("LEFT JOIN penggajian ON anggota.id_anggota = penggajian.id_anggota").
		Joins("LEFT JOIN komponen_gaji ON penggajian.id_komponen_gaji = komponen_gaji.id_komponen_gaji").
		Group("anggota.id_anggota, anggota.nama_depan, anggota.nama_belakang, anggota.gelar_depan, anggota.gelar_belakang, " +
			"anggota.jabatan, anggota.status_pernikahan, anggota.jumlah_anak")
}

// ListRingkasan mengembalikan halaman ringkasan + total baris untuk meta
// pagination. Search: substring case-insensitive atas nama/gelar/jabatan/
// status/id (teks)/take_home_pay (teks).
func (a *PenggajianAggregator) ListRingkasan(search string, limit, offset int) ([]RingkasanRow, int64, error) {
	alw, err := a.ResolveAllowances()
	if err != nil {
		return nil, 0, err
	}

	base := func() *gorm.DB {
		q := a.DB.Table("(?) AS penggajian_ringkasan", a.buildAggregationQuery(alw))
		if s := strings.TrimSpace(search); s != "" {
			like := "%" + strings.ToLower(s) + "%"
			q = q.Where(
				"LOWER(nama_depan) LIKE ? OR LOWER(nama_belakang) LIKE ? OR LOWER(gelar_depan) LIKE ? OR LOWER(gelar_belakang) LIKE ? "+
					"OR LOWER(jabatan) LIKE ? OR LOWER(status_pernikahan) LIKE ? OR CAST(id_anggota AS TEXT) LIKE ? OR LOWER(CAST(take_home_pay AS TEXT)) LIKE ?",
				like, like, like, like, like, like, like, like,
			)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]RingkasanRow, 0, limit)
	if err := base().
		Order("id_anggota ASC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

/* =========================================================
   Detail per anggota
   ========================================================= */

type KomponenItem struct {
	IDKomponenGaji int64   `json:"id_komponen_gaji"`
	NamaKomponen   string  `json:"nama_komponen"`
	Kategori       string  `json:"kategori"`
	Jabatan        string  `json:"jabatan"`
	Nominal        float64 `json:"nominal"`
	Satuan         string  `json:"satuan"`
}

type RingkasanSummary struct {
	JumlahKomponen    int64   `json:"jumlah_komponen"`
	TotalBulanan      float64 `json:"total_bulanan"`
	TunjanganPasangan float64 `json:"tunjangan_pasangan"`
	TunjanganAnak     float64 `json:"tunjangan_anak"`
	TakeHomePay       float64 `json:"take_home_pay"`
}

type DetailPayload struct {
	Anggota      anggotaModel.AnggotaModel `json:"anggota"`
	KomponenGaji []KomponenItem            `json:"komponen_gaji"`
	Summary      RingkasanSummary          `json:"summary"`
}

// Detail mengembalikan nil (tanpa error) bila anggota tidak ada.
func (a *PenggajianAggregator) Detail(idAnggota int64) (*DetailPayload, error) {
	alw, err := a.ResolveAllowances()
	if err != nil {
		return nil, err
	}

	var rows []RingkasanRow
	if err := a.buildAggregationQuery(alw).
		Where("anggota.id_anggota = ?", idAnggota).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	row := rows[0]

	komponen := make([]KomponenItem, 0)
	if err := a.DB.Table("penggajian").
		Joins("JOIN komponen_gaji ON penggajian.id_komponen_gaji = komponen_gaji.id_komponen_gaji").
		Where("penggajian.id_anggota = ?", idAnggota).
		Select("komponen_gaji.id_komponen_gaji, komponen_gaji.nama_komponen, komponen_gaji.kategori, " +
			"komponen_gaji.jabatan, komponen_gaji.nominal, komponen_gaji.satuan").
		Order("komponen_gaji.kategori ASC").
		Order("komponen_gaji.id_komponen_gaji ASC").
		Scan(&komponen).Error; err != nil {
		return nil, err
	}

	spouseApplied := decimal.Zero
	if row.StatusPernikahan == constants.StatusKawin {
		spouseApplied = alw.Spouse
	}
	anakDitanggung := row.JumlahAnak
	if anakDitanggung > MaxAnakDitanggung {
		anakDitanggung = MaxAnakDitanggung
	}
	childrenApplied := alw.Child.Mul(decimal.NewFromInt(int64(anakDitanggung)))

	return &DetailPayload{
		Anggota: anggotaModel.AnggotaModel{
			IDAnggota:        row.IDAnggota,
			NamaDepan:        row.NamaDepan,
			NamaBelakang:     row.NamaBelakang,
			GelarDepan:       row.GelarDepan,
			GelarBelakang:    row.GelarBelakang,
			Jabatan:          row.Jabatan,
			StatusPernikahan: row.StatusPernikahan,
			JumlahAnak:       row.JumlahAnak,
		},
		KomponenGaji: komponen,
		Summary: RingkasanSummary{
			JumlahKomponen:    row.JumlahKomponen,
			TotalBulanan:      row.TotalBulanan,
			TunjanganPasangan: spouseApplied.InexactFloat64(),
			TunjanganAnak:     childrenApplied.InexactFloat64(),
			TakeHomePay:       row.TakeHomePay,
		},
	}, nil
}
