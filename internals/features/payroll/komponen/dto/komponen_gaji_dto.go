package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	m "gajidpr_backend/internals/features/payroll/komponen/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateKomponenGajiRequest struct {
	IDKomponenGaji int64           `json:"id_komponen_gaji" validate:"required,min=1,max=999999999999"`
	NamaKomponen   string          `json:"nama_komponen" validate:"required,max=100"`
	Kategori       string          `json:"kategori" validate:"required,oneof='Gaji Pokok' 'Tunjangan Melekat' 'Tunjangan Lain'"`
	Jabatan        string          `json:"jabatan" validate:"required,oneof=Ketua 'Wakil Ketua' Anggota Semua"`
	Nominal        decimal.Decimal `json:"nominal"`
	Satuan         string          `json:"satuan" validate:"required,oneof=Bulan Hari Periode"`
}

func (r *CreateKomponenGajiRequest) Normalize() {
	r.NamaKomponen = strings.TrimSpace(r.NamaKomponen)
	r.Kategori = strings.TrimSpace(r.Kategori)
	r.Jabatan = strings.TrimSpace(r.Jabatan)
	r.Satuan = strings.TrimSpace(r.Satuan)
}

func (r CreateKomponenGajiRequest) ToModel() m.KomponenGajiModel {
	return m.KomponenGajiModel{
		IDKomponenGaji: r.IDKomponenGaji,
		NamaKomponen:   r.NamaKomponen,
		Kategori:       r.Kategori,
		Jabatan:        r.Jabatan,
		Nominal:        r.Nominal.Round(2),
		Satuan:         r.Satuan,
	}
}

/* =========================================================
   UPDATE — partial; id tidak boleh diganti lewat body
   ========================================================= */

type UpdateKomponenGajiRequest struct {
	IDKomponenGaji *int64           `json:"id_komponen_gaji" validate:"isdefault"` // prohibited
	NamaKomponen   *string          `json:"nama_komponen" validate:"omitempty,min=1,max=100"`
	Kategori       *string          `json:"kategori" validate:"omitempty,oneof='Gaji Pokok' 'Tunjangan Melekat' 'Tunjangan Lain'"`
	Jabatan        *string          `json:"jabatan" validate:"omitempty,oneof=Ketua 'Wakil Ketua' Anggota Semua"`
	Nominal        *decimal.Decimal `json:"nominal"`
	Satuan         *string          `json:"satuan" validate:"omitempty,oneof=Bulan Hari Periode"`
}

func (r *UpdateKomponenGajiRequest) Normalize() {
	trimStrPtr(&r.NamaKomponen)
	trimStrPtr(&r.Kategori)
	trimStrPtr(&r.Jabatan)
	trimStrPtr(&r.Satuan)
}

func (r UpdateKomponenGajiRequest) ApplyTo(k *m.KomponenGajiModel) {
	if r.NamaKomponen != nil {
		k.NamaKomponen = *r.NamaKomponen
	}
	if r.Kategori != nil {
		k.Kategori = *r.Kategori
	}
	if r.Jabatan != nil {
		k.Jabatan = *r.Jabatan
	}
	if r.Nominal != nil {
		k.Nominal = r.Nominal.Round(2)
	}
	if r.Satuan != nil {
		k.Satuan = *r.Satuan
	}
}

func trimStrPtr(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	*pp = &v
}
