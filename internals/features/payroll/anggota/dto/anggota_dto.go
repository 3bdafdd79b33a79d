package dto

import (
	"strings"

	m "gajidpr_backend/internals/features/payroll/anggota/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateAnggotaRequest struct {
	IDAnggota        int64   `json:"id_anggota" validate:"required,min=1"`
	NamaDepan        string  `json:"nama_depan" validate:"required,max=100"`
	NamaBelakang     string  `json:"nama_belakang" validate:"required,max=100"`
	GelarDepan       *string `json:"gelar_depan" validate:"omitempty,max=50"`
	GelarBelakang    *string `json:"gelar_belakang" validate:"omitempty,max=50"`
	Jabatan          string  `json:"jabatan" validate:"required,oneof=Ketua 'Wakil Ketua' Anggota"`
	StatusPernikahan string  `json:"status_pernikahan" validate:"required,oneof=Kawin 'Belum Kawin' 'Cerai Hidup' 'Cerai Mati'"`
	JumlahAnak       *int    `json:"jumlah_anak" validate:"required,min=0"`
}

func (r *CreateAnggotaRequest) Normalize() {
	r.NamaDepan = strings.TrimSpace(r.NamaDepan)
	r.NamaBelakang = strings.TrimSpace(r.NamaBelakang)
	trimPtr(&r.GelarDepan)
	trimPtr(&r.GelarBelakang)
}

func (r CreateAnggotaRequest) ToModel() m.AnggotaModel {
	jumlahAnak := 0
	if r.JumlahAnak != nil {
		jumlahAnak = *r.JumlahAnak
	}
	return m.AnggotaModel{
		IDAnggota:        r.IDAnggota,
		NamaDepan:        r.NamaDepan,
		NamaBelakang:     r.NamaBelakang,
		GelarDepan:       r.GelarDepan,
		GelarBelakang:    r.GelarBelakang,
		Jabatan:          r.Jabatan,
		StatusPernikahan: r.StatusPernikahan,
		JumlahAnak:       jumlahAnak,
	}
}

/* =========================================================
   UPDATE — id dari path, bukan body
   ========================================================= */

type UpdateAnggotaRequest struct {
	NamaDepan        string  `json:"nama_depan" validate:"required,max=100"`
	NamaBelakang     string  `json:"nama_belakang" validate:"required,max=100"`
	GelarDepan       *string `json:"gelar_depan" validate:"omitempty,max=50"`
	GelarBelakang    *string `json:"gelar_belakang" validate:"omitempty,max=50"`
	Jabatan          string  `json:"jabatan" validate:"required,oneof=Ketua 'Wakil Ketua' Anggota"`
	StatusPernikahan string  `json:"status_pernikahan" validate:"required,oneof=Kawin 'Belum Kawin' 'Cerai Hidup' 'Cerai Mati'"`
	JumlahAnak       *int    `json:"jumlah_anak" validate:"required,min=0"`
}

func (r *UpdateAnggotaRequest) Normalize() {
	r.NamaDepan = strings.TrimSpace(r.NamaDepan)
	r.NamaBelakang = strings.TrimSpace(r.NamaBelakang)
	trimPtr(&r.GelarDepan)
	trimPtr(&r.GelarBelakang)
}

func (r UpdateAnggotaRequest) ApplyTo(ang *m.AnggotaModel) {
	ang.NamaDepan = r.NamaDepan
	ang.NamaBelakang = r.NamaBelakang
	ang.GelarDepan = r.GelarDepan
	ang.GelarBelakang = r.GelarBelakang
	ang.Jabatan = r.Jabatan
	ang.StatusPernikahan = r.StatusPernikahan
	if r.JumlahAnak != nil {
		ang.JumlahAnak = *r.JumlahAnak
	}
}

func trimPtr(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	*pp = &v
}
