package payroll

import (
	"log"

	"gorm.io/gorm"

	"gajidpr_backend/internals/constants"
	"gajidpr_backend/internals/features/payroll/anggota/model"
)

func strPtr(s string) *string { return &s }

var anggotaData = []model.AnggotaModel{
	{IDAnggota: 101, NamaDepan: "Puan", NamaBelakang: "Maharani", GelarDepan: strPtr("Dr. (H.C.)"), GelarBelakang: strPtr("S.Sos."), Jabatan: constants.JabatanKetua, StatusPernikahan: constants.StatusKawin, JumlahAnak: 2},
	{IDAnggota: 102, NamaDepan: "Lodewijk", NamaBelakang: "Paulus", Jabatan: constants.JabatanWakilKetua, StatusPernikahan: constants.StatusKawin, JumlahAnak: 3},
	{IDAnggota: 103, NamaDepan: "Fadli", NamaBelakang: "Zon", GelarDepan: strPtr("Dr."), GelarBelakang: strPtr("S.S., M.Sc."), Jabatan: constants.JabatanAnggota, StatusPernikahan: constants.StatusKawin, JumlahAnak: 1},
	{IDAnggota: 104, NamaDepan: "Sufmi", NamaBelakang: "Dasco", GelarDepan: strPtr("Prof. Dr. Ir. H."), GelarBelakang: strPtr("S.H., M.H."), Jabatan: constants.JabatanWakilKetua, StatusPernikahan: constants.StatusKawin, JumlahAnak: 2},
	{IDAnggota: 105, NamaDepan: "Muhaimin", NamaBelakang: "Iskandar", GelarDepan: strPtr("Dr (HC). Drs."), Jabatan: constants.JabatanAnggota, StatusPernikahan: constants.StatusKawin, JumlahAnak: 4},
	{IDAnggota: 106, NamaDepan: "Herman", NamaBelakang: "Hery", Jabatan: constants.JabatanAnggota, StatusPernikahan: constants.StatusBelumKawin, JumlahAnak: 0},
}

func SeedAnggota(db *gorm.DB) error {
	for _, row := range anggotaData {
		var cnt int64
		if err := db.Model(&model.AnggotaModel{}).
			Where("id_anggota = ?", row.IDAnggota).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			continue
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}
	log.Printf("✅ Seed anggota: %d baris diproses.", len(anggotaData))
	return nil
}
