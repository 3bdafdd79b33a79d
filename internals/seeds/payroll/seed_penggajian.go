package payroll

import (
	"log"

	"gorm.io/gorm"

	"gajidpr_backend/internals/features/payroll/penggajian/model"
)

// Paket standar per jabatan + tunjangan melekat untuk semua.
var penggajianData = map[int64][]int64{
	101: {201, 204, 205, 206, 207, 210, 213, 216, 219, 222, 224, 225},
	102: {202, 204, 205, 206, 208, 210, 214, 217, 220, 222, 224, 225},
	103: {203, 204, 205, 206, 209, 210, 215, 218, 221, 222, 224, 225},
	104: {202, 204, 205, 206, 208, 210, 214, 217, 220, 222, 224, 225},
	105: {203, 204, 205, 206, 209, 210, 215, 218, 221, 222, 224, 225},
	106: {203, 204, 205, 206, 209, 210, 215, 218, 221, 222, 224, 225},
}

func SeedPenggajian(db *gorm.DB) error {
	inserted := 0
	for idAnggota, komponenIDs := range penggajianData {
		for _, idKomponen := range komponenIDs {
			var cnt int64
			if err := db.Model(&model.PenggajianModel{}).
				Where("id_anggota = ? AND id_komponen_gaji = ?", idAnggota, idKomponen).
				Count(&cnt).Error; err != nil {
				return err
			}
			if cnt > 0 {
				continue
			}
			row := model.PenggajianModel{IDKomponenGaji: idKomponen, IDAnggota: idAnggota}
			if err := db.Create(&row).Error; err != nil {
				return err
			}
			inserted++
		}
	}
	log.Printf("✅ Seed penggajian: %d relasi baru.", inserted)
	return nil
}
