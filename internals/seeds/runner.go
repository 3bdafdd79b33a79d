package seeds

import (
	"log"

	"gorm.io/gorm"

	"gajidpr_backend/internals/seeds/payroll"
	"gajidpr_backend/internals/seeds/users"
)

// RunAllSeeds mengisi data awal. Idempotent: baris yang sudah ada dilewati.
func RunAllSeeds(db *gorm.DB) error {
	log.Println("🌱 Menjalankan seeds...")

	if err := users.SeedPengguna(db); err != nil {
		return err
	}
	if err := payroll.SeedAnggota(db); err != nil {
		return err
	}
	if err := payroll.SeedKomponenGaji(db); err != nil {
		return err
	}
	if err := payroll.SeedPenggajian(db); err != nil {
		return err
	}

	log.Println("✅ Seeds selesai.")
	return nil
}
