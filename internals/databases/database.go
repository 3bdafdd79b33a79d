package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	anggotaModel "gajidpr_backend/internals/features/payroll/anggota/model"
	komponenModel "gajidpr_backend/internals/features/payroll/komponen/model"
	penggajianModel "gajidpr_backend/internals/features/payroll/penggajian/model"
	authModel "gajidpr_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=gajidpr&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate membuat empat relasi payroll + tabel revoked_tokens.
// Cascading delete tidak dideklarasikan di level schema; penghapusan
// anggota/komponen menangani baris penggajian-nya sendiri dalam transaksi.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&authModel.Pengguna{},
		&authModel.RevokedToken{},
		&anggotaModel.AnggotaModel{},
		&komponenModel.KomponenGajiModel{},
		&penggajianModel.PenggajianModel{},
	); err != nil {
		return err
	}

	// Index sekunder untuk join agregasi (idempotent).
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS penggajian_id_anggota_index ON penggajian (id_anggota)`).Error; err != nil {
		return err
	}
	return db.Exec(`CREATE INDEX IF NOT EXISTS penggajian_id_komponen_gaji_index ON penggajian (id_komponen_gaji)`).Error
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
