package users

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gajidpr_backend/internals/constants"
	"gajidpr_backend/internals/features/users/auth/model"
)

type penggunaSeed struct {
	IDPengguna   int64
	Username     string
	Password     string // plaintext, di-hash saat insert
	Email        string
	NamaDepan    string
	NamaBelakang string
	Role         string
}

var penggunaData = []penggunaSeed{
	{1, "admin", "admin123", "thoriq@simanjuntak.com", "Thoriq", "Simanjuntak", constants.RoleAdmin},
	{2, "citizen", "public123", "richard@subakat.com", "Richard", "Subakat", constants.RolePublic},
}

func SeedPengguna(db *gorm.DB) error {
	for _, data := range penggunaData {
		var cnt int64
		if err := db.Model(&model.Pengguna{}).
			Where("username = ?", data.Username).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			log.Printf("ℹ️ Pengguna '%s' sudah ada, dilewati.", data.Username)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		row := model.Pengguna{
			IDPengguna:   data.IDPengguna,
			Username:     data.Username,
			Password:     string(hashed),
			Email:        data.Email,
			NamaDepan:    data.NamaDepan,
			NamaBelakang: data.NamaBelakang,
			Role:         data.Role,
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
		log.Printf("✅ Pengguna '%s' (%s) dibuat.", data.Username, data.Role)
	}
	return nil
}
