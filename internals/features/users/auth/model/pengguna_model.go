package model

// Pengguna adalah akun yang bisa login (Admin atau Public).
type Pengguna struct {
	IDPengguna   int64  `json:"id_pengguna" gorm:"column:id_pengguna;primaryKey;autoIncrement:false"`
	Username     string `json:"username" gorm:"column:username;type:varchar(15);uniqueIndex;not null"`
	Password     string `json:"-" gorm:"column:password;type:varchar(128);not null"` // hashed
	Email        string `json:"email" gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	NamaDepan    string `json:"nama_depan" gorm:"column:nama_depan;type:varchar(100);not null"`
	NamaBelakang string `json:"nama_belakang" gorm:"column:nama_belakang;type:varchar(100);not null"`
	Role         string `json:"role" gorm:"column:role;type:varchar(10)"`
}

func (Pengguna) TableName() string {
	return "pengguna"
}
