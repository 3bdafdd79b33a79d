package model

// AnggotaModel merepresentasikan satu anggota dewan.
// ID diberikan dari luar (bukan auto increment).
type AnggotaModel struct {
	IDAnggota        int64   `json:"id_anggota" gorm:"column:id_anggota;primaryKey;autoIncrement:false"`
	NamaDepan        string  `json:"nama_depan" gorm:"column:nama_depan;type:varchar(100);not null"`
	NamaBelakang     string  `json:"nama_belakang" gorm:"column:nama_belakang;type:varchar(100);not null"`
	GelarDepan       *string `json:"gelar_depan" gorm:"column:gelar_depan;type:varchar(50)"`
	GelarBelakang    *string `json:"gelar_belakang" gorm:"column:gelar_belakang;type:varchar(50)"`
	Jabatan          string  `json:"jabatan" gorm:"column:jabatan;type:varchar(20);not null"`
	StatusPernikahan string  `json:"status_pernikahan" gorm:"column:status_pernikahan;type:varchar(20);not null"`
	JumlahAnak       int     `json:"jumlah_anak" gorm:"column:jumlah_anak;not null;default:0"`
}

func (AnggotaModel) TableName() string {
	return "anggota"
}
