package model

// PenggajianModel adalah relasi many-to-many anggota ↔ komponen gaji.
// Primary key komposit sekaligus backstop anti duplikat saat penulis
// konkuren lolos dari pengecekan aplikasi.
type PenggajianModel struct {
	IDKomponenGaji int64 `json:"id_komponen_gaji" gorm:"column:id_komponen_gaji;primaryKey;autoIncrement:false"`
	IDAnggota      int64 `json:"id_anggota" gorm:"column:id_anggota;primaryKey;autoIncrement:false"`
}

func (PenggajianModel) TableName() string {
	return "penggajian"
}
