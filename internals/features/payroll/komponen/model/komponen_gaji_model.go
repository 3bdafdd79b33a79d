package model

import "github.com/shopspring/decimal"

// KomponenGajiModel adalah satu komponen gaji/tunjangan di katalog.
// Nominal disimpan NUMERIC(17,2); aritmetika memakai decimal, konversi
// ke float hanya di boundary serialisasi.
type KomponenGajiModel struct {
	IDKomponenGaji int64           `json:"id_komponen_gaji" gorm:"column:id_komponen_gaji;primaryKey;autoIncrement:false"`
	NamaKomponen   string          `json:"nama_komponen" gorm:"column:nama_komponen;type:varchar(100);not null"`
	Kategori       string          `json:"kategori" gorm:"column:kategori;type:varchar(20);not null"`
	Jabatan        string          `json:"jabatan" gorm:"column:jabatan;type:varchar(20);not null"`
	Nominal        decimal.Decimal `json:"nominal" gorm:"column:nominal;type:numeric(17,2);not null"`
	Satuan         string          `json:"satuan" gorm:"column:satuan;type:varchar(10);not null"`
}

func (KomponenGajiModel) TableName() string {
	return "komponen_gaji"
}
