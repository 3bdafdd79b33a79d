package payroll

import (
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gajidpr_backend/internals/constants"
	"gajidpr_backend/internals/features/payroll/komponen/model"
)

type komponenSeed struct {
	ID       int64
	Nama     string
	Kategori string
	Jabatan  string
	Nominal  int64 // rupiah utuh; dikonversi ke decimal saat insert
	Satuan   string
}

var komponenData = []komponenSeed{
	{201, "Gaji Pokok Ketua", constants.KategoriGajiPokok, constants.JabatanKetua, 5040000, constants.SatuanBulan},
	{202, "Gaji Pokok Wakil Ketua", constants.KategoriGajiPokok, constants.JabatanWakilKetua, 4620000, constants.SatuanBulan},
	{203, "Gaji Pokok Anggota", constants.KategoriGajiPokok, constants.JabatanAnggota, 4200000, constants.SatuanBulan},
	{204, "Tunjangan Istri/Suami", constants.KategoriTunjanganMelekat, constants.JabatanSemua, 420000, constants.SatuanBulan},
	{205, "Tunjangan Anak", constants.KategoriTunjanganMelekat, constants.JabatanSemua, 168000, constants.SatuanBulan},
	{206, "Uang Sidang/Paket", constants.KategoriTunjanganMelekat, constants.JabatanSemua, 2000000, constants.SatuanBulan},
	{207, "Tunjangan Jabatan Ketua", constants.KategoriTunjanganMelekat, constants.JabatanKetua, 18900000, constants.SatuanBulan},
	{208, "Tunjangan Jabatan Wakil Ketua", constants.KategoriTunjanganMelekat, constants.JabatanWakilKetua, 15600000, constants.SatuanBulan},
	{209, "Tunjangan Jabatan Anggota", constants.KategoriTunjanganMelekat, constants.JabatanAnggota, 9700000, constants.SatuanBulan},
	{210, "Tunjangan Beras", constants.KategoriTunjanganMelekat, constants.JabatanSemua, 12000000, constants.SatuanBulan},
	{213, "Tunjangan Kehormatan Ketua", constants.KategoriTunjanganLain, constants.JabatanKetua, 6690000, constants.SatuanBulan},
	{214, "Tunjangan Kehormatan Wakil Ketua", constants.KategoriTunjanganLain, constants.JabatanWakilKetua, 6450000, constants.SatuanBulan},
	{215, "Tunjangan Kehormatan Anggota", constants.KategoriTunjanganLain, constants.JabatanAnggota, 5580000, constants.SatuanBulan},
	{216, "Tunjangan Komunikasi Ketua", constants.KategoriTunjanganLain, constants.JabatanKetua, 16468000, constants.SatuanBulan},
	{217, "Tunjangan Komunikasi Wakil Ketua", constants.KategoriTunjanganLain, constants.JabatanWakilKetua, 16009000, constants.SatuanBulan},
	{218, "Tunjangan Komunikasi Anggota", constants.KategoriTunjanganLain, constants.JabatanAnggota, 15554000, constants.SatuanBulan},
	{219, "Tunjangan Fungsi Ketua", constants.KategoriTunjanganLain, constants.JabatanKetua, 5250000, constants.SatuanBulan},
	{220, "Tunjangan Fungsi Wakil Ketua", constants.KategoriTunjanganLain, constants.JabatanWakilKetua, 4500000, constants.SatuanBulan},
	{221, "Tunjangan Fungsi Anggota", constants.KategoriTunjanganLain, constants.JabatanAnggota, 3750000, constants.SatuanBulan},
	{222, "Bantuan Listrik & Telepon", constants.KategoriTunjanganLain, constants.JabatanSemua, 7700000, constants.SatuanBulan},
	{223, "Asisten Anggota", constants.KategoriTunjanganLain, constants.JabatanSemua, 2250000, constants.SatuanBulan},
	{224, "Tunjangan Perumahan", constants.KategoriTunjanganLain, constants.JabatanSemua, 50000000, constants.SatuanBulan},
	{225, "Fasilitas Kredit Mobil", constants.KategoriTunjanganLain, constants.JabatanSemua, 70000000, constants.SatuanPeriode},
}

func SeedKomponenGaji(db *gorm.DB) error {
	for _, data := range komponenData {
		var cnt int64
		if err := db.Model(&model.KomponenGajiModel{}).
			Where("id_komponen_gaji = ?", data.ID).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			continue
		}

		row := model.KomponenGajiModel{
			IDKomponenGaji: data.ID,
			NamaKomponen:   data.Nama,
			Kategori:       data.Kategori,
			Jabatan:        data.Jabatan,
			Nominal:        decimal.NewFromInt(data.Nominal),
			Satuan:         data.Satuan,
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}
	log.Printf("✅ Seed komponen gaji: %d baris diproses.", len(komponenData))
	return nil
}
