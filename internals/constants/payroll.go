package constants

// Role pengguna
const (
	RoleAdmin  = "Admin"
	RolePublic = "Public"
)

// Jabatan anggota
const (
	JabatanKetua      = "Ketua"
	JabatanWakilKetua = "Wakil Ketua"
	JabatanAnggota    = "Anggota"
	JabatanSemua      = "Semua" // hanya untuk komponen gaji
)

var JabatanAnggotaValues = []string{JabatanKetua, JabatanWakilKetua, JabatanAnggota}
var JabatanKomponenValues = []string{JabatanKetua, JabatanWakilKetua, JabatanAnggota, JabatanSemua}

// Status pernikahan anggota
const (
	StatusKawin      = "Kawin"
	StatusBelumKawin = "Belum Kawin"
	StatusCeraiHidup = "Cerai Hidup"
	StatusCeraiMati  = "Cerai Mati"
)

var StatusPernikahanValues = []string{StatusKawin, StatusBelumKawin, StatusCeraiHidup, StatusCeraiMati}

// Kategori komponen gaji
const (
	KategoriGajiPokok        = "Gaji Pokok"
	KategoriTunjanganMelekat = "Tunjangan Melekat"
	KategoriTunjanganLain    = "Tunjangan Lain"
)

var KategoriKomponenValues = []string{KategoriGajiPokok, KategoriTunjanganMelekat, KategoriTunjanganLain}

// Satuan komponen gaji
const (
	SatuanBulan   = "Bulan"
	SatuanHari    = "Hari"
	SatuanPeriode = "Periode"
)

var SatuanKomponenValues = []string{SatuanBulan, SatuanHari, SatuanPeriode}

func IsValidValue(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}
