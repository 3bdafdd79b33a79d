package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gajidpr_backend/internals/constants"
	anggotaModel "gajidpr_backend/internals/features/payroll/anggota/model"
	komponenModel "gajidpr_backend/internals/features/payroll/komponen/model"
	penggajianModel "gajidpr_backend/internals/features/payroll/penggajian/model"
)

func seedStoreFixture(t *testing.T, db *gorm.DB) {
	t.Helper()
	seedAnggota(t, db, anggotaModel.AnggotaModel{
		IDAnggota: 101, NamaDepan: "Puan", NamaBelakang: "Maharani",
		Jabatan: constants.JabatanKetua, StatusPernikahan: constants.StatusKawin, JumlahAnak: 2,
	})
	for _, id := range []int64{201, 204, 205, 206} {
		seedKomponen(t, db, komponenModel.KomponenGajiModel{
			IDKomponenGaji: id, NamaKomponen: "Komponen Uji", Kategori: constants.KategoriTunjanganLain,
			Jabatan: constants.JabatanSemua, Nominal: nominal(1000), Satuan: constants.SatuanBulan,
		})
	}
}

func assignedIDs(t *testing.T, db *gorm.DB, idAnggota int64) []int64 {
	t.Helper()
	var ids []int64
	require.NoError(t, db.Model(&penggajianModel.PenggajianModel{}).
		Where("id_anggota = ?", idAnggota).
		Order("id_komponen_gaji ASC").
		Pluck("id_komponen_gaji", &ids).Error)
	return ids
}

func TestAppend(t *testing.T) {
	db := newTestDB(t)
	seedStoreFixture(t, db)
	store := NewPenggajianStore(db)

	require.NoError(t, store.Append(101, []int64{201, 204}))
	require.Equal(t, []int64{201, 204}, assignedIDs(t, db, 101))

	// batch berisi satu duplikat → seluruh batch ditolak, tanpa insert parsial
	err := store.Append(101, []int64{204, 205})
	var dup *DuplicateAssignmentError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, []int64{204}, dup.IDs)
	require.Equal(t, []int64{201, 204}, assignedIDs(t, db, 101))

	// batch kosong tidak mengubah apa pun
	require.NoError(t, store.Append(101, nil))
	require.Equal(t, []int64{201, 204}, assignedIDs(t, db, 101))
}

func TestReplace(t *testing.T) {
	db := newTestDB(t)
	seedStoreFixture(t, db)
	store := NewPenggajianStore(db)

	require.NoError(t, store.Append(101, []int64{201, 204, 205}))

	// hapus yang tidak di target, insert yang belum ada
	require.NoError(t, store.Replace(101, []int64{204, 206}))
	require.Equal(t, []int64{204, 206}, assignedIDs(t, db, 101))

	// idempotent: target sama → tidak ada perubahan
	require.NoError(t, store.Replace(101, []int64{204, 206}))
	require.Equal(t, []int64{204, 206}, assignedIDs(t, db, 101))

	// set kosong → hapus semua
	require.NoError(t, store.Replace(101, nil))
	require.Empty(t, assignedIDs(t, db, 101))
}

func TestDeleteOne(t *testing.T) {
	db := newTestDB(t)
	seedStoreFixture(t, db)
	store := NewPenggajianStore(db)

	require.NoError(t, store.Append(101, []int64{201, 204}))

	require.NoError(t, store.DeleteOne(101, 201))
	require.Equal(t, []int64{204}, assignedIDs(t, db, 101))

	// relasi yang tidak ada
	require.ErrorIs(t, store.DeleteOne(101, 999), gorm.ErrRecordNotFound)
}

func TestDeleteAllForAnggota(t *testing.T) {
	db := newTestDB(t)
	seedStoreFixture(t, db)
	store := NewPenggajianStore(db)

	require.NoError(t, store.Append(101, []int64{201, 204, 205}))
	require.NoError(t, store.DeleteAllForAnggota(101))
	require.Empty(t, assignedIDs(t, db, 101))

	// tanpa relasi pun tetap sukses
	require.NoError(t, store.DeleteAllForAnggota(101))
}
