// internals/features/payroll/penggajian/service/store_service.go
package service

import (
	"sort"

	"gorm.io/gorm"

	penggajianModel "gajidpr_backend/internals/features/payroll/penggajian/model"
)

// PenggajianStore memuat operasi tulis atas relasi penggajian.
// Semua mutasi multi-baris berjalan dalam satu transaksi; penolakan
// aturan bisnis terdeteksi sebelum ada baris berubah.
type PenggajianStore struct {
	DB *gorm.DB
}

func NewPenggajianStore(db *gorm.DB) *PenggajianStore {
	return &PenggajianStore{DB: db}
}

// Append menambahkan komponen ke anggota. Bila ada satu saja yang sudah
// terdaftar, seluruh batch ditolak DuplicateAssignmentError tanpa insert
// parsial. PK komposit jadi backstop untuk race check-then-insert.
func (s *PenggajianStore) Append(idAnggota int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	existing, err := s.assignedAmong(s.DB, idAnggota, ids)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return &DuplicateAssignmentError{IDs: existing}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		rows := make([]penggajianModel.PenggajianModel, 0, len(ids))
		for _, idKomponen := range ids {
			rows = append(rows, penggajianModel.PenggajianModel{
				IDKomponenGaji: idKomponen,
				IDAnggota:      idAnggota,
			})
		}
		return tx.Create(&rows).Error
	})
}

// Replace menjadikan ids sebagai daftar penugasan penuh milik anggota:
// hapus yang tidak ada di target, insert yang belum ada. Set kosong berarti
// hapus semua. Satu transaksi; tidak ada keadaan parsial yang terlihat.
func (s *PenggajianStore) Replace(idAnggota int64, ids []int64) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if len(ids) == 0 {
			return tx.Where("id_anggota = ?", idAnggota).
				Delete(&penggajianModel.PenggajianModel{}).Error
		}

		if err := tx.Where("id_anggota = ? AND id_komponen_gaji NOT IN ?", idAnggota, ids).
			Delete(&penggajianModel.PenggajianModel{}).Error; err != nil {
			return err
		}

		existing, err := s.assignedAmong(tx, idAnggota, ids)
		if err != nil {
			return err
		}
		already := make(map[int64]struct{}, len(existing))
		for _, id := range existing {
			already[id] = struct{}{}
		}

		rows := make([]penggajianModel.PenggajianModel, 0, len(ids))
		for _, idKomponen := range ids {
			if _, ok := already[idKomponen]; ok {
				continue
			}
			rows = append(rows, penggajianModel.PenggajianModel{
				IDKomponenGaji: idKomponen,
				IDAnggota:      idAnggota,
			})
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// DeleteOne menghapus satu relasi (anggota, komponen).
// Mengembalikan gorm.ErrRecordNotFound bila relasinya tidak ada.
func (s *PenggajianStore) DeleteOne(idAnggota, idKomponen int64) error {
	res := s.DB.Where("id_anggota = ? AND id_komponen_gaji = ?", idAnggota, idKomponen).
		Delete(&penggajianModel.PenggajianModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAllForAnggota menghapus seluruh penugasan milik satu anggota.
func (s *PenggajianStore) DeleteAllForAnggota(idAnggota int64) error {
	return s.DB.Where("id_anggota = ?", idAnggota).
		Delete(&penggajianModel.PenggajianModel{}).Error
}

func (s *PenggajianStore) assignedAmong(db *gorm.DB, idAnggota int64, ids []int64) ([]int64, error) {
	var existing []int64
	err := db.Model(&penggajianModel.PenggajianModel{}).
		Where("id_anggota = ? AND id_komponen_gaji IN ?", idAnggota, ids).
		Pluck("id_komponen_gaji", &existing).Error
	if err != nil {
		return nil, err
	}
	sort.Slice(existing, func(i, j int) bool { return existing[i] < existing[j] })
	return existing, nil
}
