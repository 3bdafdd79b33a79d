// internals/features/payroll/penggajian/service/validator_service.go
package service

import (
	"fmt"
	"sort"

	"gorm.io/gorm"

	"gajidpr_backend/internals/constants"
	anggotaModel "gajidpr_backend/internals/features/payroll/anggota/model"
	komponenModel "gajidpr_backend/internals/features/payroll/komponen/model"
)

/* =========================================================
   Error jenis penolakan aturan bisnis
   ========================================================= */

// MissingComponentsError: ada id komponen yang tidak terdaftar di katalog.
type MissingComponentsError struct {
	IDs []int64
}

func (e *MissingComponentsError) Error() string {
	return "Beberapa komponen gaji tidak ditemukan."
}

// PositionMismatchError: jabatan komponen tidak cocok dengan jabatan anggota.
type PositionMismatchError struct {
	NamaKomponen string
	Jabatan      string
}

func (e *PositionMismatchError) Error() string {
	return fmt.Sprintf("Komponen gaji \"%s\" tidak dapat diberikan ke jabatan %s.", e.NamaKomponen, e.Jabatan)
}

// DuplicateAssignmentError: mode append menyasar komponen yang sudah terdaftar.
type DuplicateAssignmentError struct {
	IDs []int64
}

func (e *DuplicateAssignmentError) Error() string {
	return "Terdapat komponen gaji yang sudah terdaftar untuk anggota ini."
}

/* =========================================================
   Validator penugasan komponen → anggota
   ========================================================= */

type PenggajianValidator struct {
	DB *gorm.DB
}

func NewPenggajianValidator(db *gorm.DB) *PenggajianValidator {
	return &PenggajianValidator{DB: db}
}

// ValidateKomponenUntukAnggota memuat komponen yang diminta dan memastikan
// semuanya ada serta cocok jabatan ("Semua" atau sama persis). ids diasumsikan
// sudah dedup; pemeriksaan berjalan menaik by id dan berhenti di mismatch
// pertama. Set kosong valid dan menghasilkan slice kosong.
// Duplikat penugasan BUKAN urusan validator ini — itu dicek store saat tulis.
func (v *PenggajianValidator) ValidateKomponenUntukAnggota(ang *anggotaModel.AnggotaModel, ids []int64) ([]komponenModel.KomponenGajiModel, error) {
	if len(ids) == 0 {
		return []komponenModel.KomponenGajiModel{}, nil
	}

	var komponen []komponenModel.KomponenGajiModel
	if err := v.DB.
		Where("id_komponen_gaji IN ?", ids).
		Order("id_komponen_gaji ASC").
		Find(&komponen).Error; err != nil {
		return nil, err
	}

	if len(komponen) != len(ids) {
		found := make(map[int64]struct{}, len(komponen))
		for _, k := range komponen {
			found[k.IDKomponenGaji] = struct{}{}
		}
		missing := make([]int64, 0, len(ids)-len(komponen))
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				missing = append(missing, id)
			}
		}
		sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
		return nil, &MissingComponentsError{IDs: missing}
	}

	for _, k := range komponen {
		if k.Jabatan != constants.JabatanSemua && k.Jabatan != ang.Jabatan {
			return nil, &PositionMismatchError{NamaKomponen: k.NamaKomponen, Jabatan: ang.Jabatan}
		}
	}

	return komponen, nil
}
