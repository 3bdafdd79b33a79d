package dto

import "sort"

/* =========================================================
   STORE (append) — minimal satu komponen
   ========================================================= */

type StorePenggajianRequest struct {
	IDAnggota       int64   `json:"id_anggota" validate:"required,min=1"`
	KomponenGajiIDs []int64 `json:"komponen_gaji_ids" validate:"required,min=1,dive,min=1"`
}

/* =========================================================
   UPDATE (replace) — daftar wajib ada, boleh kosong
   ========================================================= */

type UpdatePenggajianRequest struct {
	KomponenGajiIDs *[]int64 `json:"komponen_gaji_ids" validate:"required,dive,min=1"`
}

// UniqueIDs dedup sambil menjaga hasil deterministik (menaik).
func UniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
