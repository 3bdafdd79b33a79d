package dto

import "strings"

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=15"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

// UserResponse: profil pengguna yang aman dikirim ke klien (tanpa password).
type UserResponse struct {
	IDPengguna   int64  `json:"id_pengguna"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	NamaDepan    string `json:"nama_depan"`
	NamaBelakang string `json:"nama_belakang"`
	Role         string `json:"role"`
}
