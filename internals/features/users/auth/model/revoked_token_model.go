package model

import "time"

// RevokedToken menyimpan hash SHA-256 dari token yang sudah di-logout.
// Baris kedaluwarsa dibersihkan scheduler.
type RevokedToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TokenHash string    `json:"token_hash" gorm:"column:token_hash;type:varchar(64);uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"column:expires_at;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (RevokedToken) TableName() string {
	return "revoked_tokens"
}
