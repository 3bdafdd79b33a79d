// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gajidpr_backend/internals/configs"
	"gajidpr_backend/internals/features/users/auth/model"
)

var ErrJWTSecretMissing = errors.New("JWT secret is not configured")

// GenerateToken menerbitkan JWT HS256 untuk pengguna. expiresIn dalam detik.
func GenerateToken(user *model.Pengguna, expiresIn int) (string, error) {
	if configs.JWTSecret == "" {
		return "", ErrJWTSecretMissing
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss":      configs.AppURL,
		"sub":      user.IDPengguna,
		"username": user.Username,
		"role":     user.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(time.Duration(expiresIn) * time.Second).Unix(),
		"jti":      uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// ParseToken memverifikasi tanda tangan + masa berlaku dan mengembalikan claims.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	if configs.JWTSecret == "" {
		return nil, ErrJWTSecretMissing
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// HashToken: token mentah tidak pernah disimpan, hanya digest sha256 hex-nya.
func HashToken(tokenString string) string {
	sum := sha256.Sum256([]byte(tokenString))
	return hex.EncodeToString(sum[:])
}

// IsRevoked mengecek apakah token sudah masuk daftar cabut.
func IsRevoked(db *gorm.DB, tokenString string) (bool, error) {
	var cnt int64
	err := db.Model(&model.RevokedToken{}).
		Where("token_hash = ?", HashToken(tokenString)).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// Revoke mencatat token ke daftar cabut sampai expiry aslinya.
// Upsert: logout dua kali dengan token yang sama tetap sukses.
func Revoke(db *gorm.DB, tokenString string, expiresAt time.Time) error {
	row := model.RevokedToken{
		TokenHash: HashToken(tokenString),
		ExpiresAt: expiresAt,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token_hash"}},
		DoNothing: true,
	}).Create(&row).Error
}

// PurgeExpired membuang entri cabut yang masa berlakunya sudah lewat.
func PurgeExpired(db *gorm.DB) (int64, error) {
	res := db.Where("expires_at < ?", time.Now()).Delete(&model.RevokedToken{})
	return res.RowsAffected, res.Error
}
