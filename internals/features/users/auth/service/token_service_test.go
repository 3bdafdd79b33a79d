package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gajidpr_backend/internals/configs"
	"gajidpr_backend/internals/constants"
	database "gajidpr_backend/internals/databases"
	"gajidpr_backend/internals/features/users/auth/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return db
}

func setTestSecret(t *testing.T) {
	t.Helper()
	prev := configs.JWTSecret
	configs.JWTSecret = "rahasia-uji"
	t.Cleanup(func() { configs.JWTSecret = prev })
}

func testUser() *model.Pengguna {
	return &model.Pengguna{
		IDPengguna: 1,
		Username:   "admin",
		Role:       constants.RoleAdmin,
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	setTestSecret(t)

	token, err := GenerateToken(testUser(), 3600)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "admin", claims["username"])
	require.Equal(t, constants.RoleAdmin, claims["role"])
	require.InDelta(t, 1, claims["sub"].(float64), 0.001)
	require.NotEmpty(t, claims["jti"])
}

func TestGenerateTokenWithoutSecret(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = ""
	t.Cleanup(func() { configs.JWTSecret = prev })

	_, err := GenerateToken(testUser(), 3600)
	require.ErrorIs(t, err, ErrJWTSecretMissing)
}

func TestParseExpiredToken(t *testing.T) {
	setTestSecret(t)

	token, err := GenerateToken(testUser(), -10)
	require.NoError(t, err)

	_, err = ParseToken(token)
	require.Error(t, err)
}

func TestRevokeAndIsRevoked(t *testing.T) {
	setTestSecret(t)
	db := newTestDB(t)

	token, err := GenerateToken(testUser(), 3600)
	require.NoError(t, err)

	revoked, err := IsRevoked(db, token)
	require.NoError(t, err)
	require.False(t, revoked)

	expiresAt := time.Now().Add(time.Hour)
	require.NoError(t, Revoke(db, token, expiresAt))

	revoked, err = IsRevoked(db, token)
	require.NoError(t, err)
	require.True(t, revoked)

	// logout dua kali dengan token sama tetap sukses (upsert)
	require.NoError(t, Revoke(db, token, expiresAt))
}

func TestPurgeExpired(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&model.RevokedToken{
		TokenHash: HashToken("kadaluarsa"), ExpiresAt: time.Now().Add(-time.Hour),
	}).Error)
	require.NoError(t, db.Create(&model.RevokedToken{
		TokenHash: HashToken("masih-hidup"), ExpiresAt: time.Now().Add(time.Hour),
	}).Error)

	n, err := PurgeExpired(db)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	revoked, err := IsRevoked(db, "masih-hidup")
	require.NoError(t, err)
	require.True(t, revoked)
}
