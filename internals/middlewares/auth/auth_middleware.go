// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userModel "gajidpr_backend/internals/features/users/auth/model"
	authService "gajidpr_backend/internals/features/users/auth/service"
)

// AuthMiddleware memverifikasi Bearer token:
// cek daftar cabut dulu, lalu parse + validasi JWT, terakhir muat pengguna.
// Hasilnya disimpan di Locals untuk handler berikutnya.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token not provided")
		}

		// 1) Token yang sudah di-logout ditolak sebelum parse
		revoked, err := authService.IsRevoked(db, tokenString)
		if err != nil {
			log.Println("[ERROR] DB error saat cek revoked token:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if revoked {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token has been revoked")
		}

		// 2) Verifikasi tanda tangan + exp
		claims, err := authService.ParseToken(tokenString)
		if err != nil {
			if errors.Is(err, authService.ErrJWTSecretMissing) {
				log.Println("[ERROR] JWT_SECRET kosong")
				return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
			}
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid token")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		// 3) Pengguna harus masih ada di DB
		var user userModel.Pengguna
		if err := db.First(&user, "id_pengguna = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			log.Println("[ERROR] DB error saat muat pengguna:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		c.Locals("user_id", user.IDPengguna)
		c.Locals("username", user.Username)
		c.Locals("userRole", user.Role)
		c.Locals("auth_user", &user)
		c.Locals("token_string", tokenString)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := c.Get("Authorization")
	if auth == "" {
		return "", errors.New("authorization header missing")
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("empty bearer token")
	}
	return token, nil
}

// sub bisa datang sebagai number (float64) atau string tergantung encoder.
func extractUserID(claims map[string]interface{}) (int64, error) {
	switch v := claims["sub"].(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	case string:
		var id int64
		for _, ch := range v {
			if ch < '0' || ch > '9' {
				return 0, errors.New("sub claim is not numeric")
			}
			id = id*10 + int64(ch-'0')
		}
		if v == "" {
			return 0, errors.New("sub claim empty")
		}
		return id, nil
	default:
		return 0, errors.New("sub claim missing")
	}
}
