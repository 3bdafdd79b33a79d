// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gajidpr_backend/internals/configs"
	"gajidpr_backend/internals/features/users/auth/dto"
	"gajidpr_backend/internals/features/users/auth/model"
	"gajidpr_backend/internals/features/users/auth/service"
	helper "gajidpr_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/login
// Pesan 401 sengaja sama untuk user tak dikenal dan password salah.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.Pengguna
	if err := ctrl.DB.First(&user, "username = ?", req.Username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials.")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat data pengguna")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials.")
	}

	token, err := service.GenerateToken(&user, configs.JWTTTL)
	if err != nil {
		if errors.Is(err, service.ErrJWTSecretMissing) {
			return helper.Error(c, fiber.StatusInternalServerError, "JWT secret is not configured.")
		}
		log.Printf("[ERROR] gagal menerbitkan token: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}

	return helper.Success(c, "Login berhasil", fiber.Map{
		"token":      token,
		"token_type": "Bearer",
		"expires_in": configs.JWTTTL,
		"user":       toUserResponse(&user),
	})
}

// POST /api/logout — cabut token yang sedang dipakai.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString := extractBearer(c)
	if tokenString == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Token not provided.")
	}

	claims, err := service.ParseToken(tokenString)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid token.")
	}

	// expiry entri cabut mengikuti exp token supaya bisa dipurge
	expiresAt := time.Now().Add(time.Duration(configs.JWTTTL) * time.Second)
	if exp, ok := claims["exp"].(float64); ok {
		expiresAt = time.Unix(int64(exp), 0)
	}

	if err := service.Revoke(ctrl.DB, tokenString, expiresAt); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mencabut token")
	}
	return helper.Success(c, "Logged out successfully.", nil)
}

// GET /api/me — profil pengguna dari token aktif.
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	user, ok := c.Locals("auth_user").(*model.Pengguna)
	if !ok || user == nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return helper.Success(c, "OK", toUserResponse(user))
}

func toUserResponse(u *model.Pengguna) dto.UserResponse {
	return dto.UserResponse{
		IDPengguna:   u.IDPengguna,
		Username:     u.Username,
		Email:        u.Email,
		NamaDepan:    u.NamaDepan,
		NamaBelakang: u.NamaBelakang,
		Role:         u.Role,
	}
}

func extractBearer(c *fiber.Ctx) string {
	auth := c.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
