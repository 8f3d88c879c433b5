package controller

import (
	"crypto/subtle"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"monevpdb_backend/internals/configs"
	"monevpdb_backend/internals/features/users/auth/dto"
	helper "monevpdb_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// =============================
// 🔑 Login Admin (kode akses)
// =============================
// Verifikasi kode akses dilakukan di server, kodenya literal yang bisa
// dioverride lewat ENV ADMIN_ACCESS_CODE.
func (ctrl *AuthController) AdminLogin(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if subtle.ConstantTimeCompare([]byte(req.AccessCode), []byte(configs.AdminAccessCode)) != 1 {
		return helper.Error(c, fiber.StatusUnauthorized, "Kode akses salah")
	}

	expiresAt := time.Now().Add(12 * time.Hour)
	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.Success(c, "Login berhasil", dto.AdminLoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
