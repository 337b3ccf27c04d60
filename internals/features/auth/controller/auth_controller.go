// internals/features/auth/controller/auth_controller.go
package controller

import (
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"digikidz_backend/internals/configs"
	helper "digikidz_backend/internals/helpers"
)

type AuthController struct {
	Validate *validator.Validate
}

func NewAuthController(v *validator.Validate) *AuthController {
	return &AuthController{Validate: v}
}

type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/login — satu kredensial admin (hash bcrypt dari env) → JWT 24 jam.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	if configs.AdminPasswordHash == "" || configs.JWTSecret == "" {
		return helper.JsonError(c, http.StatusServiceUnavailable, "Login admin belum dikonfigurasi.")
	}

	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(configs.AdminPasswordHash), []byte(req.Password)); err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "Email atau password salah.")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Printf("[Auth.Login] sign error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat token.")
	}

	return helper.JsonOK(c, "Login berhasil.", fiber.Map{"token": token})
}
