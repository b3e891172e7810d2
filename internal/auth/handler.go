package auth

import (
	"strings"
	"time"

	"adisyon-backend/internal/config"
	"adisyon-backend/internal/database"
	"adisyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ElevateRequest struct {
	Password string `json:"password"`
}

// POST /api/auth/login
func LoginHandler(cfg *config.Config, verifier PasswordVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Username = strings.TrimSpace(body.Username)
		if body.Username == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Kullanıcı adı ve şifre zorunlu")
		}

		valid, userID, err := verifier.VerifyUserPassword(body.Username, body.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre doğrulanamadı")
		}
		if !valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Kullanıcı adı veya şifre hatalı")
		}

		var user models.AppUser
		if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı bulunamadı")
		}

		session := models.UserSession{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			ExpiresAt: time.Now().Add(24 * time.Hour), // 24 saat geçerli
		}
		if err := database.DB.Create(&session).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Oturum oluşturulamadı")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user, &session)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		return c.JSON(fiber.Map{
			"token":      token,
			"expires_at": session.ExpiresAt,
			"user": fiber.Map{
				"id":       user.ID,
				"username": user.Username,
			},
		})
	}
}

// POST /api/auth/logout
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID, ok := c.Locals(CtxSessionIDKey).(string)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Oturum bilgisi alınamadı")
		}

		if err := database.DB.Delete(&models.UserSession{}, "id = ?", sessionID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Oturum silinemedi")
		}

		return c.JSON(fiber.Map{"message": "Çıkış yapıldı"})
	}
}

// POST /api/auth/elevate
// Paylaşılan admin şifresi doğruysa mevcut oturumu admin'e yükseltir.
func ElevateHandler(verifier PasswordVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ElevateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		valid, err := verifier.VerifyAdminPassword(body.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre doğrulanamadı")
		}
		if !valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Admin şifresi hatalı")
		}

		sessionID, ok := c.Locals(CtxSessionIDKey).(string)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Oturum bilgisi alınamadı")
		}

		if err := database.DB.Model(&models.UserSession{}).
			Where("id = ?", sessionID).
			Update("is_admin", true).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Oturum güncellenemedi")
		}

		return c.JSON(fiber.Map{"message": "Admin yetkisi verildi"})
	}
}

// GET /api/auth/me
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals(CtxUserIDKey).(string)

		var user models.AppUser
		if err := database.DB.First(&user, "id = ?", userID).Error; err == nil {
			return c.JSON(fiber.Map{
				"id":       user.ID,
				"username": user.Username,
				"is_admin": c.Locals(CtxIsAdminKey),
			})
		}

		// Fallback: veritabanından çekilemezse locals'dan döndür
		return c.JSON(fiber.Map{
			"id":       userID,
			"username": c.Locals(CtxUsernameKey),
			"is_admin": c.Locals(CtxIsAdminKey),
		})
	}
}
