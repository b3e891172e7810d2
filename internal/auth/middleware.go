package auth

import (
	"fmt"
	"strings"
	"time"

	"adisyon-backend/internal/config"
	"adisyon-backend/internal/database"
	"adisyon-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxUserIDKey    = "user_id"
	CtxUsernameKey  = "username"
	CtxSessionIDKey = "session_id"
	CtxIsAdminKey   = "is_admin"
)

// JWTMiddleware token'ı çözer ve karşılığındaki oturum kaydını doğrular.
// Admin yetkisi token'dan değil oturum satırından okunur; elevasyon
// sunucu tarafında tutulur, client'a güvenilmez.
func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header eksik")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization formatı 'Bearer <token>' olmalı")
		}

		tokenStr := parts[1]

		token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("geçersiz imzalama yöntemi")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Geçersiz veya süresi dolmuş token")
		}

		claims, ok := token.Claims.(*JWTCustomClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Token çözümlenemedi")
		}

		// Oturum kaydı hâlâ geçerli mi? (logout veya expiry)
		var session models.UserSession
		if err := database.DB.First(&session, "id = ?", claims.SessionID).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Oturum bulunamadı, tekrar giriş yapın")
		}
		if session.ExpiresAt.Before(time.Now()) {
			database.DB.Delete(&models.UserSession{}, "id = ?", session.ID)
			return fiber.NewError(fiber.StatusUnauthorized, "Oturum süresi dolmuş, tekrar giriş yapın")
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxUsernameKey, claims.Username)
		c.Locals(CtxSessionIDKey, session.ID)
		c.Locals(CtxIsAdminKey, session.IsAdmin)

		return c.Next()
	}
}

func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isAdmin, ok := c.Locals(CtxIsAdminKey).(bool)
		if !ok || !isAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Bu işlem için admin yetkisi gerekli")
		}
		return c.Next()
	}
}

// CurrentUsername: denormalize alanlara yazılacak kullanıcı adı.
func CurrentUsername(c *fiber.Ctx) string {
	if name, ok := c.Locals(CtxUsernameKey).(string); ok && name != "" {
		return name
	}
	return "bilinmeyen"
}
