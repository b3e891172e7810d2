package auth

import (
	"adisyon-backend/internal/database"
	"adisyon-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// PasswordVerifier: şifre doğrulama prosedürleri. Kullanıcı şifresi ve
// paylaşılan admin şifresi iki ayrı kontrol; ikisi de opak bool/id döndürür.
type PasswordVerifier interface {
	// VerifyUserPassword kullanıcı adı + şifre çiftini doğrular,
	// geçerliyse kullanıcı ID'sini döndürür.
	VerifyUserPassword(username, password string) (bool, string, error)

	// VerifyAdminPassword paylaşılan admin şifresini doğrular.
	VerifyAdminPassword(password string) (bool, error)
}

type bcryptVerifier struct {
	adminPasswordHash string
}

func NewBcryptVerifier(adminPasswordHash string) PasswordVerifier {
	return &bcryptVerifier{adminPasswordHash: adminPasswordHash}
}

func (v *bcryptVerifier) VerifyUserPassword(username, password string) (bool, string, error) {
	var user models.AppUser
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		// Kullanıcı yok ile şifre yanlış ayrımı dışarıya sızmasın
		return false, "", nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return false, "", nil
	}

	return true, user.ID, nil
}

func (v *bcryptVerifier) VerifyAdminPassword(password string) (bool, error) {
	if v.adminPasswordHash == "" {
		return false, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(v.adminPasswordHash), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}
