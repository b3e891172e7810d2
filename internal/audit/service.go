package audit

import (
	"encoding/json"
	"fmt"

	"adisyon-backend/internal/database"
	"adisyon-backend/internal/models"

	"github.com/google/uuid"
)

// Logger: transaction düzenlemelerinin yanına audit kaydı düşer.
// Append-only; kayıtlar sonradan değiştirilmez veya silinmez.
type Logger interface {
	Log(editType models.EditType, editedBy, description string, oldValue, newValue any) error
}

type gormLogger struct{}

func NewGormLogger() Logger { return gormLogger{} }

func (gormLogger) Log(editType models.EditType, editedBy, description string, oldValue, newValue any) error {
	// PostgreSQL jsonb için boş string yerine "null" JSON string'i kullanmalıyız
	oldStr := "null"
	newStr := "null"

	if oldValue != nil {
		if b, err := json.Marshal(oldValue); err == nil {
			oldStr = string(b)
		}
	}
	if newValue != nil {
		if b, err := json.Marshal(newValue); err == nil {
			newStr = string(b)
		}
	}

	log := models.AuditLog{
		ID:          uuid.NewString(),
		EditType:    editType,
		EditedBy:    editedBy,
		Description: description,
		OldValue:    oldStr,
		NewValue:    newStr,
	}

	if err := database.DB.Create(&log).Error; err != nil {
		return fmt.Errorf("audit log kaydedilemedi: %w", err)
	}

	return nil
}
