package models

import "time"

type EditType string

const (
	EditTypeDeleteItem        EditType = "delete_item"
	EditTypeUpdateTotal       EditType = "update_total"
	EditTypeDeleteTransaction EditType = "delete_transaction"
)

// AuditLog: transaction düzenlemelerinin append-only kaydı.
type AuditLog struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	EditType EditType `gorm:"size:50;index" json:"edit_type"`

	// Düzenlemeyi yapan kullanıcı adı (denormalize)
	EditedBy string `gorm:"size:100" json:"edited_by"`

	Description string `gorm:"size:255" json:"description"`

	// Önceki ve sonraki hal (JSON)
	OldValue string `gorm:"type:jsonb" json:"old_value"`
	NewValue string `gorm:"type:jsonb" json:"new_value"`
}
