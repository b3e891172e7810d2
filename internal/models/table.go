package models

import "time"

// Masa ID'leri admin tarafından elle verilir (1, 2, 3...), auto-increment değil.
type Table struct {
	ID             int        `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name           string     `gorm:"size:100;not null" json:"name"`
	IsOccupied     bool       `gorm:"not null;default:false" json:"is_occupied"`
	OpenedAt       *time.Time `json:"opened_at"`
	OpenedBy       string     `gorm:"size:100" json:"opened_by"`
	LastModifiedBy string     `gorm:"size:100" json:"last_modified_by"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
