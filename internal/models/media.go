package models

import "time"

// MediaFile: medya kütüphanesindeki yüklenmiş bir dosyanın kaydı.
// FilePath storage'daki gerçek yol, FileURL dışarıya verilen public URL.
type MediaFile struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	FileName  string    `gorm:"size:255;not null" json:"file_name"`
	FileURL   string    `gorm:"size:500;not null" json:"file_url"`
	FilePath  string    `gorm:"size:500;not null" json:"-"`
	FileSize  int64     `json:"file_size"`
	MimeType  string    `gorm:"size:100" json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
}
