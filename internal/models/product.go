package models

import "time"

type ProductGroup struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	ImageURL   *string   `gorm:"size:500" json:"image_url"`
	OrderIndex int       `gorm:"not null;default:0" json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Product struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	// Price nil ise fiyat sipariş anında elle girilir
	Price     *float64  `json:"price"`
	GroupID   string    `gorm:"type:uuid;not null;index" json:"group_id"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
