package models

import "time"

// TableItem: açık bir masaya bağlı adisyon satırı. Ürün adı ve fiyatı ekleme
// anında snapshot olarak kopyalanır; sonradan yapılan fiyat değişiklikleri
// eski adisyonları etkilemez.
type TableItem struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	TableID      int       `gorm:"not null;index" json:"table_id"`
	ProductID    string    `gorm:"type:uuid;not null" json:"product_id"`
	ProductName  string    `gorm:"size:100;not null" json:"product_name"`
	ProductPrice *float64  `json:"product_price"`
	Quantity     int       `gorm:"not null;default:1" json:"quantity"`
	AddedBy      string    `gorm:"size:100" json:"added_by"`
	CreatedAt    time.Time `json:"created_at"`
}
