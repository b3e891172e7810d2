package models

import "time"

// TransactionItem: kapanış anında adisyon satırından kopyalanan kalem.
// Foreign key değil, donmuş bir kopya.
type TransactionItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Transaction: masa kapanışında oluşan kalıcı satış kaydı.
type Transaction struct {
	ID          string  `gorm:"type:uuid;primaryKey" json:"id"`
	TableID     int     `gorm:"not null;index" json:"table_id"`
	TableName   string  `gorm:"size:100;not null" json:"table_name"`
	TotalAmount float64 `gorm:"not null" json:"total_amount"`

	// Kapanış anındaki kalemlerin JSON snapshot'ı ([]TransactionItem)
	Items string `gorm:"type:jsonb" json:"items"`

	CompletedAt time.Time `gorm:"index" json:"completed_at"`

	OpenedBy string `gorm:"size:100" json:"opened_by"`
	ClosedBy string `gorm:"size:100" json:"closed_by"`

	// Hangi kullanıcı hangi ürünleri ekledi (JSON, map[string][]AddedItem)
	ItemsAddedBy string `gorm:"type:jsonb" json:"items_added_by"`
}
