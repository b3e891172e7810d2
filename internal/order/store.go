package order

import (
	"time"

	"adisyon-backend/internal/database"
	"adisyon-backend/internal/models"
)

// GORM destekli store implementasyonları. Service bunların üzerinden
// çalışır; testlerde yerlerine mock konur.

type gormTableStore struct{}

func NewGormTableStore() TableStore { return gormTableStore{} }

func (gormTableStore) Get(tableID int) (*models.Table, error) {
	var table models.Table
	if err := database.DB.First(&table, "id = ?", tableID).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (gormTableStore) SetOccupied(tableID int, occupied bool, openedAt *time.Time, actor string) error {
	updates := map[string]interface{}{
		"is_occupied":      occupied,
		"opened_at":        openedAt,
		"last_modified_by": actor,
		"updated_at":       time.Now(),
	}
	// Masa açılıyorsa opened_by'ı da yaz
	if occupied && openedAt != nil {
		updates["opened_by"] = actor
	}
	return database.DB.Model(&models.Table{}).Where("id = ?", tableID).Updates(updates).Error
}

type gormItemStore struct{}

func NewGormItemStore() ItemStore { return gormItemStore{} }

func (gormItemStore) List(tableID int) ([]models.TableItem, error) {
	var items []models.TableItem
	if err := database.DB.Where("table_id = ?", tableID).Order("created_at").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (gormItemStore) Add(item *models.TableItem) error {
	return database.DB.Create(item).Error
}

func (gormItemStore) Delete(itemID string) error {
	return database.DB.Delete(&models.TableItem{}, "id = ?", itemID).Error
}

func (gormItemStore) Clear(tableID int) error {
	return database.DB.Delete(&models.TableItem{}, "table_id = ?", tableID).Error
}

type gormTransactionStore struct{}

func NewGormTransactionStore() TransactionStore { return gormTransactionStore{} }

func (gormTransactionStore) Create(tx *models.Transaction) error {
	return database.DB.Create(tx).Error
}

type gormProductStore struct{}

func NewGormProductStore() ProductStore { return gormProductStore{} }

func (gormProductStore) Get(productID string) (*models.Product, error) {
	var product models.Product
	if err := database.DB.First(&product, "id = ?", productID).Error; err != nil {
		return nil, err
	}
	return &product, nil
}
