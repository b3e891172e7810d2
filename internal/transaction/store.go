package transaction

import (
	"adisyon-backend/internal/database"
	"adisyon-backend/internal/models"
)

type gormStore struct{}

func NewGormStore() Store { return gormStore{} }

func (gormStore) Get(id string) (*models.Transaction, error) {
	var tx models.Transaction
	if err := database.DB.First(&tx, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (gormStore) Save(tx *models.Transaction) error {
	return database.DB.Save(tx).Error
}

func (gormStore) Delete(id string) error {
	return database.DB.Delete(&models.Transaction{}, "id = ?", id).Error
}
