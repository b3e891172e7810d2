package transaction

import (
	"encoding/json"
	"errors"
	"fmt"

	"adisyon-backend/internal/audit"
	"adisyon-backend/internal/models"
)

var (
	ErrNotFound        = errors.New("transaction bulunamadı")
	ErrIndexOutOfRange = errors.New("geçersiz kalem index'i")
	// Tek kalemli transaction'dan kalem silinmez; kayıt tamamen
	// boşaltılacaksa transaction'ın kendisi silinmeli.
	ErrLastItem      = errors.New("son kalan kalem silinemez")
	ErrNegativeTotal = errors.New("tutar negatif olamaz")
)

type Store interface {
	Get(id string) (*models.Transaction, error)
	Save(tx *models.Transaction) error
	Delete(id string) error
}

// Service: kapanmış transaction'lar üzerindeki admin düzenlemeleri.
// Her düzenleme audit log'a yazılır.
type Service struct {
	store Store
	audit audit.Logger
}

func NewService(store Store, auditLogger audit.Logger) *Service {
	return &Service{store: store, audit: auditLogger}
}

// DeleteItem donmuş kalem listesinden pozisyona göre bir kalem çıkarır,
// toplamı kalan kalemlerden yeniden hesaplar ve silinen kalemi audit
// log'a old_value olarak yazar.
func (s *Service) DeleteItem(txID string, index int, actor string) (*models.Transaction, error) {
	tx, err := s.store.Get(txID)
	if err != nil {
		return nil, ErrNotFound
	}

	var items []models.TransactionItem
	if err := json.Unmarshal([]byte(tx.Items), &items); err != nil {
		return nil, fmt.Errorf("kalem listesi çözülemedi: %w", err)
	}

	if index < 0 || index >= len(items) {
		return nil, ErrIndexOutOfRange
	}
	if len(items) == 1 {
		return nil, ErrLastItem
	}

	removed := items[index]
	items = append(items[:index], items[index+1:]...)

	var newTotal float64
	for _, item := range items {
		newTotal += item.Price * float64(item.Quantity)
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("kalem listesi kodlanamadı: %w", err)
	}

	tx.Items = string(itemsJSON)
	tx.TotalAmount = newTotal

	if err := s.store.Save(tx); err != nil {
		return nil, fmt.Errorf("transaction güncellenemedi: %w", err)
	}

	if err := s.audit.Log(
		models.EditTypeDeleteItem,
		actor,
		fmt.Sprintf("Ürün silindi: %s", removed.Name),
		map[string]any{"transaction_id": tx.ID, "item": removed},
		nil,
	); err != nil {
		return nil, err
	}

	return tx, nil
}

// UpdateTotal toplam tutarı elle günceller (ör. indirim uygulamak için).
func (s *Service) UpdateTotal(txID string, newTotal float64, actor string) (*models.Transaction, error) {
	if newTotal < 0 {
		return nil, ErrNegativeTotal
	}

	tx, err := s.store.Get(txID)
	if err != nil {
		return nil, ErrNotFound
	}

	oldTotal := tx.TotalAmount
	tx.TotalAmount = newTotal

	if err := s.store.Save(tx); err != nil {
		return nil, fmt.Errorf("transaction güncellenemedi: %w", err)
	}

	if err := s.audit.Log(
		models.EditTypeUpdateTotal,
		actor,
		fmt.Sprintf("Toplam tutar güncellendi: %.2f ₺ → %.2f ₺", oldTotal, newTotal),
		map[string]any{"transaction_id": tx.ID, "total": oldTotal},
		map[string]any{"transaction_id": tx.ID, "total": newTotal},
	); err != nil {
		return nil, err
	}

	return tx, nil
}

// Delete transaction kaydını tamamen kaldırır; silinen kaydın tamamı
// audit log'a yazılır.
func (s *Service) Delete(txID string, actor string) error {
	tx, err := s.store.Get(txID)
	if err != nil {
		return ErrNotFound
	}

	if err := s.store.Delete(txID); err != nil {
		return fmt.Errorf("transaction silinemedi: %w", err)
	}

	return s.audit.Log(
		models.EditTypeDeleteTransaction,
		actor,
		fmt.Sprintf("Transaction silindi: %s (%.2f ₺)", tx.TableName, tx.TotalAmount),
		tx,
		nil,
	)
}
