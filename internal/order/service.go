package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"adisyon-backend/internal/models"

	"github.com/google/uuid"
)

// Doğrulama hataları: hiçbir yazma yapılmadan önce yakalanır.
var (
	ErrInvalidQuantity = errors.New("adet 1 veya daha büyük olmalı")
	ErrProductNotFound = errors.New("ürün bulunamadı")
	ErrProductInactive = errors.New("ürün satışta değil")
	ErrPriceRequired   = errors.New("fiyatı olmayan ürün için geçerli bir fiyat girilmeli")
)

// Kapanış adım hataları: hangi adımın yarım kaldığını ayırt etmek için.
// Adımlar atomik değildir, başarısız adımdan öncekiler geri alınmaz.
var (
	ErrCreateTransaction = errors.New("transaction oluşturulamadı")
	ErrClearItems        = errors.New("adisyon satırları silinemedi")
	ErrUpdateTable       = errors.New("masa durumu güncellenemedi")
)

type TableStore interface {
	Get(tableID int) (*models.Table, error)
	// SetOccupied masanın doluluk durumunu ve açılış zamanını yazar.
	SetOccupied(tableID int, occupied bool, openedAt *time.Time, actor string) error
}

type ItemStore interface {
	List(tableID int) ([]models.TableItem, error)
	Add(item *models.TableItem) error
	Delete(itemID string) error
	Clear(tableID int) error
}

type TransactionStore interface {
	Create(tx *models.Transaction) error
}

type ProductStore interface {
	Get(productID string) (*models.Product, error)
}

// Service: masa yaşam döngüsünü (ürün ekleme ve kapanış) yöneten iş akışı.
// Store'ların sahibi değildir, sadece çağrı sırasını belirler.
type Service struct {
	tables       TableStore
	items        ItemStore
	transactions TransactionStore
	products     ProductStore
	now          func() time.Time
}

func NewService(tables TableStore, items ItemStore, transactions TransactionStore, products ProductStore) *Service {
	return &Service{
		tables:       tables,
		items:        items,
		transactions: transactions,
		products:     products,
		now:          time.Now,
	}
}

// AddItem masaya adisyon satırı ekler ve masayı dolu olarak işaretler.
// Masa zaten doluysa hata değildir, opened_at tazelenir. İki yazma
// arasında tutarlılık garantisi yoktur; biri başarısız olursa telafi
// yapılmaz, hata olduğu gibi döner.
func (s *Service) AddItem(tableID int, productID string, quantity int, customPrice *float64, actor string) (*models.TableItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.products.Get(productID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductInactive
	}

	// Fiyat: üründe varsa snapshot'la, yoksa elle girilen fiyat zorunlu
	price := product.Price
	if price == nil {
		if customPrice == nil || *customPrice <= 0 {
			return nil, ErrPriceRequired
		}
		price = customPrice
	}

	item := &models.TableItem{
		ID:           uuid.NewString(),
		TableID:      tableID,
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductPrice: price,
		Quantity:     quantity,
		AddedBy:      actor,
	}

	if err := s.items.Add(item); err != nil {
		return nil, fmt.Errorf("adisyon satırı eklenemedi: %w", err)
	}

	now := s.now()
	if err := s.tables.SetOccupied(tableID, true, &now, actor); err != nil {
		return nil, fmt.Errorf("masa durumu güncellenemedi: %w", err)
	}

	return item, nil
}

func (s *Service) RemoveItem(itemID string) error {
	if err := s.items.Delete(itemID); err != nil {
		return fmt.Errorf("adisyon satırı silinemedi: %w", err)
	}
	return nil
}

func (s *Service) ListItems(tableID int) ([]models.TableItem, error) {
	return s.items.List(tableID)
}

// Total adisyon toplamını hesaplar; fiyatsız satırlar 0 sayılır.
func Total(items []models.TableItem) float64 {
	var sum float64
	for _, item := range items {
		if item.ProductPrice != nil {
			sum += *item.ProductPrice * float64(item.Quantity)
		}
	}
	return sum
}

type addedItem struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// CloseTable masayı üç sıralı adımda kapatır:
//  1. satır varsa kalemlerin snapshot'ı ile transaction oluştur
//  2. masanın tüm adisyon satırlarını sil
//  3. doluluk bayrağını indir, opened_at'i temizle
//
// Adımlar bağımsız başarısız olabilir; başarısız adımdan önceki yazmalar
// geri alınmaz. Hangi adımın kaldığı dönen hatanın sentinel'inden anlaşılır
// ki operatör elle düzeltebilsin. Satırsız masada transaction oluşmaz ama
// doluluk yine temizlenir.
func (s *Service) CloseTable(tableID int, tableName string, items []models.TableItem, actor string) (*models.Transaction, error) {
	var created *models.Transaction

	if len(items) > 0 {
		// Masayı açan kullanıcıyı al; bulunamazsa kaydı engellemesin
		openedBy := "bilinmeyen"
		if table, err := s.tables.Get(tableID); err == nil && table.OpenedBy != "" {
			openedBy = table.OpenedBy
		}

		snapshot := make([]models.TransactionItem, 0, len(items))
		itemsAddedBy := map[string][]addedItem{}
		for _, item := range items {
			price := 0.0
			if item.ProductPrice != nil {
				price = *item.ProductPrice
			}
			snapshot = append(snapshot, models.TransactionItem{
				Name:     item.ProductName,
				Price:    price,
				Quantity: item.Quantity,
			})

			user := item.AddedBy
			if user == "" {
				user = "bilinmeyen"
			}
			itemsAddedBy[user] = append(itemsAddedBy[user], addedItem{
				Product:  item.ProductName,
				Quantity: item.Quantity,
			})
		}

		itemsJSON, _ := json.Marshal(snapshot)
		addedByJSON, _ := json.Marshal(itemsAddedBy)

		tx := &models.Transaction{
			ID:           uuid.NewString(),
			TableID:      tableID,
			TableName:    tableName,
			TotalAmount:  Total(items),
			Items:        string(itemsJSON),
			CompletedAt:  s.now(),
			OpenedBy:     openedBy,
			ClosedBy:     actor,
			ItemsAddedBy: string(addedByJSON),
		}

		if err := s.transactions.Create(tx); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCreateTransaction, err)
		}
		created = tx

		if err := s.items.Clear(tableID); err != nil {
			return created, fmt.Errorf("%w: %v", ErrClearItems, err)
		}
	}

	if err := s.tables.SetOccupied(tableID, false, nil, actor); err != nil {
		return created, fmt.Errorf("%w: %v", ErrUpdateTable, err)
	}

	return created, nil
}
