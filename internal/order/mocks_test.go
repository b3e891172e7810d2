package order

import (
	"errors"
	"time"

	"adisyon-backend/internal/models"
)

var errStore = errors.New("store hatası")

type mockTableStore struct {
	tables map[int]*models.Table

	getErr error
	setErr error

	setCalls int
}

func newMockTableStore(tables ...*models.Table) *mockTableStore {
	m := &mockTableStore{tables: map[int]*models.Table{}}
	for _, t := range tables {
		m.tables[t.ID] = t
	}
	return m
}

func (m *mockTableStore) Get(tableID int) (*models.Table, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	t, ok := m.tables[tableID]
	if !ok {
		return nil, errors.New("masa yok")
	}
	copied := *t
	return &copied, nil
}

func (m *mockTableStore) SetOccupied(tableID int, occupied bool, openedAt *time.Time, actor string) error {
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	t, ok := m.tables[tableID]
	if !ok {
		return errors.New("masa yok")
	}
	t.IsOccupied = occupied
	t.OpenedAt = openedAt
	t.LastModifiedBy = actor
	if occupied && openedAt != nil {
		t.OpenedBy = actor
	}
	return nil
}

type mockItemStore struct {
	items []models.TableItem

	addErr   error
	clearErr error

	clearCalls int
}

func (m *mockItemStore) List(tableID int) ([]models.TableItem, error) {
	var out []models.TableItem
	for _, item := range m.items {
		if item.TableID == tableID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *mockItemStore) Add(item *models.TableItem) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.items = append(m.items, *item)
	return nil
}

func (m *mockItemStore) Delete(itemID string) error {
	for i, item := range m.items {
		if item.ID == itemID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockItemStore) Clear(tableID int) error {
	m.clearCalls++
	if m.clearErr != nil {
		return m.clearErr
	}
	var kept []models.TableItem
	for _, item := range m.items {
		if item.TableID != tableID {
			kept = append(kept, item)
		}
	}
	m.items = kept
	return nil
}

type mockTransactionStore struct {
	created []models.Transaction

	createErr error
}

func (m *mockTransactionStore) Create(tx *models.Transaction) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, *tx)
	return nil
}

type mockProductStore struct {
	products map[string]*models.Product
}

func newMockProductStore(products ...*models.Product) *mockProductStore {
	m := &mockProductStore{products: map[string]*models.Product{}}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductStore) Get(productID string) (*models.Product, error) {
	p, ok := m.products[productID]
	if !ok {
		return nil, errors.New("ürün yok")
	}
	return p, nil
}

func ptr(f float64) *float64 { return &f }
