package order

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"adisyon-backend/internal/models"
)

func newTestService(tables *mockTableStore, items *mockItemStore, txs *mockTransactionStore, products *mockProductStore) *Service {
	svc := NewService(tables, items, txs, products)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 20, 30, 0, 0, time.UTC) }
	return svc
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []models.TableItem
		want  float64
	}{
		{
			name: "twoLines",
			items: []models.TableItem{
				{ProductPrice: ptr(10.50), Quantity: 2},
				{ProductPrice: ptr(5), Quantity: 1},
			},
			want: 26.00,
		},
		{
			name:  "empty",
			items: nil,
			want:  0,
		},
		{
			name: "nilPriceCountsAsZero",
			items: []models.TableItem{
				{ProductPrice: nil, Quantity: 3},
				{ProductPrice: ptr(7.25), Quantity: 2},
			},
			want: 14.50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Total(tt.items); got != tt.want {
				t.Errorf("Total() = %v, istenen %v", got, tt.want)
			}
		})
	}
}

func TestAddItemValidation(t *testing.T) {
	priced := &models.Product{ID: "p1", Name: "Çay", Price: ptr(5), IsActive: true}
	unpriced := &models.Product{ID: "p2", Name: "Günün Tatlısı", Price: nil, IsActive: true}
	inactive := &models.Product{ID: "p3", Name: "Eski Ürün", Price: ptr(10), IsActive: false}

	tests := []struct {
		name        string
		productID   string
		quantity    int
		customPrice *float64
		wantErr     error
	}{
		{name: "pricedProduct", productID: "p1", quantity: 2},
		{name: "zeroQuantity", productID: "p1", quantity: 0, wantErr: ErrInvalidQuantity},
		{name: "negativeQuantity", productID: "p1", quantity: -1, wantErr: ErrInvalidQuantity},
		{name: "unknownProduct", productID: "yok", quantity: 1, wantErr: ErrProductNotFound},
		{name: "inactiveProduct", productID: "p3", quantity: 1, wantErr: ErrProductInactive},
		{name: "nullPriceWithoutCustom", productID: "p2", quantity: 1, wantErr: ErrPriceRequired},
		{name: "nullPriceZeroCustom", productID: "p2", quantity: 1, customPrice: ptr(0), wantErr: ErrPriceRequired},
		{name: "nullPriceNegativeCustom", productID: "p2", quantity: 1, customPrice: ptr(-3), wantErr: ErrPriceRequired},
		{name: "nullPricePositiveCustom", productID: "p2", quantity: 1, customPrice: ptr(12.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables := newMockTableStore(&models.Table{ID: 1, Name: "Masa 1"})
			items := &mockItemStore{}
			svc := newTestService(tables, items, &mockTransactionStore{}, newMockProductStore(priced, unpriced, inactive))

			item, err := svc.AddItem(1, tt.productID, tt.quantity, tt.customPrice, "ayse")

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("AddItem() hata = %v, istenen %v", err, tt.wantErr)
				}
				if len(items.items) != 0 {
					t.Errorf("doğrulama hatasında satır yazılmamalı, %d satır var", len(items.items))
				}
				return
			}

			if err != nil {
				t.Fatalf("AddItem() beklenmeyen hata: %v", err)
			}
			if item.ProductPrice == nil || *item.ProductPrice <= 0 {
				t.Errorf("satır fiyatı pozitif snapshot olmalı, %v", item.ProductPrice)
			}
			if !tables.tables[1].IsOccupied {
				t.Error("ürün eklenince masa dolu işaretlenmeli")
			}
		})
	}
}

func TestAddItemSnapshotsPrice(t *testing.T) {
	product := &models.Product{ID: "p1", Name: "Çay", Price: ptr(5), IsActive: true}
	tables := newMockTableStore(&models.Table{ID: 1, Name: "Masa 1"})
	items := &mockItemStore{}
	svc := newTestService(tables, items, &mockTransactionStore{}, newMockProductStore(product))

	item, err := svc.AddItem(1, "p1", 2, nil, "ayse")
	if err != nil {
		t.Fatalf("AddItem() hata: %v", err)
	}

	// Ürün fiyatı sonradan değişirse satır etkilenmemeli
	*product.Price = 99

	if item.ProductName != "Çay" || *item.ProductPrice != 5 {
		t.Errorf("satır snapshot'ı bozuldu: %s %v", item.ProductName, *item.ProductPrice)
	}
	if item.AddedBy != "ayse" {
		t.Errorf("added_by = %q, istenen ayse", item.AddedBy)
	}
}

func TestAddItemIdempotentOccupy(t *testing.T) {
	product := &models.Product{ID: "p1", Name: "Çay", Price: ptr(5), IsActive: true}
	opened := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	table := &models.Table{ID: 1, Name: "Masa 1", IsOccupied: true, OpenedAt: &opened, OpenedBy: "ali"}
	tables := newMockTableStore(table)
	items := &mockItemStore{items: []models.TableItem{
		{ID: "i1", TableID: 1, ProductName: "Kahve", ProductPrice: ptr(8), Quantity: 1, AddedBy: "ali"},
	}}
	svc := newTestService(tables, items, &mockTransactionStore{}, newMockProductStore(product))

	if _, err := svc.AddItem(1, "p1", 1, nil, "ayse"); err != nil {
		t.Fatalf("dolu masaya ekleme hata vermemeli: %v", err)
	}

	got := tables.tables[1]
	if !got.IsOccupied {
		t.Error("masa dolu kalmalı")
	}
	if got.OpenedAt == nil || !got.OpenedAt.After(opened) {
		t.Errorf("opened_at tazelenmeli: %v", got.OpenedAt)
	}
	if len(items.items) != 2 {
		t.Errorf("mevcut satırlar korunmalı, %d satır var", len(items.items))
	}
}

func TestCloseTableEmpty(t *testing.T) {
	opened := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	tables := newMockTableStore(&models.Table{ID: 1, Name: "Masa 1", IsOccupied: true, OpenedAt: &opened})
	items := &mockItemStore{}
	txs := &mockTransactionStore{}
	svc := newTestService(tables, items, txs, newMockProductStore())

	tx, err := svc.CloseTable(1, "Masa 1", nil, "ayse")
	if err != nil {
		t.Fatalf("CloseTable() hata: %v", err)
	}
	if tx != nil {
		t.Error("satırsız kapanışta transaction oluşmamalı")
	}
	if len(txs.created) != 0 {
		t.Errorf("transaction store'a yazılmamalı, %d kayıt var", len(txs.created))
	}
	if items.clearCalls != 0 {
		t.Error("satır yokken clear çağrılmamalı")
	}
	got := tables.tables[1]
	if got.IsOccupied || got.OpenedAt != nil {
		t.Errorf("doluluk yine de temizlenmeli: occupied=%v opened_at=%v", got.IsOccupied, got.OpenedAt)
	}
}

func TestCloseTableWithItems(t *testing.T) {
	opened := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	tables := newMockTableStore(&models.Table{ID: 1, Name: "Masa 1", IsOccupied: true, OpenedAt: &opened, OpenedBy: "ali"})
	items := &mockItemStore{items: []models.TableItem{
		{ID: "i1", TableID: 1, ProductName: "Çay", ProductPrice: ptr(10.50), Quantity: 2, AddedBy: "ali"},
		{ID: "i2", TableID: 1, ProductName: "Kek", ProductPrice: ptr(5), Quantity: 1, AddedBy: "ayse"},
		{ID: "i3", TableID: 2, ProductName: "Su", ProductPrice: ptr(2), Quantity: 1},
	}}
	txs := &mockTransactionStore{}
	svc := newTestService(tables, items, txs, newMockProductStore())

	live, _ := items.List(1)
	tx, err := svc.CloseTable(1, "Masa 1", live, "ayse")
	if err != nil {
		t.Fatalf("CloseTable() hata: %v", err)
	}

	if len(txs.created) != 1 {
		t.Fatalf("tam 1 transaction oluşmalı, %d var", len(txs.created))
	}
	if tx.TotalAmount != 26.00 {
		t.Errorf("toplam = %v, istenen 26.00", tx.TotalAmount)
	}
	if tx.OpenedBy != "ali" || tx.ClosedBy != "ayse" {
		t.Errorf("opened_by/closed_by = %q/%q", tx.OpenedBy, tx.ClosedBy)
	}

	var snapshot []models.TransactionItem
	if err := json.Unmarshal([]byte(tx.Items), &snapshot); err != nil {
		t.Fatalf("items snapshot JSON çözülemedi: %v", err)
	}
	if len(snapshot) != 2 {
		t.Errorf("snapshot uzunluğu = %d, kapanış anındaki satır sayısı 2 olmalı", len(snapshot))
	}

	var addedBy map[string][]addedItem
	if err := json.Unmarshal([]byte(tx.ItemsAddedBy), &addedBy); err != nil {
		t.Fatalf("items_added_by JSON çözülemedi: %v", err)
	}
	if len(addedBy["ali"]) != 1 || len(addedBy["ayse"]) != 1 {
		t.Errorf("items_added_by gruplaması yanlış: %v", addedBy)
	}

	remaining, _ := items.List(1)
	if len(remaining) != 0 {
		t.Errorf("masanın satırları temizlenmeli, %d kaldı", len(remaining))
	}
	other, _ := items.List(2)
	if len(other) != 1 {
		t.Error("başka masanın satırlarına dokunulmamalı")
	}

	got := tables.tables[1]
	if got.IsOccupied || got.OpenedAt != nil {
		t.Error("masa boş işaretlenmeli ve opened_at temizlenmeli")
	}
}

func TestCloseTableStepFailures(t *testing.T) {
	liveItems := []models.TableItem{
		{ID: "i1", TableID: 1, ProductName: "Çay", ProductPrice: ptr(5), Quantity: 1},
	}

	tests := []struct {
		name      string
		setup     func(*mockItemStore, *mockTransactionStore, *mockTableStore)
		wantErr   error
		wantTx    int  // transaction store'da kalan kayıt
		wantClear bool // clear adımına gelindi mi
	}{
		{
			name: "createFailsAbortsEverything",
			setup: func(items *mockItemStore, txs *mockTransactionStore, tables *mockTableStore) {
				txs.createErr = errStore
			},
			wantErr: ErrCreateTransaction,
			wantTx:  0,
		},
		{
			name: "clearFailsLeavesTransaction",
			setup: func(items *mockItemStore, txs *mockTransactionStore, tables *mockTableStore) {
				items.clearErr = errStore
			},
			wantErr:   ErrClearItems,
			wantTx:    1,
			wantClear: true,
		},
		{
			name: "tableUpdateFailsAfterFirstTwoSteps",
			setup: func(items *mockItemStore, txs *mockTransactionStore, tables *mockTableStore) {
				tables.setErr = errStore
			},
			wantErr:   ErrUpdateTable,
			wantTx:    1,
			wantClear: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opened := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
			tables := newMockTableStore(&models.Table{ID: 1, Name: "Masa 1", IsOccupied: true, OpenedAt: &opened})
			items := &mockItemStore{items: append([]models.TableItem(nil), liveItems...)}
			txs := &mockTransactionStore{}
			tt.setup(items, txs, tables)

			svc := newTestService(tables, items, txs, newMockProductStore())
			_, err := svc.CloseTable(1, "Masa 1", liveItems, "ayse")

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CloseTable() hata = %v, istenen %v", err, tt.wantErr)
			}
			if len(txs.created) != tt.wantTx {
				t.Errorf("transaction kaydı = %d, istenen %d", len(txs.created), tt.wantTx)
			}
			if tt.wantClear != (items.clearCalls > 0) {
				t.Errorf("clear çağrısı = %d, istenen çağrılmış=%v", items.clearCalls, tt.wantClear)
			}
			// Hiçbir adımda geri alma yok: create başarılıysa kayıt durur
		})
	}
}

// Kapanışla yarışan ürün ekleme: snapshot alındıktan sonra gelen satır
// hem transaction'a girmez hem de clear adımında silinir. Bu bilinen
// bir açık; test mevcut davranışı belgelemek için var, sessizce
// değişmesin diye.
func TestCloseTableRaceLosesLateItem(t *testing.T) {
	product := &models.Product{ID: "p1", Name: "Su", Price: ptr(2), IsActive: true}
	opened := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	tables := newMockTableStore(&models.Table{ID: 1, Name: "Masa 1", IsOccupied: true, OpenedAt: &opened})
	items := &mockItemStore{items: []models.TableItem{
		{ID: "i1", TableID: 1, ProductName: "Çay", ProductPrice: ptr(5), Quantity: 1, AddedBy: "ali"},
	}}
	txs := &mockTransactionStore{}
	svc := newTestService(tables, items, txs, newMockProductStore(product))

	// Kapanışı başlatan taraf satır listesini aldı...
	snapshot, _ := items.List(1)

	// ...araya başka cihazdan bir ekleme girdi
	if _, err := svc.AddItem(1, "p1", 1, nil, "ayse"); err != nil {
		t.Fatalf("yarışan AddItem hata: %v", err)
	}

	tx, err := svc.CloseTable(1, "Masa 1", snapshot, "ali")
	if err != nil {
		t.Fatalf("CloseTable() hata: %v", err)
	}

	var txItems []models.TransactionItem
	if err := json.Unmarshal([]byte(tx.Items), &txItems); err != nil {
		t.Fatalf("items JSON çözülemedi: %v", err)
	}
	if len(txItems) != 1 {
		t.Errorf("geç gelen satır transaction'a girmemeli (mevcut davranış), %d kalem var", len(txItems))
	}

	remaining, _ := items.List(1)
	if len(remaining) != 0 {
		t.Errorf("geç gelen satır clear adımında silinmiş olmalı (mevcut davranış), %d satır kaldı", len(remaining))
	}
	// Yani "Su" faturalandırılmadan kayboldu: adımlar arası kilit yok.
}
