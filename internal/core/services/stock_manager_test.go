package services_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awaisprogram/smart-inventory/internal/adapters/persistence"
	"github.com/awaisprogram/smart-inventory/internal/core/domain"
	"github.com/awaisprogram/smart-inventory/internal/core/services"
	"github.com/awaisprogram/smart-inventory/test/helpers"
)

func newManager(t *testing.T, opts ...services.Option) *services.StockManager {
	t.Helper()
	logger := helpers.TestLogger()
	return services.NewStockManager(persistence.NewJSONFile(logger), logger, opts...)
}

func TestStockManager_AddItem(t *testing.T) {
	t.Run("inserts_new_item", func(t *testing.T) {
		m := newManager(t)

		require.NoError(t, m.AddItem(helpers.TestGadget(1)))

		item, ok := m.Item(1)
		require.True(t, ok)
		assert.Equal(t, "Wireless Mouse", item.Name())
	})

	t.Run("duplicate_id_signals_and_leaves_collection_unchanged", func(t *testing.T) {
		m := newManager(t)
		require.NoError(t, m.AddItem(helpers.TestGadget(1)))

		err := m.AddItem(domain.NewGadget(1, "Other Mouse", decimal.NewFromFloat(100), 5, 1, "Acme"))

		var dup *domain.DuplicateItemError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, 1, dup.ID)

		items := m.ListAll()
		require.Len(t, items, 1)
		assert.Equal(t, "Wireless Mouse", items[0].Name(), "first item kept intact")
	})
}

func TestStockManager_RemoveItem(t *testing.T) {
	m := newManager(t)
	require.NoError(t, m.AddItem(helpers.TestGadget(1)))

	assert.True(t, m.RemoveItem(1))
	assert.False(t, m.RemoveItem(1), "second removal reports not found")
	assert.Empty(t, m.ListAll())
}

func TestStockManager_SellItem(t *testing.T) {
	tests := []struct {
		name            string
		seed            func(m *services.StockManager)
		id              int
		quantity        int
		wantOK          bool
		wantMessage     string
		wantStockAfter  int
		checkStockAfter bool
	}{
		{
			name:        "missing_item",
			seed:        func(*services.StockManager) {},
			id:          99,
			quantity:    1,
			wantOK:      false,
			wantMessage: "Item not found",
		},
		{
			name: "not_enough_stock_reports_available",
			seed: func(m *services.StockManager) {
				require.NoError(t, m.AddItem(domain.NewGadget(5, "Phone", decimal.NewFromFloat(999), 3, 1, "Acme")))
			},
			id:              5,
			quantity:        5,
			wantOK:          false,
			wantMessage:     "Not enough stock. Available: 3",
			wantStockAfter:  3,
			checkStockAfter: true,
		},
		{
			// Zero quantity is reported as a sale even though the
			// stock does not move. Preserved for compatibility.
			name: "zero_quantity_reports_sale_without_decrement",
			seed: func(m *services.StockManager) {
				require.NoError(t, m.AddItem(domain.NewGadget(5, "Phone", decimal.NewFromFloat(999), 10, 1, "Acme")))
			},
			id:              5,
			quantity:        0,
			wantOK:          true,
			wantMessage:     "Sold 0 units of Phone",
			wantStockAfter:  10,
			checkStockAfter: true,
		},
		{
			name: "successful_sale",
			seed: func(m *services.StockManager) {
				require.NoError(t, m.AddItem(domain.NewGadget(5, "Phone", decimal.NewFromFloat(999), 10, 1, "Acme")))
			},
			id:              5,
			quantity:        4,
			wantOK:          true,
			wantMessage:     "Sold 4 units of Phone",
			wantStockAfter:  6,
			checkStockAfter: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newManager(t)
			tt.seed(m)

			ok, message := m.SellItem(tt.id, tt.quantity)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMessage, message)
			if tt.checkStockAfter {
				item, found := m.Item(tt.id)
				require.True(t, found)
				assert.Equal(t, tt.wantStockAfter, item.Stock())
			}
		})
	}
}

func TestStockManager_RestockItem(t *testing.T) {
	tests := []struct {
		name        string
		id          int
		quantity    int
		wantOK      bool
		wantMessage string
	}{
		{name: "missing_item", id: 99, quantity: 5, wantOK: false, wantMessage: "Item not found"},
		{name: "zero_quantity", id: 1, quantity: 0, wantOK: false, wantMessage: "Quantity must be positive"},
		{name: "negative_quantity", id: 1, quantity: -4, wantOK: false, wantMessage: "Quantity must be positive"},
		{name: "successful_restock", id: 1, quantity: 5, wantOK: true, wantMessage: "Restocked 5 units of Wireless Mouse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newManager(t)
			require.NoError(t, m.AddItem(helpers.TestGadget(1)))

			ok, message := m.RestockItem(tt.id, tt.quantity)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestStockManager_TotalValue(t *testing.T) {
	m := newManager(t)
	assert.True(t, m.TotalValue().IsZero(), "empty collection is worth zero")

	require.NoError(t, m.AddItem(domain.NewGadget(1, "Phone", decimal.NewFromFloat(100), 3, 1, "Acme")))
	require.NoError(t, m.AddItem(domain.NewFood(2, "Milk", decimal.NewFromFloat(50), 2, "2030-01-01")))

	assert.True(t, m.TotalValue().Equal(decimal.NewFromFloat(400)),
		"expected 400, got %s", m.TotalValue())
}

func TestStockManager_SearchByName(t *testing.T) {
	m := newManager(t)
	require.NoError(t, m.AddItem(domain.NewGadget(1, "Wireless Mouse", decimal.NewFromFloat(1450), 25, 2, "Logitech")))
	require.NoError(t, m.AddItem(domain.NewGadget(2, "Gaming MOUSE Pad", decimal.NewFromFloat(300), 40, 0, "Generic")))
	require.NoError(t, m.AddItem(domain.NewFood(3, "Milk", decimal.NewFromFloat(50), 10, "2030-01-01")))

	matches := m.SearchByName("mouse")
	require.Len(t, matches, 2)
	assert.Equal(t, 1, matches[0].ID(), "collection order preserved")
	assert.Equal(t, 2, matches[1].ID())

	assert.Empty(t, m.SearchByName("keyboard"))
}

func TestStockManager_SearchByType(t *testing.T) {
	m := newManager(t)
	require.NoError(t, m.AddItem(helpers.TestGadget(1)))
	require.NoError(t, m.AddItem(helpers.TestFood(2, "2030-01-01")))
	require.NoError(t, m.AddItem(helpers.TestApparel(3)))

	foods := m.SearchByType(domain.KindFood)
	require.Len(t, foods, 1)
	assert.Equal(t, 2, foods[0].ID())

	assert.Empty(t, m.SearchByType("Vehicle"), "unknown tag matches nothing")
}

func TestStockManager_ListAllPreservesInsertionOrder(t *testing.T) {
	m := newManager(t)
	for _, id := range []int{42, 7, 19} {
		require.NoError(t, m.AddItem(helpers.TestGadget(id)))
	}

	items := m.ListAll()
	require.Len(t, items, 3)
	assert.Equal(t, 42, items[0].ID())
	assert.Equal(t, 7, items[1].ID())
	assert.Equal(t, 19, items[2].ID())
}

func TestStockManager_RemoveExpired(t *testing.T) {
	t.Run("removes_exactly_the_expired_perishables", func(t *testing.T) {
		m := newManager(t, services.WithClock(helpers.FixedClock(t, "2024-05-10")))
		require.NoError(t, m.AddItem(domain.NewFood(1, "Milk", decimal.NewFromFloat(50), 10, "2024-01-15")))
		require.NoError(t, m.AddItem(domain.NewFood(2, "Honey", decimal.NewFromFloat(200), 5, "2030-01-01")))
		require.NoError(t, m.AddItem(domain.NewGadget(3, "Phone", decimal.NewFromFloat(999), 5, 1, "Acme")))
		require.NoError(t, m.AddItem(domain.NewFood(4, "Yogurt", decimal.NewFromFloat(85), 4, "2024-05-09")))

		removed := m.RemoveExpired()

		assert.Equal(t, []string{"Milk", "Yogurt"}, removed)
		require.Len(t, m.ListAll(), 2)
		_, honeyLeft := m.Item(2)
		_, gadgetLeft := m.Item(3)
		assert.True(t, honeyLeft)
		assert.True(t, gadgetLeft, "non-perishables are never touched")
	})

	t.Run("expiring_today_is_not_expired", func(t *testing.T) {
		m := newManager(t, services.WithClock(helpers.FixedClock(t, "2024-05-10")))
		require.NoError(t, m.AddItem(domain.NewFood(1, "Milk", decimal.NewFromFloat(50), 10, "2024-05-10")))

		assert.Empty(t, m.RemoveExpired())
		assert.Len(t, m.ListAll(), 1)
	})

	t.Run("single_expired_item_empties_collection", func(t *testing.T) {
		m := newManager(t)
		require.NoError(t, m.AddItem(domain.NewFood(1, "Milk", decimal.NewFromFloat(50), 10, "2000-01-01")))

		assert.Equal(t, []string{"Milk"}, m.RemoveExpired())
		assert.Empty(t, m.ListAll())
	})
}

func TestStockManager_ExpiredCount(t *testing.T) {
	m := newManager(t, services.WithClock(helpers.FixedClock(t, "2024-05-10")))
	require.NoError(t, m.AddItem(domain.NewFood(1, "Milk", decimal.NewFromFloat(50), 10, "2024-01-15")))
	require.NoError(t, m.AddItem(domain.NewFood(2, "Honey", decimal.NewFromFloat(200), 5, "2030-01-01")))
	require.NoError(t, m.AddItem(helpers.TestGadget(3)))

	assert.Equal(t, 1, m.ExpiredCount())
	assert.Len(t, m.ListAll(), 3, "counting does not remove")
}

func TestStockManager_SaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory_data.json")

	m := newManager(t)
	require.NoError(t, m.AddItem(domain.NewGadget(1, "Phone", decimal.NewFromFloat(999.99), 5, 2, "Acme")))
	require.NoError(t, m.AddItem(domain.NewFood(2, "Milk", decimal.NewFromFloat(50), 10, "2024-01-15")))
	require.NoError(t, m.AddItem(domain.NewApparel(3, "T-Shirt", decimal.NewFromFloat(799), 60, "M", "Cotton")))

	ok, message := m.SaveToFile(path)
	require.True(t, ok)
	assert.Equal(t, "Saved successfully", message)

	restored := newManager(t)
	ok, message = restored.LoadFromFile(path)
	require.True(t, ok)
	assert.Equal(t, "Loaded successfully", message)

	original := m.ListAll()
	loaded := restored.ListAll()
	require.Len(t, loaded, len(original))
	for i, want := range original {
		got := loaded[i]
		assert.Equal(t, want.ID(), got.ID())
		assert.Equal(t, want.Kind(), got.Kind())
		assert.Equal(t, want.Name(), got.Name())
		assert.Equal(t, want.Stock(), got.Stock())
		assert.True(t, want.Price().Equal(got.Price()))
	}

	food, ok2 := restored.Item(2)
	require.True(t, ok2)
	assert.Equal(t, "2024-01-15", food.(*domain.Food).Expiry())
}

func TestStockManager_LoadReplacesWholesale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory_data.json")

	saved := newManager(t)
	require.NoError(t, saved.AddItem(helpers.TestFood(7, "2030-01-01")))
	ok, _ := saved.SaveToFile(path)
	require.True(t, ok)

	m := newManager(t)
	require.NoError(t, m.AddItem(helpers.TestGadget(1)))
	require.NoError(t, m.AddItem(helpers.TestApparel(2)))

	ok, _ = m.LoadFromFile(path)
	require.True(t, ok)

	items := m.ListAll()
	require.Len(t, items, 1, "load clears before repopulating, never merges")
	assert.Equal(t, 7, items[0].ID())
}

func TestStockManager_LoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	m := newManager(t)
	require.NoError(t, m.AddItem(helpers.TestGadget(1)))

	ok, message := m.LoadFromFile(path)

	assert.False(t, ok)
	assert.Equal(t, "File not found: "+path, message)
	assert.Len(t, m.ListAll(), 1, "failed load leaves the collection alone")
}

func TestStockManager_LoadSkipsUnknownDiscriminator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory_data.json")
	payload := `[
    {"type": "Vehicle", "id": 1, "name": "Truck", "price": 100, "stock": 1},
    {"type": "Food", "id": 2, "name": "Milk", "price": 50, "stock": 10, "expiry": "2030-01-01"}
]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	m := newManager(t)
	ok, message := m.LoadFromFile(path)

	require.True(t, ok)
	assert.Equal(t, "Loaded successfully", message)

	items := m.ListAll()
	require.Len(t, items, 1, "unknown record skipped, valid record kept")
	assert.Equal(t, 2, items[0].ID())
}

func TestStockManager_LoadDuplicateIDLastWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory_data.json")
	payload := `[
    {"type": "Gadget", "id": 1, "name": "Old Phone", "price": 100, "stock": 1, "warranty": 1, "brand": "Acme"},
    {"type": "Gadget", "id": 1, "name": "New Phone", "price": 200, "stock": 2, "warranty": 2, "brand": "Acme"}
]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	m := newManager(t)
	ok, _ := m.LoadFromFile(path)
	require.True(t, ok)

	items := m.ListAll()
	require.Len(t, items, 1)
	assert.Equal(t, "New Phone", items[0].Name())
	assert.Equal(t, 2, items[0].Stock())
}
