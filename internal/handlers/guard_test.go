package handlers_test

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awaisprogram/smart-inventory/internal/adapters/persistence"
	"github.com/awaisprogram/smart-inventory/internal/core/domain"
	"github.com/awaisprogram/smart-inventory/internal/core/services"
	"github.com/awaisprogram/smart-inventory/internal/handlers"
	"github.com/awaisprogram/smart-inventory/test/helpers"
)

func TestGuardedManager_ConcurrentSells(t *testing.T) {
	logger := helpers.TestLogger()
	manager := handlers.NewGuardedManager(services.NewStockManager(persistence.NewJSONFile(logger), logger))
	require.NoError(t, manager.AddItem(domain.NewGadget(1, "Phone", decimal.NewFromFloat(100), 100, 1, "Acme")))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			manager.SellItem(1, 1)
		}()
	}
	wg.Wait()

	item, ok := manager.Item(1)
	require.True(t, ok)
	assert.Equal(t, 0, item.Stock(), "every unit sold exactly once")
}

func TestGuardedManager_ConcurrentMixedOperations(t *testing.T) {
	logger := helpers.TestLogger()
	manager := handlers.NewGuardedManager(services.NewStockManager(persistence.NewJSONFile(logger), logger))

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_ = manager.AddItem(domain.NewGadget(id, "Phone", decimal.NewFromFloat(10), 1, 1, "Acme"))
			manager.ListAll()
			manager.TotalValue()
		}(i)
	}
	wg.Wait()

	assert.Len(t, manager.ListAll(), 50)
	assert.True(t, manager.TotalValue().Equal(decimal.NewFromFloat(500)))
}
