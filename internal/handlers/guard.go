// internal/handlers/guard.go
package handlers

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/awaisprogram/smart-inventory/internal/core/domain"
	"github.com/awaisprogram/smart-inventory/internal/core/ports"
)

// GuardedManager serializes access to a StockManager. The core collection
// holds no locks of its own, so the HTTP layer, which serves requests
// concurrently, wraps it in one mutex guarding every operation.
type GuardedManager struct {
	mu      sync.Mutex
	manager ports.StockManager
}

var _ ports.StockManager = (*GuardedManager)(nil)

// NewGuardedManager wraps manager in a single lock.
func NewGuardedManager(manager ports.StockManager) *GuardedManager {
	return &GuardedManager{manager: manager}
}

func (g *GuardedManager) AddItem(item domain.Item) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.manager.AddItem(item)
}

func (g *GuardedManager) RemoveItem(id int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.manager.RemoveItem(id)
}

func (g *GuardedManager) Item(id int) (domain.Item, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.manager.Item(id)
}

func (g *GuardedManager) SellItem(id, quantity int) (bool, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.manager.SellItem(id, quantity)
}

func (g *GuardedManager) RestockItem(id, quantity int) (bool, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.manager.RestockItem(id, quantity)
}

func (g *GuardedManager) TotalValue() decimal.Decimal {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.manager.TotalValue()
}

func (g *GuardedManager) SearchByName(name string) []domain.Item {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.manager.SearchByName(name)
}

func (g *GuardedManager) SearchByType(kind domain.ItemKind) []domain.Item {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.manager.SearchByType(kind)
}

func (g *GuardedManager) ListAll() []domain.Item {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.manager.ListAll()
}

func (g *GuardedManager) RemoveExpired() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.manager.RemoveExpired()
}

func (g *GuardedManager) SaveToFile(path string) (bool, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.manager.SaveToFile(path)
}

func (g *GuardedManager) LoadFromFile(path string) (bool, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.manager.LoadFromFile(path)
}
