// internal/core/services/stock_manager.go
package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/awaisprogram/smart-inventory/internal/core/domain"
	"github.com/awaisprogram/smart-inventory/internal/core/ports"
)

// StockManager owns the in-memory collection of items, keyed by id.
// Insertion order is preserved so listings are deterministic. The manager
// is single-threaded by contract: it holds no locks and expects callers
// to serialize access.
type StockManager struct {
	items  map[int]domain.Item
	order  []int
	store  ports.ItemStore
	now    func() time.Time
	logger *slog.Logger
}

// Statically assert that *StockManager implements the StockManager port.
var _ ports.StockManager = (*StockManager)(nil)

// Option configures a StockManager.
type Option func(*StockManager)

// WithClock overrides the source of "current date" used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(m *StockManager) {
		m.now = now
	}
}

// NewStockManager creates an empty collection.
func NewStockManager(store ports.ItemStore, logger *slog.Logger, opts ...Option) *StockManager {
	m := &StockManager{
		items:  make(map[int]domain.Item),
		store:  store,
		now:    time.Now,
		logger: logger.With(slog.String("service", "stock_manager")),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddItem inserts the item. Adding an id that is already present signals
// *domain.DuplicateItemError and leaves the collection unchanged.
func (m *StockManager) AddItem(item domain.Item) error {
	if _, ok := m.items[item.ID()]; ok {
		return &domain.DuplicateItemError{ID: item.ID()}
	}
	m.items[item.ID()] = item
	m.order = append(m.order, item.ID())

	m.logger.Debug("item added",
		slog.Int("id", item.ID()),
		slog.String("name", item.Name()),
		slog.String("kind", string(item.Kind())))
	return nil
}

// RemoveItem deletes the item by id. A missing id is an expected outcome,
// reported as false rather than an error.
func (m *StockManager) RemoveItem(id int) bool {
	if _, ok := m.items[id]; !ok {
		return false
	}
	m.deleteItem(id)
	m.logger.Debug("item removed", slog.Int("id", id))
	return true
}

// Item looks up a single item by id.
func (m *StockManager) Item(id int) (domain.Item, bool) {
	item, ok := m.items[id]
	return item, ok
}

// SellItem decrements stock by quantity. Selling more than the available
// stock fails without any partial decrement and reports the quantity on
// hand.
func (m *StockManager) SellItem(id, quantity int) (bool, string) {
	item, ok := m.items[id]
	if !ok {
		return false, "Item not found"
	}
	if item.Stock() < quantity {
		return false, fmt.Sprintf("Not enough stock. Available: %d", item.Stock())
	}
	item.Sell(quantity)

	m.logger.Debug("item sold",
		slog.Int("id", id),
		slog.Int("quantity", quantity),
		slog.Int("stock", item.Stock()))
	return true, fmt.Sprintf("Sold %d units of %s", quantity, item.Name())
}

// RestockItem increments stock by a positive quantity.
func (m *StockManager) RestockItem(id, quantity int) (bool, string) {
	item, ok := m.items[id]
	if !ok {
		return false, "Item not found"
	}
	if quantity <= 0 {
		return false, "Quantity must be positive"
	}
	item.Replenish(quantity)

	m.logger.Debug("item restocked",
		slog.Int("id", id),
		slog.Int("quantity", quantity),
		slog.Int("stock", item.Stock()))
	return true, fmt.Sprintf("Restocked %d units of %s", quantity, item.Name())
}

// TotalValue sums price*stock over all items. An empty collection is
// worth zero.
func (m *StockManager) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, id := range m.order {
		total = total.Add(m.items[id].TotalValue())
	}
	return total
}

// SearchByName returns all items whose name contains the given text,
// case-insensitively, in collection order.
func (m *StockManager) SearchByName(name string) []domain.Item {
	needle := strings.ToLower(name)
	matches := make([]domain.Item, 0)
	for _, id := range m.order {
		item := m.items[id]
		if strings.Contains(strings.ToLower(item.Name()), needle) {
			matches = append(matches, item)
		}
	}
	return matches
}

// SearchByType returns all items of the given variant, in collection
// order. An unknown kind simply matches nothing.
func (m *StockManager) SearchByType(kind domain.ItemKind) []domain.Item {
	matches := make([]domain.Item, 0)
	for _, id := range m.order {
		if item := m.items[id]; item.Kind() == kind {
			matches = append(matches, item)
		}
	}
	return matches
}

// ListAll returns every item in insertion order.
func (m *StockManager) ListAll() []domain.Item {
	items := make([]domain.Item, 0, len(m.order))
	for _, id := range m.order {
		items = append(items, m.items[id])
	}
	return items
}

// RemoveExpired deletes every Food item whose expiry date is strictly
// before the current date and returns the removed names. Expiry is judged
// at call time, never cached; non-perishables are never touched.
func (m *StockManager) RemoveExpired() []string {
	at := m.now()
	removed := make([]string, 0)
	for _, id := range append([]int(nil), m.order...) {
		food, ok := m.items[id].(*domain.Food)
		if !ok || !food.IsExpired(at) {
			continue
		}
		removed = append(removed, food.Name())
		m.deleteItem(id)
	}
	if len(removed) > 0 {
		m.logger.Info("expired items removed",
			slog.Int("count", len(removed)),
			slog.Any("names", removed))
	}
	return removed
}

// ExpiredCount reports how many Food items are currently expired without
// removing them.
func (m *StockManager) ExpiredCount() int {
	at := m.now()
	count := 0
	for _, id := range m.order {
		if food, ok := m.items[id].(*domain.Food); ok && food.IsExpired(at) {
			count++
		}
	}
	return count
}

// SaveToFile persists every item to path as tagged records. Persistence
// failures are captured and returned as text, never raised.
func (m *StockManager) SaveToFile(path string) (bool, string) {
	records := make([]domain.Record, 0, len(m.order))
	for _, id := range m.order {
		records = append(records, m.items[id].Record())
	}
	if err := m.store.Save(path, records); err != nil {
		m.logger.Error("save failed",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return false, err.Error()
	}
	m.logger.Info("inventory saved",
		slog.String("path", path),
		slog.Int("count", len(records)))
	return true, "Saved successfully"
}

// LoadFromFile replaces the whole collection with the file contents.
// Records with an unrecognized discriminator are skipped; a duplicate id
// within the file overwrites the earlier record.
func (m *StockManager) LoadFromFile(path string) (bool, string) {
	records, err := m.store.Load(path)
	if err != nil {
		m.logger.Error("load failed",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return false, err.Error()
	}

	m.items = make(map[int]domain.Item, len(records))
	m.order = m.order[:0]
	for _, rec := range records {
		item, err := domain.FromRecord(rec)
		if err != nil {
			m.logger.Warn("skipping unrecognized record",
				slog.String("type", string(rec.Type)),
				slog.Int("id", rec.ID))
			continue
		}
		if _, ok := m.items[item.ID()]; !ok {
			m.order = append(m.order, item.ID())
		}
		m.items[item.ID()] = item
	}

	m.logger.Info("inventory loaded",
		slog.String("path", path),
		slog.Int("count", len(m.items)))
	return true, "Loaded successfully"
}

func (m *StockManager) deleteItem(id int) {
	delete(m.items, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}
