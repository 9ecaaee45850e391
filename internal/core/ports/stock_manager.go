// internal/core/ports/stock_manager.go
package ports

import (
	"github.com/shopspring/decimal"

	"github.com/awaisprogram/smart-inventory/internal/core/domain"
)

// StockManager is the operational surface consumed by the presentation
// layer. Mutating operations other than AddItem report expected failures
// as a success flag plus an actionable message rather than an error, so
// front ends can render outcomes without error-handling machinery.
//
// Implementations are not safe for concurrent use; multi-client callers
// must provide external mutual exclusion.
type StockManager interface {
	// AddItem inserts the item, or signals *domain.DuplicateItemError if
	// the id is already present. The collection is unchanged on failure.
	AddItem(item domain.Item) error

	// RemoveItem deletes the item by id and reports whether it existed.
	RemoveItem(id int) bool

	// Item looks up a single item by id.
	Item(id int) (domain.Item, bool)

	// SellItem decrements stock, refusing sales beyond the available
	// quantity. No partial sale ever happens.
	SellItem(id, quantity int) (bool, string)

	// RestockItem increments stock by a positive quantity.
	RestockItem(id, quantity int) (bool, string)

	// TotalValue sums price*stock over all items; zero when empty.
	TotalValue() decimal.Decimal

	// SearchByName matches the name case-insensitively by substring.
	SearchByName(name string) []domain.Item

	// SearchByType returns all items of the given variant.
	SearchByType(kind domain.ItemKind) []domain.Item

	// ListAll returns every item in insertion order.
	ListAll() []domain.Item

	// RemoveExpired deletes every expired Food item, judged against the
	// current date at call time, and returns the removed names.
	RemoveExpired() []string

	// SaveToFile persists all items to path.
	SaveToFile(path string) (bool, string)

	// LoadFromFile replaces the whole collection with the file contents.
	LoadFromFile(path string) (bool, string)
}
