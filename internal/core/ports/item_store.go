// internal/core/ports/item_store.go
package ports

import "github.com/awaisprogram/smart-inventory/internal/core/domain"

// ItemStore persists the collection as an ordered sequence of tagged
// records. Implementations return errors rather than panicking; the
// manager converts them to user-facing messages at its boundary.
type ItemStore interface {
	Save(path string, records []domain.Record) error
	Load(path string) ([]domain.Record, error)
}
