// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// Reserved taxonomy members. Stock and quantity failures are reported to
// callers through the manager's boolean-and-message outcomes, not through
// these sentinels; they exist for internal validation routing.
var (
	ErrNotEnoughStock = errors.New("not enough stock")
	ErrInvalidEntry   = errors.New("invalid entry")
)

// DuplicateItemError is signaled when an item is added under an id that is
// already present in the collection. Unlike ordinary user-facing outcomes,
// a duplicate id is an integrity error the caller must not ignore.
type DuplicateItemError struct {
	ID int
}

func (e *DuplicateItemError) Error() string {
	return fmt.Sprintf("item ID %d already exists", e.ID)
}

// UnknownKindError reports a record whose discriminator matches no known
// variant. At the collection level such records are skipped, not fatal.
type UnknownKindError struct {
	Kind ItemKind
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown item type %q", string(e.Kind))
}
