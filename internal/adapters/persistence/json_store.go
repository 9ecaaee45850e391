// internal/adapters/persistence/json_store.go
package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/awaisprogram/smart-inventory/internal/core/domain"
	"github.com/awaisprogram/smart-inventory/internal/core/ports"
)

// DefaultFileName is used when the caller does not choose a path.
const DefaultFileName = "inventory_data.json"

// NotFoundError reports a load from a path that does not exist. Its text
// is part of the user-facing contract and is surfaced verbatim.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return "File not found: " + e.Path
}

// JSONFile persists the collection as a single JSON array of tagged
// records, indented with four spaces for compatibility with existing
// saved files.
type JSONFile struct {
	logger *slog.Logger
}

// Statically assert that *JSONFile implements the ItemStore port.
var _ ports.ItemStore = (*JSONFile)(nil)

// NewJSONFile creates a JSON file store.
func NewJSONFile(logger *slog.Logger) *JSONFile {
	return &JSONFile{
		logger: logger.With(slog.String("adapter", "json_store")),
	}
}

// Save writes the records as the file's sole top-level structure.
func (s *JSONFile) Save(path string, records []domain.Record) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	s.logger.Debug("records written",
		slog.String("path", path),
		slog.Int("count", len(records)))
	return nil
}

// Load reads and parses the record sequence. A missing file fails fast
// with *NotFoundError before any read is attempted.
func (s *JSONFile) Load(path string) ([]domain.Record, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, &NotFoundError{Path: path}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var records []domain.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	s.logger.Debug("records read",
		slog.String("path", path),
		slog.Int("count", len(records)))
	return records, nil
}
