// test/helpers/helpers.go
package helpers

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/awaisprogram/smart-inventory/internal/core/domain"
)

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// FixedClock returns a clock frozen at the given YYYY-MM-DD date.
func FixedClock(t *testing.T, date string) func() time.Time {
	t.Helper()

	at, err := time.ParseInLocation(domain.ExpiryLayout, date, time.UTC)
	if err != nil {
		t.Fatalf("bad fixed clock date %q: %v", date, err)
	}
	return func() time.Time { return at }
}

// TestGadget creates an electronics item with sensible defaults.
func TestGadget(id int) *domain.Gadget {
	return domain.NewGadget(id, "Wireless Mouse", decimal.NewFromFloat(1450), 25, 2, "Logitech")
}

// TestFood creates a perishable item expiring on the given date.
func TestFood(id int, expiry string) *domain.Food {
	return domain.NewFood(id, "Milk", decimal.NewFromFloat(50), 10, expiry)
}

// TestApparel creates a clothing item with sensible defaults.
func TestApparel(id int) *domain.Apparel {
	return domain.NewApparel(id, "Cotton T-Shirt", decimal.NewFromFloat(799), 60, "M", "Cotton")
}
