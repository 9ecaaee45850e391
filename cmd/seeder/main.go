// cmd/seeder/main.go
// Seeds a sample inventory file for local development.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"github.com/awaisprogram/smart-inventory/internal/adapters/persistence"
	"github.com/awaisprogram/smart-inventory/internal/core/domain"
	"github.com/awaisprogram/smart-inventory/internal/core/services"
	"github.com/awaisprogram/smart-inventory/internal/pkg/logger"
)

func main() {
	path := flag.String("file", persistence.DefaultFileName, "inventory file to write")
	flag.Parse()

	slogger := logger.SetupLogger("info", "text")

	store := persistence.NewJSONFile(slogger)
	manager := services.NewStockManager(store, slogger)

	items := []domain.Item{
		domain.NewGadget(1, "Wireless Mouse", decimal.NewFromFloat(1450), 25, 2, "Logitech"),
		domain.NewGadget(2, "Mechanical Keyboard", decimal.NewFromFloat(5200), 10, 1, "Keychron"),
		domain.NewFood(3, "Milk", decimal.NewFromFloat(50), 40, "2030-06-01"),
		domain.NewFood(4, "Yogurt", decimal.NewFromFloat(85), 12, "2024-01-15"),
		domain.NewApparel(5, "Cotton T-Shirt", decimal.NewFromFloat(799), 60, "M", "Cotton"),
	}

	for _, item := range items {
		if err := manager.AddItem(item); err != nil {
			slogger.Error("failed to add seed item",
				slog.Int("id", item.ID()),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	success, message := manager.SaveToFile(*path)
	if !success {
		slogger.Error("failed to write seed file",
			slog.String("path", *path),
			slog.String("message", message))
		os.Exit(1)
	}

	slogger.Info("seed inventory written",
		slog.String("path", *path),
		slog.Int("items", len(items)))
}
