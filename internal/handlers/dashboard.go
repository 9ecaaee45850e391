// internal/handlers/dashboard.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/awaisprogram/smart-inventory/internal/core/domain"
	"github.com/awaisprogram/smart-inventory/internal/core/ports"
)

// DashboardHandler serves the inventory overview: item count, total
// value, expired count, and the item table.
type DashboardHandler struct {
	manager ports.StockManager
	logger  *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(manager ports.StockManager, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		manager: manager,
		logger:  logger.With(slog.String("handler", "dashboard")),
	}
}

// DashboardResponse represents the dashboard overview payload.
type DashboardResponse struct {
	TotalItems   int             `json:"total_items"`
	TotalValue   decimal.Decimal `json:"total_value"`
	ExpiredItems int             `json:"expired_items"`
	Items        []ItemView      `json:"items"`
}

// GetDashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	items := h.manager.ListAll()

	expired := 0
	for _, item := range items {
		if food, ok := item.(*domain.Food); ok && food.IsExpired(now) {
			expired++
		}
	}

	respondJSON(w, h.logger, http.StatusOK, DashboardResponse{
		TotalItems:   len(items),
		TotalValue:   h.manager.TotalValue(),
		ExpiredItems: expired,
		Items:        itemViews(items, now),
	})
}
