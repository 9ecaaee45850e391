// internal/handlers/export.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/awaisprogram/smart-inventory/internal/adapters/export"
	"github.com/awaisprogram/smart-inventory/internal/core/domain"
	"github.com/awaisprogram/smart-inventory/internal/core/ports"
)

// ExportHandler serves inventory exports in Excel and JSON form.
type ExportHandler struct {
	manager  ports.StockManager
	exporter *export.ExcelExporter
	logger   *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(manager ports.StockManager, exporter *export.ExcelExporter, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		manager:  manager,
		exporter: exporter,
		logger:   logger.With(slog.String("handler", "export")),
	}
}

// ExportMetadata describes an export payload.
type ExportMetadata struct {
	ExportDate time.Time `json:"export_date"`
	TotalItems int       `json:"total_items"`
}

// JSONExportResponse wraps the persisted record form of the inventory.
type JSONExportResponse struct {
	Inventory []domain.Record `json:"inventory"`
	Metadata  ExportMetadata  `json:"metadata"`
}

// ExportExcel handles GET /api/v1/export/excel
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	items := h.manager.ListAll()

	data, err := h.exporter.Generate(items, time.Now())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate Excel file",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("inventory_export_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(data); err != nil {
		h.logger.ErrorContext(ctx, "failed to write Excel response",
			slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "Excel export completed",
		slog.Int("total_rows", len(items)),
		slog.String("filename", filename))
}

// ExportJSON handles GET /api/v1/export/json
func (h *ExportHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	items := h.manager.ListAll()

	records := make([]domain.Record, 0, len(items))
	for _, item := range items {
		records = append(records, item.Record())
	}

	respondJSON(w, h.logger, http.StatusOK, JSONExportResponse{
		Inventory: records,
		Metadata: ExportMetadata{
			ExportDate: time.Now(),
			TotalItems: len(records),
		},
	})
}
