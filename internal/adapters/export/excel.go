// internal/adapters/export/excel.go
package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/awaisprogram/smart-inventory/internal/core/domain"
)

// SheetName is the worksheet the inventory table is written to.
const SheetName = "Inventory"

// ExcelExporter renders the inventory as an Excel workbook with one row
// per item, mirroring the dashboard table.
type ExcelExporter struct {
	logger *slog.Logger
}

// NewExcelExporter creates an Excel exporter.
func NewExcelExporter(logger *slog.Logger) *ExcelExporter {
	return &ExcelExporter{
		logger: logger.With(slog.String("adapter", "excel_export")),
	}
}

var headers = []string{"ID", "Name", "Type", "Price", "Stock", "Details", "Total Value"}

// Generate builds the workbook in memory. The time argument is the
// caller's notion of "now", used for the expired marker in detail cells.
func (e *ExcelExporter) Generate(items []domain.Item, at time.Time) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, header := range headers {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, item := range items {
		row := sheet.AddRow()
		for _, value := range []string{
			strconv.Itoa(item.ID()),
			item.Name(),
			string(item.Kind()),
			item.Price().StringFixed(2),
			strconv.Itoa(item.Stock()),
			item.Details(at),
			item.TotalValue().StringFixed(2),
		} {
			row.AddCell().Value = value
		}
	}

	for i := range headers {
		sheet.SetColWidth(i, i, 18)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	e.logger.Debug("workbook generated",
		slog.Int("rows", len(items)),
		slog.Int("bytes", buffer.Len()))
	return buffer.Bytes(), nil
}
