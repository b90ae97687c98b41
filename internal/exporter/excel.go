// internal/exporter/excel.go
package exporter

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/mkoval-dev/x3pl-dashboard/internal/core/domain"
)

// FilenamePrefix is used when no filename is supplied.
const FilenamePrefix = "inventory_export"

const sheetName = "Размещенный товар"

// Export columns in fixed order with localized headers.
var columnHeaders = []string{
	"ID",
	"ШК",
	"Наименование",
	"ШК ячейки",
	"Название ячейки",
	"Количество",
	"Состояние",
	"Причина",
	"Исполнитель",
	"Дата создания",
	"Дата обновления",
}

var columnWidths = []float64{8, 15, 30, 15, 20, 12, 15, 25, 30, 18, 18}

// Excel serializes the given record set (the currently filtered view,
// not the raw store and not a single page) into one xlsx sheet. The
// whole document is generated in memory in one shot.
func Excel(records []domain.InventoryRecord) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, header := range columnHeaders {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
	}

	for i := range records {
		addRecordRow(sheet, &records[i])
	}

	// SetColWidth columns are 1-based.
	for i, width := range columnWidths {
		sheet.SetColWidth(i+1, i+1, width)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write Excel file to buffer: %w", err)
	}
	return buffer.Bytes(), nil
}

// DefaultFilename returns the prefix plus a timestamp, used when the
// caller supplies no name.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", FilenamePrefix, now.Format("2006-01-02T15-04-05"))
}

func addRecordRow(sheet *xlsx.Sheet, r *domain.InventoryRecord) {
	row := sheet.AddRow()

	values := []string{
		strconv.FormatInt(r.ID, 10),
		r.SHK,
		r.Name,
		derefOrEmpty(r.WrSHK),
		derefOrEmpty(r.WrName),
		strconv.Itoa(r.Kolvo),
		domain.ConditionDisplayName(r.Condition),
		derefOrEmpty(r.Reason),
		r.Ispolnitel,
		formatDate(r.Date),
		formatNullableDate(r.DateUpd),
	}
	for _, v := range values {
		row.AddCell().Value = v
	}
}

// formatDate renders a record timestamp in the ru-RU display format.
// Unparseable values pass through as-is rather than dropping data.
func formatDate(value string) string {
	if value == "" {
		return ""
	}
	t, err := domain.ParseRecordDate(value)
	if err != nil {
		return value
	}
	return t.Format("02.01.2006 15:04")
}

func formatNullableDate(value *string) string {
	if value == nil {
		return ""
	}
	return formatDate(*value)
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
