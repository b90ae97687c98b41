// test/helpers/helpers.go
package helpers

import (
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/mkoval-dev/x3pl-dashboard/internal/core/domain"
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

// StrPtr returns a pointer to the given string.
func StrPtr(s string) *string { return &s }

// CreateTestRecord returns a placed record with sensible defaults,
// optionally modified by the given functions.
func CreateTestRecord(modifiers ...func(*domain.InventoryRecord)) domain.InventoryRecord {
	record := domain.InventoryRecord{
		ID:         1,
		SHK:        "4600000000001",
		Name:       "Коробка с товаром",
		WrSHK:      StrPtr("CELL-001"),
		WrName:     StrPtr("Стеллаж А1"),
		Kolvo:      5,
		Condition:  "Good",
		Reason:     nil,
		Ispolnitel: "Иванов И.И.",
		Date:       "2024-03-15T10:30:00Z",
		DateUpd:    nil,
	}
	for _, modify := range modifiers {
		modify(&record)
	}
	return record
}

// CreateTestRecords builds n records with increasing IDs; every other
// record is left unplaced.
func CreateTestRecords(n int) []domain.InventoryRecord {
	records := make([]domain.InventoryRecord, 0, n)
	for i := 1; i <= n; i++ {
		record := CreateTestRecord(func(r *domain.InventoryRecord) {
			r.ID = int64(i)
			r.SHK = fmt.Sprintf("46000000%05d", i)
			r.Name = fmt.Sprintf("Товар %d", i)
		})
		if i%2 == 0 {
			record.WrSHK = nil
			record.WrName = nil
		}
		records = append(records, record)
	}
	return records
}
