// internal/core/domain/record.go
package domain

import (
	"fmt"
	"time"
)

// InventoryRecord represents one warehouse item occurrence as returned
// by the x3pl backend. Records are created only by the backend; the
// dashboard never edits an existing record's fields, it only appends
// new minimal records through the import workflow.
type InventoryRecord struct {
	ID         int64   `json:"id"`
	SHK        string  `json:"shk"`
	Name       string  `json:"name"`
	WrSHK      *string `json:"wr_shk"`
	WrName     *string `json:"wr_name"`
	Kolvo      int     `json:"kolvo"`
	Condition  string  `json:"condition"`
	Reason     *string `json:"reason"`
	Ispolnitel string  `json:"ispolnitel"`
	Date       string  `json:"date"`
	DateUpd    *string `json:"date_upd"`
}

// MinimalImportRecord is the creation payload extracted from an
// uploaded spreadsheet row.
type MinimalImportRecord struct {
	SHK  string `json:"shk"`
	Name string `json:"name"`
}

// UploadResult aggregates the outcome of a batched upload run. The
// counters accumulate across all batches and are never reset mid-run.
type UploadResult struct {
	Success   bool     `json:"success"`
	Processed int      `json:"processed"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors"`
}

// PlacementStats summarizes how many records have been placed into a
// warehouse cell.
type PlacementStats struct {
	Total     int `json:"total"`
	Placed    int `json:"placed"`
	NotPlaced int `json:"not_placed"`
}

// Placed reports whether the record has been placed into a warehouse
// cell. A record is placed iff both the cell code and the cell name are
// present. This is derived from the two fields on every call, never
// stored.
func (r *InventoryRecord) Placed() bool {
	return r.WrSHK != nil && *r.WrSHK != "" && r.WrName != nil && *r.WrName != ""
}

// GetPlacementStats computes placement statistics over a record set.
func GetPlacementStats(records []InventoryRecord) PlacementStats {
	stats := PlacementStats{Total: len(records)}
	for i := range records {
		if records[i].Placed() {
			stats.Placed++
		}
	}
	stats.NotPlaced = stats.Total - stats.Placed
	return stats
}

// Condition display names for export. Values outside the map pass
// through verbatim; the condition set is open at the data level.
var conditionDisplayNames = map[string]string{
	"Good":      "Кондиция",
	"Defective": "Некондиция",
}

// ConditionDisplayName returns the localized display name for a
// condition value, or the value itself when unmapped.
func ConditionDisplayName(condition string) string {
	if name, ok := conditionDisplayNames[condition]; ok {
		return name
	}
	return condition
}

// Timestamp layouts accepted on record date fields. The backend sends
// RFC 3339, older rows carry a bare datetime.
var recordDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseRecordDate parses a record timestamp string.
func ParseRecordDate(value string) (time.Time, error) {
	for _, layout := range recordDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// Validate performs presence checks on a minimal import record.
func (m *MinimalImportRecord) Validate() error {
	if m.SHK == "" {
		return fmt.Errorf("shk is required")
	}
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
