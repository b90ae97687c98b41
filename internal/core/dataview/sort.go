// internal/core/dataview/sort.go
package dataview

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mkoval-dev/x3pl-dashboard/internal/core/domain"
)

// SortDirection is the order applied to a sorted field.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortState selects a record field and a direction. An empty field
// means no sorting is applied.
type SortState struct {
	Field     string        `json:"field"`
	Direction SortDirection `json:"direction"`
}

// DefaultSort returns the unsorted state.
func DefaultSort() SortState {
	return SortState{Field: "", Direction: SortAsc}
}

// Toggle returns the sort state after selecting a field. Selecting the
// current field flips the direction; a new field starts ascending.
func Toggle(current SortState, field string) SortState {
	if current.Field == field {
		dir := SortAsc
		if current.Direction == SortAsc {
			dir = SortDesc
		}
		return SortState{Field: field, Direction: dir}
	}
	return SortState{Field: field, Direction: SortAsc}
}

// Russian-aware case folding collator for string fields. The dataset
// mixes Cyrillic and Latin values.
var sortCollator = collate.New(language.Russian, collate.IgnoreCase)

// Sort returns a reordered copy of records. The input slice is never
// mutated; with no field selected the input order is preserved. Nil
// values sort after all present values in ascending order. The sort is
// stable, equal keys keep their relative order.
func Sort(records []domain.InventoryRecord, state SortState) []domain.InventoryRecord {
	if state.Field == "" {
		return records
	}

	out := make([]domain.InventoryRecord, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareField(&out[i], &out[j], state.Field)
		if state.Direction == SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

// compareField compares two records by the named field in ascending
// terms: negative when a sorts before b.
func compareField(a, b *domain.InventoryRecord, field string) int {
	switch field {
	case "id":
		return compareInt64(a.ID, b.ID)
	case "kolvo":
		return compareInt64(int64(a.Kolvo), int64(b.Kolvo))
	case "shk":
		return sortCollator.CompareString(a.SHK, b.SHK)
	case "name":
		return sortCollator.CompareString(a.Name, b.Name)
	case "wr_shk":
		return compareNullable(a.WrSHK, b.WrSHK)
	case "wr_name":
		return compareNullable(a.WrName, b.WrName)
	case "condition":
		return sortCollator.CompareString(a.Condition, b.Condition)
	case "reason":
		return compareNullable(a.Reason, b.Reason)
	case "ispolnitel":
		return sortCollator.CompareString(a.Ispolnitel, b.Ispolnitel)
	case "date":
		return sortCollator.CompareString(a.Date, b.Date)
	case "date_upd":
		return compareNullable(a.DateUpd, b.DateUpd)
	default:
		return 0
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareNullable orders nil after any present value.
func compareNullable(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return sortCollator.CompareString(*a, *b)
	}
}
