// internal/core/dataview/filter.go
package dataview

import (
	"sort"
	"strings"
	"time"

	"github.com/mkoval-dev/x3pl-dashboard/internal/core/domain"
)

// PlacementFilter selects records by placement status.
type PlacementFilter string

const (
	PlacementAll       PlacementFilter = "all"
	PlacementPlaced    PlacementFilter = "placed"
	PlacementNotPlaced PlacementFilter = "not_placed"
)

// FilterCriteria holds the seven independent predicates of the record
// filter. Empty string criteria impose no constraint; all set criteria
// combine with logical AND.
type FilterCriteria struct {
	Search          string          `json:"search"`
	Name            string          `json:"name"`
	WrName          string          `json:"wr_name"`
	Condition       string          `json:"condition"`
	Ispolnitel      string          `json:"ispolnitel"`
	PlacementStatus PlacementFilter `json:"placement_status"`
	DateFrom        string          `json:"date_from"` // YYYY-MM-DD
	DateTo          string          `json:"date_to"`   // YYYY-MM-DD, inclusive at day granularity
}

// DefaultFilters returns the empty criteria set.
func DefaultFilters() FilterCriteria {
	return FilterCriteria{PlacementStatus: PlacementAll}
}

// HasActive reports whether any predicate constrains the record set.
func (c FilterCriteria) HasActive() bool {
	return c.Search != "" ||
		c.Name != "" ||
		c.WrName != "" ||
		c.Condition != "" ||
		c.Ispolnitel != "" ||
		(c.PlacementStatus != "" && c.PlacementStatus != PlacementAll) ||
		c.DateFrom != "" ||
		c.DateTo != ""
}

// Filter returns the subset of records matching all set predicates,
// preserving relative order. The input is never mutated.
func Filter(records []domain.InventoryRecord, criteria FilterCriteria) []domain.InventoryRecord {
	dateFrom, dateTo := criteria.dateBounds()

	out := make([]domain.InventoryRecord, 0, len(records))
	for i := range records {
		if matches(&records[i], criteria, dateFrom, dateTo) {
			out = append(out, records[i])
		}
	}
	return out
}

func matches(r *domain.InventoryRecord, c FilterCriteria, dateFrom, dateTo *time.Time) bool {
	if c.Search != "" && !containsFold(r.SHK, c.Search) {
		return false
	}
	if c.Name != "" && !containsFold(r.Name, c.Name) {
		return false
	}
	if c.WrName != "" {
		if r.WrName == nil || !containsFold(*r.WrName, c.WrName) {
			return false
		}
	}
	if c.Condition != "" && r.Condition != c.Condition {
		return false
	}
	if c.Ispolnitel != "" && !containsFold(r.Ispolnitel, c.Ispolnitel) {
		return false
	}

	switch c.PlacementStatus {
	case PlacementPlaced:
		if !r.Placed() {
			return false
		}
	case PlacementNotPlaced:
		if r.Placed() {
			return false
		}
	}

	if dateFrom != nil || dateTo != nil {
		recordDate, err := domain.ParseRecordDate(r.Date)
		if err != nil {
			// Unparseable timestamps never match an active date bound.
			return false
		}
		if dateFrom != nil && recordDate.Before(*dateFrom) {
			return false
		}
		if dateTo != nil && !recordDate.Before(*dateTo) {
			return false
		}
	}

	return true
}

// dateBounds parses the criteria date strings. The upper bound is
// shifted one day forward so the end date is inclusive at day
// granularity. Bounds that fail to parse are treated as unset.
func (c FilterCriteria) dateBounds() (from, to *time.Time) {
	if c.DateFrom != "" {
		if t, err := time.Parse("2006-01-02", c.DateFrom); err == nil {
			from = &t
		}
	}
	if c.DateTo != "" {
		if t, err := time.Parse("2006-01-02", c.DateTo); err == nil {
			next := t.AddDate(0, 0, 1)
			to = &next
		}
	}
	return from, to
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// UniqueConditions returns the distinct condition values of a record
// set, sorted, for populating filter options.
func UniqueConditions(records []domain.InventoryRecord) []string {
	return uniqueValues(records, func(r *domain.InventoryRecord) string { return r.Condition })
}

// UniqueIspolnitels returns the distinct responsible-party names of a
// record set, sorted.
func UniqueIspolnitels(records []domain.InventoryRecord) []string {
	return uniqueValues(records, func(r *domain.InventoryRecord) string { return r.Ispolnitel })
}

func uniqueValues(records []domain.InventoryRecord, get func(*domain.InventoryRecord) string) []string {
	seen := make(map[string]struct{}, len(records))
	values := make([]string, 0, len(records))
	for i := range records {
		v := get(&records[i])
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
