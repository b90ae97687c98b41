// internal/core/dataview/paginate.go
package dataview

import (
	"fmt"

	"github.com/mkoval-dev/x3pl-dashboard/internal/core/domain"
)

// PageEllipsis marks a collapsed range in a page-number list. It is a
// sentinel, not a real page.
const PageEllipsis = -1

// PaginationState holds the 1-based current page, the page size and
// the derived total item count of the filtered set.
type PaginationState struct {
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
	TotalItems  int `json:"total_items"`
}

// DefaultPageSize matches the dashboard default.
const DefaultPageSize = 20

// PageSizeOptions are the page sizes the dashboard offers.
var PageSizeOptions = []int{10, 20, 50, 100}

// Paginate returns the half-open slice [(page-1)*size, page*size)
// clamped to the record bounds. An out-of-range page yields an empty
// slice rather than an error.
func Paginate(records []domain.InventoryRecord, page, pageSize int) []domain.InventoryRecord {
	if pageSize <= 0 || page <= 0 {
		return []domain.InventoryRecord{}
	}
	start := (page - 1) * pageSize
	if start >= len(records) {
		return []domain.InventoryRecord{}
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// TotalPages computes ceil(totalItems/pageSize).
func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// ClampPage keeps the current page within [1, totalPages], treating an
// empty set as a single page.
func ClampPage(currentPage, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if currentPage > totalPages {
		return totalPages
	}
	if currentPage < 1 {
		return 1
	}
	return currentPage
}

// PageNumbers builds the page-number list for pagination controls:
// always the first and last page, up to two pages on each side of the
// current one, with PageEllipsis sentinels where ranges collapse.
// Adjacent duplicates are removed, order is preserved.
func PageNumbers(currentPage, totalPages int) []int {
	const delta = 2

	var pages []int

	low := currentPage - delta
	if low < 2 {
		low = 2
	}
	high := currentPage + delta
	if high > totalPages-1 {
		high = totalPages - 1
	}
	for i := low; i <= high; i++ {
		pages = append(pages, i)
	}

	if currentPage-delta > 2 {
		pages = append([]int{PageEllipsis}, pages...)
	}
	if currentPage+delta < totalPages-1 {
		pages = append(pages, PageEllipsis)
	}

	pages = append([]int{1}, pages...)
	if totalPages > 1 {
		pages = append(pages, totalPages)
	}

	return dedupe(pages)
}

// dedupe collapses adjacent identical values. Ellipsis sentinels on
// both sides of the window are distinct gaps and are kept.
func dedupe(pages []int) []int {
	out := pages[:0]
	for i, p := range pages {
		if i > 0 && pages[i-1] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}

// RangeInfo renders the "shown X-Y of Z" line for the current page.
func RangeInfo(p PaginationState) string {
	if p.TotalItems == 0 {
		return "Нет данных для отображения"
	}
	start := (p.CurrentPage-1)*p.PageSize + 1
	end := p.CurrentPage * p.PageSize
	if end > p.TotalItems {
		end = p.TotalItems
	}
	return fmt.Sprintf("Показано %d-%d из %d записей", start, end, p.TotalItems)
}

// CanGoPrevious reports whether a previous page exists.
func CanGoPrevious(currentPage int) bool { return currentPage > 1 }

// CanGoNext reports whether a next page exists.
func CanGoNext(currentPage, totalPages int) bool { return currentPage < totalPages }
