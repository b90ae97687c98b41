// internal/core/dataview/view.go
package dataview

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mkoval-dev/x3pl-dashboard/internal/core/domain"
	"github.com/mkoval-dev/x3pl-dashboard/internal/core/ports"
)

// Snapshot is the derived state of the view pipeline: one page of the
// filtered and sorted record set plus everything the presentation layer
// needs to render controls.
type Snapshot struct {
	Items       []domain.InventoryRecord `json:"items"`
	Pagination  PaginationState          `json:"pagination"`
	TotalPages  int                      `json:"total_pages"`
	PageNumbers []int                    `json:"page_numbers"`
	RangeInfo   string                   `json:"range_info"`
	Stats       domain.PlacementStats    `json:"stats"`
	Filters     FilterCriteria           `json:"filters"`
	Sort        SortState                `json:"sort"`
	Loading     bool                     `json:"loading"`
	Error       string                   `json:"error,omitempty"`
}

// View owns the record store and the filter/sort/pagination criteria
// and recomputes the filter -> sort -> paginate pipeline on demand.
// The record store is the single source of truth: it only grows via
// import on the backend side or is replaced wholesale by Load. All
// state mutations go through the mutex; the pipeline stages themselves
// are pure functions.
type View struct {
	mu      sync.Mutex
	gateway ports.InventoryGateway
	logger  *slog.Logger

	records  []domain.InventoryRecord
	filters  FilterCriteria
	sort     SortState
	page     int
	pageSize int
	loading  bool
	lastErr  string
}

// NewView creates a view-state controller with default criteria.
func NewView(gateway ports.InventoryGateway, pageSize int, logger *slog.Logger) *View {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &View{
		gateway:  gateway,
		logger:   logger.With(slog.String("component", "dataview")),
		filters:  DefaultFilters(),
		sort:     DefaultSort(),
		page:     1,
		pageSize: pageSize,
	}
}

// Load fetches the full record set from the backend gateway and
// replaces the store wholesale. Filter, sort and pagination criteria
// are left untouched. On failure the previous records are retained and
// the error is recorded for the next snapshot.
func (v *View) Load(ctx context.Context) error {
	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	records, err := v.gateway.FetchAll(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false

	if err != nil {
		v.lastErr = err.Error()
		v.logger.ErrorContext(ctx, "failed to load inventory records",
			slog.String("error", err.Error()))
		return err
	}

	v.records = records
	v.lastErr = ""
	v.logger.InfoContext(ctx, "inventory records loaded",
		slog.Int("count", len(records)))
	return nil
}

// UpdateFilters merges non-nil fields of the partial criteria into the
// current filters. The current page is not reset here; Snapshot clamps
// it down when the filtered total shrinks.
func (v *View) UpdateFilters(partial FilterPatch) {
	v.mu.Lock()
	defer v.mu.Unlock()
	partial.applyTo(&v.filters)
}

// UpdateSort replaces the sort state.
func (v *View) UpdateSort(state SortState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sort = state
}

// ToggleSort selects a field, flipping direction on repeat selection.
func (v *View) ToggleSort(field string) SortState {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sort = Toggle(v.sort, field)
	return v.sort
}

// GoToPage sets the 1-based current page.
func (v *View) GoToPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if page < 1 {
		page = 1
	}
	v.page = page
}

// ChangePageSize sets the page size and resets to the first page.
func (v *View) ChangePageSize(size int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if size <= 0 {
		size = DefaultPageSize
	}
	v.pageSize = size
	v.page = 1
}

// ResetAll restores empty filters, no sorting and page 1 at the
// current page size. The record store is untouched.
func (v *View) ResetAll() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filters = DefaultFilters()
	v.sort = DefaultSort()
	v.page = 1
}

// Snapshot recomputes the full pipeline from the current state. The
// computation is a pure function of (records, filters, sort, page,
// pageSize); the only mutation is clamping the stored page down when
// the filtered total no longer reaches it.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	snap := computeSnapshot(v.records, v.filters, v.sort, v.page, v.pageSize)
	v.page = snap.Pagination.CurrentPage
	snap.Loading = v.loading
	snap.Error = v.lastErr
	return snap
}

// Filtered returns the filtered and sorted record set, ignoring
// pagination. This is the set the export workflow serializes.
func (v *View) Filtered() []domain.InventoryRecord {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Sort(Filter(v.records, v.filters), v.sort)
}

// Records returns a copy of the raw store. Callers never alias the
// store itself; it only changes through Load.
func (v *View) Records() []domain.InventoryRecord {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]domain.InventoryRecord, len(v.records))
	copy(out, v.records)
	return out
}

// Options describes the distinct values usable as filter options.
type Options struct {
	Conditions  []string `json:"conditions"`
	Ispolniteli []string `json:"ispolniteli"`
}

// FilterOptions returns the distinct condition and responsible-party
// values of the raw store.
func (v *View) FilterOptions() Options {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Options{
		Conditions:  UniqueConditions(v.records),
		Ispolniteli: UniqueIspolnitels(v.records),
	}
}

func computeSnapshot(records []domain.InventoryRecord, filters FilterCriteria, sortState SortState, page, pageSize int) Snapshot {
	filtered := Filter(records, filters)
	sorted := Sort(filtered, sortState)

	totalPages := TotalPages(len(sorted), pageSize)
	page = ClampPage(page, totalPages)

	pagination := PaginationState{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  len(sorted),
	}

	return Snapshot{
		Items:       Paginate(sorted, page, pageSize),
		Pagination:  pagination,
		TotalPages:  totalPages,
		PageNumbers: PageNumbers(page, totalPages),
		RangeInfo:   RangeInfo(pagination),
		Stats:       domain.GetPlacementStats(filtered),
		Filters:     filters,
		Sort:        sortState,
	}
}

// FilterPatch is a partial filter update; nil fields leave the current
// value in place.
type FilterPatch struct {
	Search          *string          `json:"search"`
	Name            *string          `json:"name"`
	WrName          *string          `json:"wr_name"`
	Condition       *string          `json:"condition"`
	Ispolnitel      *string          `json:"ispolnitel"`
	PlacementStatus *PlacementFilter `json:"placement_status"`
	DateFrom        *string          `json:"date_from"`
	DateTo          *string          `json:"date_to"`
}

func (p FilterPatch) applyTo(c *FilterCriteria) {
	if p.Search != nil {
		c.Search = *p.Search
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.WrName != nil {
		c.WrName = *p.WrName
	}
	if p.Condition != nil {
		c.Condition = *p.Condition
	}
	if p.Ispolnitel != nil {
		c.Ispolnitel = *p.Ispolnitel
	}
	if p.PlacementStatus != nil {
		c.PlacementStatus = *p.PlacementStatus
	}
	if p.DateFrom != nil {
		c.DateFrom = *p.DateFrom
	}
	if p.DateTo != nil {
		c.DateTo = *p.DateTo
	}
}
