package dataview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoval-dev/x3pl-dashboard/internal/core/dataview"
	"github.com/mkoval-dev/x3pl-dashboard/internal/core/domain"
	"github.com/mkoval-dev/x3pl-dashboard/test/helpers"
)

func TestPaginate(t *testing.T) {
	records := helpers.CreateTestRecords(25)

	tests := []struct {
		name     string
		page     int
		pageSize int
		wantLen  int
		firstID  int64
	}{
		{name: "first_page", page: 1, pageSize: 10, wantLen: 10, firstID: 1},
		{name: "middle_page", page: 2, pageSize: 10, wantLen: 10, firstID: 11},
		{name: "short_last_page", page: 3, pageSize: 10, wantLen: 5, firstID: 21},
		{name: "page_beyond_range_is_empty", page: 4, pageSize: 10, wantLen: 0},
		{name: "single_page_holds_everything", page: 1, pageSize: 100, wantLen: 25, firstID: 1},
		{name: "zero_page_is_empty", page: 0, pageSize: 10, wantLen: 0},
		{name: "zero_page_size_is_empty", page: 1, pageSize: 0, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := dataview.Paginate(records, tt.page, tt.pageSize)

			require.Len(t, result, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.firstID, result[0].ID)
			}
		})
	}
}

func TestPaginate_PagesReconstructInput(t *testing.T) {
	records := helpers.CreateTestRecords(23)
	pageSize := 10

	var reconstructed []domain.InventoryRecord
	for page := 1; page <= dataview.TotalPages(len(records), pageSize); page++ {
		reconstructed = append(reconstructed, dataview.Paginate(records, page, pageSize)...)
	}

	assert.Equal(t, records, reconstructed)
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		totalItems int
		pageSize   int
		want       int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{100, 20, 5},
		{5, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, dataview.TotalPages(tt.totalItems, tt.pageSize),
			"TotalPages(%d, %d)", tt.totalItems, tt.pageSize)
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		currentPage int
		totalPages  int
		want        int
	}{
		{1, 5, 1},
		{5, 5, 5},
		{7, 5, 5},
		{0, 5, 1},
		{3, 0, 1}, // empty set behaves as a single page
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, dataview.ClampPage(tt.currentPage, tt.totalPages),
			"ClampPage(%d, %d)", tt.currentPage, tt.totalPages)
	}
}

func TestPageNumbers(t *testing.T) {
	e := dataview.PageEllipsis

	tests := []struct {
		name        string
		currentPage int
		totalPages  int
		want        []int
	}{
		{
			name:        "middle_of_long_range",
			currentPage: 5, totalPages: 10,
			want: []int{1, e, 3, 4, 5, 6, 7, e, 10},
		},
		{
			name:        "near_start",
			currentPage: 2, totalPages: 10,
			want: []int{1, 2, 3, 4, e, 10},
		},
		{
			name:        "near_end",
			currentPage: 9, totalPages: 10,
			want: []int{1, e, 7, 8, 9, 10},
		},
		{
			name:        "short_range_has_no_ellipsis",
			currentPage: 2, totalPages: 5,
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name:        "single_page",
			currentPage: 1, totalPages: 1,
			want: []int{1},
		},
		{
			name:        "two_pages",
			currentPage: 1, totalPages: 2,
			want: []int{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dataview.PageNumbers(tt.currentPage, tt.totalPages))
		})
	}
}

func TestRangeInfo(t *testing.T) {
	tests := []struct {
		name  string
		state dataview.PaginationState
		want  string
	}{
		{
			name:  "full_page",
			state: dataview.PaginationState{CurrentPage: 1, PageSize: 20, TotalItems: 100},
			want:  "Показано 1-20 из 100 записей",
		},
		{
			name:  "partial_last_page",
			state: dataview.PaginationState{CurrentPage: 3, PageSize: 10, TotalItems: 25},
			want:  "Показано 21-25 из 25 записей",
		},
		{
			name:  "empty_set",
			state: dataview.PaginationState{CurrentPage: 1, PageSize: 20, TotalItems: 0},
			want:  "Нет данных для отображения",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dataview.RangeInfo(tt.state))
		})
	}
}

func TestNavigationGuards(t *testing.T) {
	assert.False(t, dataview.CanGoPrevious(1))
	assert.True(t, dataview.CanGoPrevious(2))
	assert.True(t, dataview.CanGoNext(1, 2))
	assert.False(t, dataview.CanGoNext(2, 2))
	assert.False(t, dataview.CanGoNext(1, 1))
}
