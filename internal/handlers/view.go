// internal/handlers/view.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mkoval-dev/x3pl-dashboard/internal/core/dataview"
	"github.com/mkoval-dev/x3pl-dashboard/internal/core/domain"
)

// ViewHandler exposes the view-state controller over HTTP: the current
// snapshot plus the mutators that drive recomputation.
type ViewHandler struct {
	view   *dataview.View
	logger *slog.Logger
}

// NewViewHandler creates a new view handler
func NewViewHandler(view *dataview.View, logger *slog.Logger) *ViewHandler {
	return &ViewHandler{
		view:   view,
		logger: logger.With(slog.String("handler", "view")),
	}
}

// GetView handles GET /api/v1/view
func (h *ViewHandler) GetView(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.view.Snapshot())
}

// Reload handles POST /api/v1/view/reload
func (h *ViewHandler) Reload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.view.Load(ctx); err != nil {
		h.logger.ErrorContext(ctx, "reload failed", slog.String("error", err.Error()))

		status := http.StatusBadGateway
		var transportErr *domain.TransportError
		if errors.As(err, &transportErr) {
			status = http.StatusGatewayTimeout
		}
		// Prior records stay in the store; the snapshot carries the error.
		respondJSON(w, status, h.view.Snapshot())
		return
	}

	respondJSON(w, http.StatusOK, h.view.Snapshot())
}

// UpdateFilters handles PATCH /api/v1/view/filters
func (h *ViewHandler) UpdateFilters(w http.ResponseWriter, r *http.Request) {
	var patch dataview.FilterPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.view.UpdateFilters(patch)
	respondJSON(w, http.StatusOK, h.view.Snapshot())
}

// UpdateSort handles PUT /api/v1/view/sort. A request with toggle=true
// flips the direction when the field is already selected.
func (h *ViewHandler) UpdateSort(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Field     string                 `json:"field"`
		Direction dataview.SortDirection `json:"direction"`
		Toggle    bool                   `json:"toggle"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Toggle {
		h.view.ToggleSort(req.Field)
	} else {
		direction := req.Direction
		if direction != dataview.SortDesc {
			direction = dataview.SortAsc
		}
		h.view.UpdateSort(dataview.SortState{Field: req.Field, Direction: direction})
	}

	respondJSON(w, http.StatusOK, h.view.Snapshot())
}

// GoToPage handles PUT /api/v1/view/page
func (h *ViewHandler) GoToPage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Page int `json:"page"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Page < 1 {
		respondError(w, http.StatusBadRequest, "Page must be at least 1")
		return
	}

	h.view.GoToPage(req.Page)
	respondJSON(w, http.StatusOK, h.view.Snapshot())
}

// ChangePageSize handles PUT /api/v1/view/page-size
func (h *ViewHandler) ChangePageSize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PageSize int `json:"page_size"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !allowedPageSize(req.PageSize) {
		respondError(w, http.StatusBadRequest, "Unsupported page size")
		return
	}

	h.view.ChangePageSize(req.PageSize)
	respondJSON(w, http.StatusOK, h.view.Snapshot())
}

// Reset handles POST /api/v1/view/reset
func (h *ViewHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.view.ResetAll()
	respondJSON(w, http.StatusOK, h.view.Snapshot())
}

// GetOptions handles GET /api/v1/view/options
func (h *ViewHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.view.FilterOptions())
}

func allowedPageSize(size int) bool {
	for _, option := range dataview.PageSizeOptions {
		if size == option {
			return true
		}
	}
	return false
}
