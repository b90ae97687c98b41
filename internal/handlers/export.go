// internal/handlers/export.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mkoval-dev/x3pl-dashboard/internal/core/dataview"
	"github.com/mkoval-dev/x3pl-dashboard/internal/exporter"
)

// ExportHandler serializes the currently filtered view to a
// downloadable spreadsheet.
type ExportHandler struct {
	view   *dataview.View
	logger *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(view *dataview.View, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		view:   view,
		logger: logger.With(slog.String("handler", "export")),
	}
}

// ExportExcel handles GET /api/v1/export
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// The export covers the filtered set, not the raw store and not a
	// single page.
	records := h.view.Filtered()

	data, err := exporter.Excel(records)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate Excel file", slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	filename := r.URL.Query().Get("filename")
	if filename == "" {
		filename = exporter.DefaultFilename(time.Now())
	} else if filepath.Ext(filename) != ".xlsx" {
		filename += ".xlsx"
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(data); err != nil {
		h.logger.ErrorContext(ctx, "failed to write Excel response", slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "Excel export completed",
		slog.Int("total_rows", len(records)),
		slog.String("filename", filename))
}
