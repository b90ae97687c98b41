// internal/handlers/import.go
package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mkoval-dev/x3pl-dashboard/internal/core/domain"
	"github.com/mkoval-dev/x3pl-dashboard/internal/importer"
)

// ImportHandler handles spreadsheet import operations
type ImportHandler struct {
	uploader    *importer.Uploader
	logger      *slog.Logger
	maxFileSize int64
}

// ImportResponse is the aggregate outcome returned to the client.
type ImportResponse struct {
	domain.UploadResult
	Warnings []string `json:"warnings,omitempty"`
}

// NewImportHandler creates a new import handler
func NewImportHandler(uploader *importer.Uploader, maxFileSize int64, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{
		uploader:    uploader,
		logger:      logger.With(slog.String("handler", "import")),
		maxFileSize: maxFileSize,
	}
}

// ImportExcel handles POST /api/v1/import. The whole workflow runs
// synchronously: validate, parse, then upload in sequential batches.
func (h *ImportHandler) ImportExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	runID := uuid.New().String()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+1<<20)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		respondError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	if err := importer.ValidateFile(header.Filename, header.Size, h.maxFileSize); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read upload",
			slog.String("run_id", runID),
			slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "Failed to read upload")
		return
	}

	parsed, err := importer.Parse(data)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			respondError(w, http.StatusBadRequest, validationErr.Message)
			return
		}
		h.logger.ErrorContext(ctx, "failed to parse upload",
			slog.String("run_id", runID),
			slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "Failed to parse upload")
		return
	}

	h.logger.InfoContext(ctx, "import run started",
		slog.String("run_id", runID),
		slog.String("filename", header.Filename),
		slog.Int("items", len(parsed.Items)),
		slog.Int("warnings", len(parsed.Warnings)))

	result := h.uploader.Upload(ctx, parsed.Items, func(percent int) {
		h.logger.DebugContext(ctx, "import progress",
			slog.String("run_id", runID),
			slog.Int("percent", percent))
	})

	h.logger.InfoContext(ctx, "import run completed",
		slog.String("run_id", runID),
		slog.Int("processed", result.Processed),
		slog.Int("failed", result.Failed))

	respondJSON(w, http.StatusOK, ImportResponse{
		UploadResult: result,
		Warnings:     parsed.Warnings,
	})
}
