// internal/handlers/health.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mkoval-dev/x3pl-dashboard/internal/core/dataview"
	"github.com/mkoval-dev/x3pl-dashboard/internal/pkg/config"
)

// HealthHandler reports service liveness and view status.
type HealthHandler struct {
	view      *dataview.View
	cfg       *config.Config
	logger    *slog.Logger
	startedAt time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(view *dataview.View, cfg *config.Config, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		view:      view,
		cfg:       cfg,
		logger:    logger.With(slog.String("handler", "health")),
		startedAt: time.Now(),
	}
}

// HealthStatus is the health endpoint payload.
type HealthStatus struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	UptimeSec   int64  `json:"uptime_seconds"`
	Records     int    `json:"records"`
	LastError   string `json:"last_error,omitempty"`
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	snap := h.view.Snapshot()

	status := HealthStatus{
		Status:      "ok",
		Version:     h.cfg.App.Version,
		Environment: h.cfg.App.Environment,
		UptimeSec:   int64(time.Since(h.startedAt).Seconds()),
		Records:     len(h.view.Records()),
		LastError:   snap.Error,
	}

	respondJSON(w, http.StatusOK, status)
}

// Readiness handles GET /ready. The service is ready once it is
// serving; an empty store is still interactive (the load may have
// failed and be retried by the user).
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
