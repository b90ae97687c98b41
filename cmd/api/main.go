// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mkoval-dev/x3pl-dashboard/internal/adapters/x3pl"
	"github.com/mkoval-dev/x3pl-dashboard/internal/core/dataview"
	"github.com/mkoval-dev/x3pl-dashboard/internal/handlers"
	"github.com/mkoval-dev/x3pl-dashboard/internal/handlers/middleware"
	"github.com/mkoval-dev/x3pl-dashboard/internal/importer"
	"github.com/mkoval-dev/x3pl-dashboard/internal/pkg/config"
	"github.com/mkoval-dev/x3pl-dashboard/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting x3pl inventory dashboard",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("upstream", cfg.Upstream.BaseURL),
	)

	ctx := context.Background()
	deps := initializeDependencies(cfg, slogger)

	// Warm the record store; a failed initial load is not fatal, the
	// dashboard stays interactive and the user can reload.
	if cfg.View.LoadOnStartup {
		if err := deps.view.Load(ctx); err != nil {
			slogger.Warn("initial load failed, starting with empty store",
				slog.String("error", err.Error()))
		}
	}

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	view          *dataview.View
	viewHandler   *handlers.ViewHandler
	importHandler *handlers.ImportHandler
	exportHandler *handlers.ExportHandler
	healthHandler *handlers.HealthHandler
}

func initializeDependencies(cfg *config.Config, logger *slog.Logger) *dependencies {
	gateway := x3pl.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.RequestTimeout, logger)

	view := dataview.NewView(gateway, cfg.View.DefaultPageSize, logger)
	uploader := importer.NewUploader(gateway, cfg.Import.BatchSize, logger)

	deps := &dependencies{
		view:          view,
		viewHandler:   handlers.NewViewHandler(view, logger),
		importHandler: handlers.NewImportHandler(uploader, cfg.MaxImportFileSize(), logger),
		exportHandler: handlers.NewExportHandler(view, logger),
		healthHandler: handlers.NewHealthHandler(view, cfg, logger),
	}

	logger.Info("all dependencies initialized successfully")
	return deps
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()

	var handler http.Handler = mux

	// Apply middleware in reverse order (innermost first)
	if cfg.App.Environment != "test" {
		handler = middleware.RequestID(handler)
		handler = middleware.Logger(logger)(handler)
		handler = middleware.Recovery(logger)(handler)
	}

	if cfg.Server.EnableMetrics {
		handler = middleware.Metrics(handler)
	}

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}

	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}

	registerRoutes(mux, deps, cfg)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

func registerRoutes(mux *http.ServeMux, deps *dependencies, cfg *config.Config) {
	apiV1 := "/api/v1"

	if cfg.Server.EnableHealthCheck {
		mux.HandleFunc("GET /health", deps.healthHandler.Health)
		mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
	}

	if cfg.Server.EnableMetrics {
		mux.Handle("GET /metrics", promhttp.Handler())
	}

	mux.HandleFunc("GET "+apiV1+"/view", deps.viewHandler.GetView)
	mux.HandleFunc("POST "+apiV1+"/view/reload", deps.viewHandler.Reload)
	mux.HandleFunc("PATCH "+apiV1+"/view/filters", deps.viewHandler.UpdateFilters)
	mux.HandleFunc("PUT "+apiV1+"/view/sort", deps.viewHandler.UpdateSort)
	mux.HandleFunc("PUT "+apiV1+"/view/page", deps.viewHandler.GoToPage)
	mux.HandleFunc("PUT "+apiV1+"/view/page-size", deps.viewHandler.ChangePageSize)
	mux.HandleFunc("POST "+apiV1+"/view/reset", deps.viewHandler.Reset)
	mux.HandleFunc("GET "+apiV1+"/view/options", deps.viewHandler.GetOptions)

	mux.HandleFunc("POST "+apiV1+"/import", deps.importHandler.ImportExcel)
	mux.HandleFunc("GET "+apiV1+"/export", deps.exportHandler.ExportExcel)
}
