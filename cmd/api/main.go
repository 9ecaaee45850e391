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

	"github.com/awaisprogram/smart-inventory/internal/adapters/export"
	"github.com/awaisprogram/smart-inventory/internal/adapters/persistence"
	"github.com/awaisprogram/smart-inventory/internal/core/services"
	"github.com/awaisprogram/smart-inventory/internal/handlers"
	"github.com/awaisprogram/smart-inventory/internal/handlers/middleware"
	"github.com/awaisprogram/smart-inventory/internal/pkg/config"
	"github.com/awaisprogram/smart-inventory/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting smart inventory tracker",
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
		slog.String("log_level", cfg.App.LogLevel),
	)

	deps := initializeDependencies(cfg, slogger)

	// Bring back the last saved inventory, if any
	if cfg.Storage.LoadOnStart {
		if success, message := deps.manager.LoadFromFile(cfg.Storage.DataFile); !success {
			slogger.Warn("initial inventory load skipped",
				slog.String("path", cfg.Storage.DataFile),
				slog.String("message", message))
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
	manager          *handlers.GuardedManager
	inventoryHandler *handlers.InventoryHandler
	dashboardHandler *handlers.DashboardHandler
	exportHandler    *handlers.ExportHandler
	healthHandler    *handlers.HealthHandler
}

func initializeDependencies(cfg *config.Config, logger *slog.Logger) *dependencies {
	store := persistence.NewJSONFile(logger)
	manager := handlers.NewGuardedManager(services.NewStockManager(store, logger))
	exporter := export.NewExcelExporter(logger)

	deps := &dependencies{
		manager:          manager,
		inventoryHandler: handlers.NewInventoryHandler(manager, cfg.Storage.DataFile, logger),
		dashboardHandler: handlers.NewDashboardHandler(manager, logger),
		exportHandler:    handlers.NewExportHandler(manager, exporter, logger),
		healthHandler:    handlers.NewHealthHandler(manager, cfg, logger),
	}

	logger.Info("all dependencies initialized successfully")
	return deps
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	registerRoutes(mux, deps, cfg)

	// Apply middleware in reverse order (innermost first)
	var handler http.Handler = mux
	handler = middleware.Logger(logger)(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.RequestID(handler)

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}

	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}

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
		mux.HandleFunc("GET "+apiV1+"/health", deps.healthHandler.Health)
	}

	// Item endpoints
	mux.HandleFunc("GET "+apiV1+"/items", deps.inventoryHandler.ListItems)
	mux.HandleFunc("POST "+apiV1+"/items", deps.inventoryHandler.CreateItem)
	mux.HandleFunc("GET "+apiV1+"/items/{id}", deps.inventoryHandler.GetItem)
	mux.HandleFunc("DELETE "+apiV1+"/items/{id}", deps.inventoryHandler.DeleteItem)
	mux.HandleFunc("POST "+apiV1+"/items/{id}/sell", deps.inventoryHandler.SellItem)
	mux.HandleFunc("POST "+apiV1+"/items/{id}/restock", deps.inventoryHandler.RestockItem)
	mux.HandleFunc("DELETE "+apiV1+"/items/expired", deps.inventoryHandler.RemoveExpired)

	// Persistence endpoints
	mux.HandleFunc("POST "+apiV1+"/inventory/save", deps.inventoryHandler.SaveInventory)
	mux.HandleFunc("POST "+apiV1+"/inventory/load", deps.inventoryHandler.LoadInventory)

	// Dashboard and export endpoints
	mux.HandleFunc("GET "+apiV1+"/dashboard", deps.dashboardHandler.GetDashboard)
	mux.HandleFunc("GET "+apiV1+"/export/excel", deps.exportHandler.ExportExcel)
	mux.HandleFunc("GET "+apiV1+"/export/json", deps.exportHandler.ExportJSON)
}
