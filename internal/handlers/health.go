// internal/handlers/health.go
package handlers

import (
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/awaisprogram/smart-inventory/internal/core/ports"
	"github.com/awaisprogram/smart-inventory/internal/pkg/config"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	manager   ports.StockManager
	config    *config.Config
	logger    *slog.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(manager ports.StockManager, cfg *config.Config, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		manager:   manager,
		config:    cfg,
		logger:    logger.With(slog.String("handler", "health")),
		startTime: time.Now(),
	}
}

// HealthStatus represents the health status of the application
type HealthStatus struct {
	Status      string     `json:"status"`
	Version     string     `json:"version"`
	Environment string     `json:"environment"`
	Uptime      string     `json:"uptime"`
	Timestamp   time.Time  `json:"timestamp"`
	ItemCount   int        `json:"item_count"`
	System      SystemInfo `json:"system"`
}

// SystemInfo represents system-level information
type SystemInfo struct {
	GoVersion     string `json:"go_version"`
	NumGoroutines int    `json:"num_goroutines"`
	NumCPU        int    `json:"num_cpu"`
	MemoryAllocMB uint64 `json:"memory_alloc_mb"`
	NumGC         uint32 `json:"num_gc"`
}

// Health handles the /health endpoint
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, HealthStatus{
		Status:      "healthy",
		Version:     h.config.App.Version,
		Environment: h.config.App.Environment,
		Uptime:      time.Since(h.startTime).Round(time.Second).String(),
		Timestamp:   time.Now(),
		ItemCount:   len(h.manager.ListAll()),
		System:      getSystemInfo(),
	})
}

func getSystemInfo() SystemInfo {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return SystemInfo{
		GoVersion:     runtime.Version(),
		NumGoroutines: runtime.NumGoroutine(),
		NumCPU:        runtime.NumCPU(),
		MemoryAllocMB: mem.Alloc / 1024 / 1024,
		NumGC:         mem.NumGC,
	}
}
