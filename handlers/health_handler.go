package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/bhashabridge/bhasha-bridge/backend/internal/observability"
	"github.com/bhashabridge/bhasha-bridge/backend/services/translation"
	"github.com/bhashabridge/bhasha-bridge/backend/utils"
)

// Version is the reported service version.
const Version = "0.1.0"

// HealthResponse represents the health and readiness response bodies
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// StatusResponse represents the status endpoint body
type StatusResponse struct {
	Version     string                 `json:"version"`
	Environment string                 `json:"environment"`
	Model       string                 `json:"model"`
	Languages   []string               `json:"languages"`
	Metrics     observability.Snapshot `json:"metrics"`
	Cache       CacheStatus            `json:"cache"`
}

// CacheStatus summarizes the translation result cache
type CacheStatus struct {
	Size   int    `json:"size"`
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
}

// ReadinessReporter reports whether the model host can serve and exposes
// cache statistics. Satisfied by *translation.Service.
type ReadinessReporter interface {
	Ready() bool
	CacheStats() translation.CacheStats
}

// HealthHandler handles health-related HTTP requests
type HealthHandler struct {
	translation   ReadinessReporter
	metrics       *observability.Metrics
	modelName     string
	environment   string
	languages     []string
	ocrEnabled    bool
	speechEnabled bool
	logger        *zap.Logger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(translationSvc ReadinessReporter, metrics *observability.Metrics,
	modelName, environment string, languages []string, ocrEnabled, speechEnabled bool,
	logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		translation:   translationSvc,
		metrics:       metrics,
		modelName:     modelName,
		environment:   environment,
		languages:     languages,
		ocrEnabled:    ocrEnabled,
		speechEnabled: speechEnabled,
		logger:        logger,
	}
}

// HandleHealth handles GET /healthz
// Liveness only: returns 200 whenever the process serves requests.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	_ = utils.WriteOK(w, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleReadiness handles GET /readyz
// The model loads before the listener opens, so readiness flips to 200
// the moment the socket accepts; the check still guards partial starts.
func (h *HealthHandler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)
	ready := true

	if h.translation != nil && h.translation.Ready() {
		checks["model"] = "loaded"
	} else {
		checks["model"] = "not_loaded"
		ready = false
	}

	checks["ocr"] = enabledString(h.ocrEnabled)
	checks["speech"] = enabledString(h.speechEnabled)

	status := "ready"
	httpStatus := http.StatusOK
	if !ready {
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	}

	if err := utils.WriteJSON(w, httpStatus, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	}); err != nil {
		h.logger.Error("failed to write readiness response", zap.Error(err))
	}
}

// HandleStatus handles GET /status
func (h *HealthHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	var cache CacheStatus
	if h.translation != nil {
		stats := h.translation.CacheStats()
		cache = CacheStatus{Size: stats.Size, Hits: stats.Hits, Misses: stats.Misses}
	}

	if err := utils.WriteOK(w, StatusResponse{
		Version:     Version,
		Environment: h.environment,
		Model:       h.modelName,
		Languages:   h.languages,
		Metrics:     h.metrics.Snapshot(),
		Cache:       cache,
	}); err != nil {
		h.logger.Error("failed to write status response", zap.Error(err))
	}
}

func enabledString(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
