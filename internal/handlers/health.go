package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"lumen/internal/contextutil"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	db                 *sql.DB
	semanticAvailable  bool
	healthCheckTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler. semanticAvailable reflects
// whether a real vector index is configured or searches run degraded.
func NewHealthHandler(db *sql.DB, semanticAvailable bool) *HealthHandler {
	return &HealthHandler{
		db:                 db,
		semanticAvailable:  semanticAvailable,
		healthCheckTimeout: 5 * time.Second,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
	Issues    []string          `json:"issues,omitempty"`
}

// ServeHTTP handles GET /health. The record store is the only hard
// dependency; a missing vector index reports degraded, not unhealthy.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	checks := make(map[string]string)
	var issues []string

	status := "healthy"
	httpStatus := http.StatusOK

	if err := h.db.PingContext(checkCtx); err != nil {
		logger.WarnContext(ctx, "record store health check failed", "error", err)
		checks["record_store"] = "error"
		issues = append(issues, "record_store_unavailable")
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["record_store"] = "ok"
	}

	if h.semanticAvailable {
		checks["vector_index"] = "ok"
	} else {
		checks["vector_index"] = "disabled"
		if status == "healthy" {
			status = "degraded"
		}
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Issues:    issues,
	})
}
