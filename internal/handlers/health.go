package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"portfolio-api/internal/contextutil"
)

// Integration is an external dependency that may lack credentials.
type Integration interface {
	Configured() bool
}

// HealthCheck names an integration. A critical check that fails degrades the service.
type HealthCheck struct {
	Name        string
	Integration Integration
	Critical    bool
}

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	checks []HealthCheck
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy" or "degraded"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// List of issues (only present if an integration is not configured)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP handles HTTP requests for health checks.
// Returns 200 OK if healthy, 503 Service Unavailable if a critical integration is missing.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	checks := make(map[string]string, len(h.checks))
	var issues []string
	degraded := false

	for _, c := range h.checks {
		if c.Integration.Configured() {
			checks[c.Name] = "ok"
			continue
		}
		checks[c.Name] = "not_configured"
		issues = append(issues, c.Name+"_not_configured")
		if c.Critical {
			degraded = true
		}
	}

	// Determine overall status
	status := "healthy"
	httpStatus := http.StatusOK
	if degraded {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Issues:    issues,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.ErrorContext(ctx, "failed to encode health response", "error", err)
	}
}
