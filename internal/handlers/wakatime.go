package handlers

import (
	"errors"
	"net/http"

	"portfolio-api/internal/contextutil"
	"portfolio-api/internal/service"
)

// WakaTimeHandler serves the coding activity badge.
type WakaTimeHandler struct {
	statsService service.CodingStatsService
}

// NewWakaTimeHandler creates a new WakaTimeHandler.
func NewWakaTimeHandler(statsService service.CodingStatsService) *WakaTimeHandler {
	return &WakaTimeHandler{statsService: statsService}
}

// ServeHTTP returns today's or yesterday's coding stats.
func (h *WakaTimeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.statsService.Stats(ctx)
	if errors.Is(err, service.ErrNotConfigured) {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "wakatime key missing")
		writeError(ctx, w, http.StatusInternalServerError, "WakaTime API key not configured")
		return
	}
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "coding stats failed", "error", err)
		writeError(ctx, w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(ctx, w, http.StatusOK, stats)
}
