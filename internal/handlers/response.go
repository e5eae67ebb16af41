package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"portfolio-api/internal/contextutil"
	"portfolio-api/internal/ratelimit"
)

const msgTooManyRequests = "Too many requests. Please try again later."

// Limiter decides whether a client may make another request.
type Limiter interface {
	Check(key string) ratelimit.Decision
	Period() time.Duration
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// RateLimitResponse is the body of a 429 answer.
type RateLimitResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func writeError(ctx context.Context, w http.ResponseWriter, statusCode int, message string) {
	writeJSON(ctx, w, statusCode, ErrorResponse{Error: message})
}

// setRateLimitHeaders reports the client's quota. The reset time is sent in unix milliseconds.
func setRateLimitHeaders(w http.ResponseWriter, d ratelimit.Decision, withReset bool) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
	if withReset {
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.UnixMilli(), 10))
	}
}

// allow counts the request against limiter and answers 429 when the client is over quota.
// It reports whether the handler may continue.
func allow(w http.ResponseWriter, r *http.Request, limiter Limiter) (ratelimit.Decision, bool) {
	ctx := r.Context()
	key := ratelimit.ClientKey(r)

	d := limiter.Check(key)
	if d.Allowed {
		return d, true
	}

	contextutil.LoggerFromContext(ctx).WarnContext(ctx, "rate limit exceeded", "client", key, "limit", d.Limit)
	setRateLimitHeaders(w, d, true)
	writeJSON(ctx, w, http.StatusTooManyRequests, RateLimitResponse{
		Error:      msgTooManyRequests,
		RetryAfter: int(limiter.Period() / time.Second),
	})
	return d, false
}
