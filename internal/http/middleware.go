package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"portfolio-api/internal/contextutil"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// LoggerMiddleware adds a request id and a structured logger to the request context.
// An incoming X-Request-ID is reused; otherwise a new one is generated.
func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		logger := slog.Default().With(
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"request_id", requestID,
		)
		ctx := contextutil.WithLogger(r.Context(), logger)
		ctx = contextutil.WithRequestID(ctx, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CORS adds CORS headers to allow cross-origin requests.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "3600")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// isProbe reports whether r is a successful liveness probe, which is not logged.
func isProbe(r *http.Request, status int) bool {
	if r.Method != http.MethodGet || status != http.StatusOK {
		return false
	}
	return r.URL.Path == "/ping" || r.URL.Path == "/api/health"
}

// slogFormatter plugs the request-scoped slog logger into chi's RequestLogger.
type slogFormatter struct{}

func (slogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &slogEntry{
		r:      r,
		logger: contextutil.LoggerFromContext(r.Context()),
	}
}

type slogEntry struct {
	r      *http.Request
	logger *slog.Logger
}

func (e *slogEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	// Nothing written means net/http answers 200.
	if status == 0 {
		status = http.StatusOK
	}
	if isProbe(e.r, status) {
		return
	}

	level := slog.LevelInfo
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	} else if status >= http.StatusBadRequest {
		level = slog.LevelWarn
	}
	e.logger.Log(e.r.Context(), level, "request completed",
		"status", status,
		"bytes", bytes,
		"duration_ms", elapsed.Milliseconds(),
	)
}

func (e *slogEntry) Panic(v interface{}, stack []byte) {
	e.logger.ErrorContext(e.r.Context(), "panic recovered",
		"panic", fmt.Sprintf("%v", v),
		"stack", string(stack),
	)
}

// RequestLogger logs one line per completed request through chi's RequestLogger.
func RequestLogger(next http.Handler) http.Handler {
	return middleware.RequestLogger(slogFormatter{})(next)
}

// Recoverer turns a handler panic into a logged 500 JSON response.
// chi's middleware.Recoverer answers with an empty body, so the JSON envelope is written here.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			if entry := middleware.GetLogEntry(r); entry != nil {
				entry.Panic(rec, debug.Stack())
			} else {
				ctx := r.Context()
				contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "panic recovered",
					"panic", fmt.Sprintf("%v", rec),
					"stack", string(debug.Stack()),
				)
			}

			// A started response cannot change its status.
			if ww.Status() != 0 || ww.BytesWritten() > 0 {
				return
			}
			ww.Header().Set("Content-Type", "application/json")
			ww.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(ww).Encode(map[string]string{"error": "Internal server error"})
		}()

		next.ServeHTTP(ww, r)
	})
}
