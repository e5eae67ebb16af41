package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticIntegration bool

func (s staticIntegration) Configured() bool { return bool(s) }

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		checks     []HealthCheck
		wantStatus int
		wantBody   string
		wantIssues int
	}{
		{
			name:   "healthy with optional integration missing",
			method: http.MethodGet,
			checks: []HealthCheck{
				{Name: "gemini", Integration: staticIntegration(true), Critical: true},
				{Name: "spotify", Integration: staticIntegration(false)},
			},
			wantStatus: http.StatusOK,
			wantBody:   "healthy",
			wantIssues: 1,
		},
		{
			name:   "degraded without chat credential",
			method: http.MethodGet,
			checks: []HealthCheck{
				{Name: "gemini", Integration: staticIntegration(false), Critical: true},
				{Name: "telegram", Integration: staticIntegration(true)},
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "degraded",
			wantIssues: 1,
		},
		{
			name:       "method not allowed",
			method:     http.MethodPost,
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			NewHealthHandler(tt.checks...).ServeHTTP(w, httptest.NewRequest(tt.method, "/api/health", nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if tt.wantBody == "" {
				return
			}

			var resp HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tt.wantBody {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantBody)
			}
			if len(resp.Issues) != tt.wantIssues {
				t.Errorf("issues = %v, want %d", resp.Issues, tt.wantIssues)
			}
			if len(resp.Checks) != len(tt.checks) {
				t.Errorf("checks = %v", resp.Checks)
			}
		})
	}
}
