package ratelimit

import (
	"net/http/httptest"
	"testing"
)

func TestClientKey(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name: "forwarded-for wins and is trimmed",
			headers: map[string]string{
				"X-Forwarded-For": " 1.2.3.4 , 5.6.7.8",
				"X-Real-IP":       "9.9.9.9",
			},
			want: "1.2.3.4",
		},
		{
			name:    "forwarded-for single value",
			headers: map[string]string{"X-Forwarded-For": "1.2.3.4"},
			want:    "1.2.3.4",
		},
		{
			name: "real ip before cdn header",
			headers: map[string]string{
				"X-Real-IP":        "9.9.9.9",
				"CF-Connecting-IP": "8.8.8.8",
			},
			want: "9.9.9.9",
		},
		{
			name:    "cdn header",
			headers: map[string]string{"CF-Connecting-IP": "8.8.8.8"},
			want:    "8.8.8.8",
		},
		{
			name: "no headers",
			want: UnknownClient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/chat", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := ClientKey(req); got != tt.want {
				t.Errorf("ClientKey() = %q, want %q", got, tt.want)
			}
		})
	}
}
