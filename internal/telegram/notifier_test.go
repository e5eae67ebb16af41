package telegram

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNotifier_Notify(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	if err := NewNotifier(NewClient(server.URL, "t", time.Second), "42").Notify(context.Background(), "hi"); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("Notify() made %d calls, want 1", calls)
	}

	missingChat := NewNotifier(NewClient(server.URL, "t", time.Second), "")
	if missingChat.Configured() {
		t.Error("Configured() = true without chat id")
	}
	if err := missingChat.Notify(context.Background(), "hi"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Notify() error = %v, want ErrNotConfigured", err)
	}
	if calls != 1 {
		t.Errorf("unconfigured Notify() reached the API")
	}
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"snake_case", `snake\_case`},
		{"*bold* `code` [link]", "\\*bold\\* \\`code\\` \\[link]"},
	}
	for _, tt := range tests {
		if got := EscapeMarkdown(tt.in); got != tt.want {
			t.Errorf("EscapeMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
