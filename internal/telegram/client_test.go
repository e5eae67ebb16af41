package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_SendMessage(t *testing.T) {
	var got SendMessageRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/bottest-token/sendMessage" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token", time.Second)
	err := client.SendMessage(context.Background(), SendMessageRequest{ChatID: "42", Text: "hi", ParseMode: ParseModeMarkdown})
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if got.ChatID != "42" || got.Text != "hi" || got.ParseMode != "Markdown" {
		t.Errorf("SendMessage() sent %+v", got)
	}
}

func TestClient_SendMessage_Errors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
	}))
	defer server.Close()

	err := NewClient(server.URL, "t", time.Second).SendMessage(context.Background(), SendMessageRequest{ChatID: "1", Text: "x"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("SendMessage() error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("APIError.StatusCode = %d", apiErr.StatusCode)
	}

	err = NewClient(server.URL, "", time.Second).SendMessage(context.Background(), SendMessageRequest{})
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("SendMessage() without token error = %v, want ErrNotConfigured", err)
	}
}

func TestClient_GetUpdates(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantOK  bool
		wantErr bool
	}{
		{
			name:   "ok",
			body:   `{"ok":true,"result":[{"update_id":1,"message":{"message_id":1,"chat":{"id":7,"type":"private"}}}]}`,
			wantOK: true,
		},
		{
			name:   "not ok",
			body:   `{"ok":false,"error_code":401,"description":"Unauthorized"}`,
			wantOK: false,
		},
		{
			name:    "not json",
			body:    `<html>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/bott/getUpdates" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			resp, err := NewClient(server.URL, "t", time.Second).GetUpdates(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetUpdates() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if resp.OK != tt.wantOK {
				t.Errorf("GetUpdates() OK = %v, want %v", resp.OK, tt.wantOK)
			}
		})
	}
}

func TestChatRefs(t *testing.T) {
	resp := UpdatesResponse{OK: true, Result: json.RawMessage(`[
		{"update_id":1,"message":{"message_id":1,"from":{"id":7,"username":"yash","first_name":"Yash"},"chat":{"id":7,"type":"private"}}},
		{"update_id":2,"message":{"message_id":2,"chat":{"id":7,"type":"private"}}},
		{"update_id":3,"message":{"message_id":3,"from":{"id":9,"first_name":"Bo"}}},
		{"update_id":4},
		{"update_id":5,"message":{"message_id":5,"chat":{"id":0}}}
	]`)}

	updates, err := resp.Updates()
	if err != nil {
		t.Fatalf("Updates() error = %v", err)
	}
	if len(updates) != 5 {
		t.Fatalf("Updates() len = %d, want 5", len(updates))
	}

	refs := ChatRefs(updates)
	want := []ChatRef{
		{ChatID: 7, Username: "yash", FirstName: "Yash", Type: "private"},
		{ChatID: 9, FirstName: "Bo"},
	}
	if len(refs) != len(want) {
		t.Fatalf("ChatRefs() = %+v, want %+v", refs, want)
	}
	for i := range want {
		if refs[i] != want[i] {
			t.Errorf("ChatRefs()[%d] = %+v, want %+v", i, refs[i], want[i])
		}
	}
}
