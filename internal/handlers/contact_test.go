package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio-api/internal/ratelimit"
	"portfolio-api/internal/service"
	"portfolio-api/internal/service/mocks"
	"portfolio-api/internal/validation"

	"go.uber.org/mock/gomock"
)

const validContactBody = `{"name":"Ada","email":"ada@example.com","phone":"+1 555 0100 22","message":"Hello there, let's talk."}`

func TestContactHandler_ServeHTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		method        string
		body          string
		mockSetup     func(*mocks.MockContactService)
		wantStatus    int
		checkResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:   "sent",
			method: http.MethodPost,
			body:   validContactBody,
			mockSetup: func(m *mocks.MockContactService) {
				m.EXPECT().Submit(gomock.Any(), service.ContactForm{
					Name:    "Ada",
					Email:   "ada@example.com",
					Phone:   "+1 555 0100 22",
					Message: "Hello there, let's talk.",
				}).Return(nil)
			},
			wantStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp ContactResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if !resp.Success || resp.Message != "Message sent successfully!" {
					t.Errorf("response = %+v", resp)
				}
				if w.Header().Get("X-RateLimit-Limit") != "5" || w.Header().Get("X-RateLimit-Remaining") != "4" {
					t.Errorf("rate limit headers = %v", w.Header())
				}
			},
		},
		{
			name:       "GET not allowed",
			method:     http.MethodGet,
			mockSetup:  func(m *mocks.MockContactService) {},
			wantStatus: http.StatusMethodNotAllowed,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assertError(t, w, "Method not allowed")
			},
		},
		{
			name:       "malformed JSON",
			method:     http.MethodPost,
			body:       `{"name":`,
			mockSetup:  func(m *mocks.MockContactService) {},
			wantStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assertError(t, w, "Invalid form data")
			},
		},
		{
			name:   "field validation",
			method: http.MethodPost,
			body:   `{"name":"A","email":"x","phone":"1","message":"short"}`,
			mockSetup: func(m *mocks.MockContactService) {
				m.EXPECT().Submit(gomock.Any(), gomock.Any()).
					Return(service.NewValidationError([]validation.Issue{{Field: "email", Code: "email", Message: "must be a valid email address"}}))
			},
			wantStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				if !strings.Contains(w.Body.String(), `"field":"email"`) {
					t.Errorf("body = %s", w.Body.String())
				}
			},
		},
		{
			name:   "notifier failure",
			method: http.MethodPost,
			body:   validContactBody,
			mockSetup: func(m *mocks.MockContactService) {
				m.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(errors.New("telegram down"))
			},
			wantStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assertError(t, w, "Failed to send message. Please try again.")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockContactService := mocks.NewMockContactService(ctrl)
			tt.mockSetup(mockContactService)

			handler := NewContactHandler(mockContactService, ratelimit.NewFixedWindow(5, time.Minute))

			req := httptest.NewRequest(tt.method, "/api/contact", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestContactHandler_RateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockContactService := mocks.NewMockContactService(ctrl)
	mockContactService.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil).Times(5)

	handler := NewContactHandler(mockContactService, ratelimit.NewFixedWindow(5, time.Minute))

	for i := 0; i < 6; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(validContactBody))
		req.Header.Set("X-Real-IP", "9.9.9.9")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		want := http.StatusOK
		if i == 5 {
			want = http.StatusTooManyRequests
		}
		if w.Code != want {
			t.Fatalf("request %d status = %d, want %d", i+1, w.Code, want)
		}
	}
}
