package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-api/internal/service"
	"portfolio-api/internal/service/mocks"
	"portfolio-api/internal/spotify"

	"go.uber.org/mock/gomock"
)

func TestSpotifyHandler_NowPlaying(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		mockSetup  func(*mocks.MockMusicService)
		wantStatus int
		wantCache  string
		wantError  string
	}{
		{
			name: "track",
			mockSetup: func(m *mocks.MockMusicService) {
				m.EXPECT().NowPlaying(gomock.Any()).Return(&service.Track{IsPlaying: true, Title: "Song", Artist: "A, B"}, nil)
			},
			wantStatus: http.StatusOK,
			wantCache:  "public, s-maxage=30, stale-while-revalidate=60",
		},
		{
			name: "nothing found",
			mockSetup: func(m *mocks.MockMusicService) {
				m.EXPECT().NowPlaying(gomock.Any()).Return(nil, service.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantError:  "No track found",
		},
		{
			name: "failure",
			mockSetup: func(m *mocks.MockMusicService) {
				m.EXPECT().NowPlaying(gomock.Any()).Return(nil, spotify.ErrNotConfigured)
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to fetch Spotify data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMusic := mocks.NewMockMusicService(ctrl)
			tt.mockSetup(mockMusic)

			w := httptest.NewRecorder()
			NewSpotifyHandler(mockMusic).NowPlaying(w, httptest.NewRequest(http.MethodGet, "/api/spotify/now-playing", nil))

			if w.Code != tt.wantStatus {
				t.Errorf("NowPlaying() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Cache-Control"); got != tt.wantCache {
				t.Errorf("Cache-Control = %q, want %q", got, tt.wantCache)
			}
			if tt.wantError != "" {
				assertError(t, w, tt.wantError)
			}
		})
	}
}

func TestSpotifyHandler_Token(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMusic := mocks.NewMockMusicService(ctrl)
	handler := NewSpotifyHandler(mockMusic)

	mockMusic.EXPECT().AccessToken(gomock.Any()).Return("abc", nil)
	w := httptest.NewRecorder()
	handler.Token(w, httptest.NewRequest(http.MethodGet, "/api/spotify/token", nil))

	var resp TokenResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if w.Code != http.StatusOK || resp.AccessToken != "abc" {
		t.Errorf("Token() = %d %+v", w.Code, resp)
	}
	if w.Header().Get("Cache-Control") != "private, no-cache, no-store, must-revalidate" {
		t.Errorf("Cache-Control = %q", w.Header().Get("Cache-Control"))
	}

	mockMusic.EXPECT().AccessToken(gomock.Any()).Return("", errors.New("boom"))
	w = httptest.NewRecorder()
	handler.Token(w, httptest.NewRequest(http.MethodGet, "/api/spotify/token", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Token() status = %d, want 500", w.Code)
	}
	assertError(t, w, "Failed to get access token")
}

func TestSpotifyHandler_Play(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		body       string
		mockSetup  func(*mocks.MockMusicService)
		wantStatus int
	}{
		{
			name: "transferred",
			body: `{"deviceId":"dev","trackUri":"spotify:track:1"}`,
			mockSetup: func(m *mocks.MockMusicService) {
				m.EXPECT().Play(gomock.Any(), service.PlayRequest{DeviceID: "dev", TrackURI: "spotify:track:1"}).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing device",
			body: `{}`,
			mockSetup: func(m *mocks.MockMusicService) {
				m.EXPECT().Play(gomock.Any(), service.PlayRequest{}).
					Return(&service.ValidationError{Field: "deviceId", Message: "is required"})
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `nope`,
			mockSetup:  func(m *mocks.MockMusicService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "spotify failure",
			body: `{"deviceId":"dev"}`,
			mockSetup: func(m *mocks.MockMusicService) {
				m.EXPECT().Play(gomock.Any(), gomock.Any()).Return(errors.New("404"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMusic := mocks.NewMockMusicService(ctrl)
			tt.mockSetup(mockMusic)

			w := httptest.NewRecorder()
			NewSpotifyHandler(mockMusic).Play(w, httptest.NewRequest(http.MethodPut, "/api/spotify/play", strings.NewReader(tt.body)))

			if w.Code != tt.wantStatus {
				t.Errorf("Play() status = %v, want %v", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestSpotifyHandler_Callback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("missing code", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewSpotifyHandler(mocks.NewMockMusicService(ctrl)).Callback(w, httptest.NewRequest(http.MethodGet, "/api/spotify/callback", nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
		assertError(t, w, "No code provided")
	})

	t.Run("rejected code", func(t *testing.T) {
		mockMusic := mocks.NewMockMusicService(ctrl)
		mockMusic.EXPECT().ExchangeCode(gomock.Any(), "bad").Return(&spotify.TokenResponse{Error: "invalid_grant"}, nil)

		w := httptest.NewRecorder()
		NewSpotifyHandler(mockMusic).Callback(w, httptest.NewRequest(http.MethodGet, "/api/spotify/callback?code=bad", nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
		assertError(t, w, "invalid_grant")
	})

	t.Run("exchange failure", func(t *testing.T) {
		mockMusic := mocks.NewMockMusicService(ctrl)
		mockMusic.EXPECT().ExchangeCode(gomock.Any(), "c").Return(nil, errors.New("timeout"))

		w := httptest.NewRecorder()
		NewSpotifyHandler(mockMusic).Callback(w, httptest.NewRequest(http.MethodGet, "/api/spotify/callback?code=c", nil))
		if w.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", w.Code)
		}
		assertError(t, w, "Failed to exchange token")
	})

	t.Run("renders escaped page", func(t *testing.T) {
		mockMusic := mocks.NewMockMusicService(ctrl)
		mockMusic.EXPECT().ExchangeCode(gomock.Any(), "good").Return(&spotify.TokenResponse{
			AccessToken:  "acc",
			RefreshToken: "<script>r</script>",
			ExpiresIn:    3600,
			TokenType:    "Bearer",
		}, nil)

		w := httptest.NewRecorder()
		NewSpotifyHandler(mockMusic).Callback(w, httptest.NewRequest(http.MethodGet, "/api/spotify/callback?code=good", nil))
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
		if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/html") {
			t.Errorf("Content-Type = %q", w.Header().Get("Content-Type"))
		}
		body := w.Body.String()
		if strings.Contains(body, "<script>r</script>") || !strings.Contains(body, "&lt;script&gt;r&lt;/script&gt;") {
			t.Error("refresh token not escaped")
		}
		if !strings.Contains(body, "3600 seconds") {
			t.Error("expiry missing from page")
		}
	})
}
