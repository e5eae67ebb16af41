package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"portfolio-api/internal/contextutil"
	"portfolio-api/internal/service"
	"portfolio-api/internal/validation"
)

const (
	nowPlayingCacheControl = "public, s-maxage=30, stale-while-revalidate=60"
	tokenCacheControl      = "private, no-cache, no-store, must-revalidate"
	maxPlayBodyBytes       = 16 << 10
)

var callbackPage = template.Must(template.New("callback").Parse(`<!DOCTYPE html>
<html>
  <head>
    <title>Spotify Authorization Success</title>
    <style>
      body { font-family: system-ui, -apple-system, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; background: #f5f5f5; }
      .container { background: white; padding: 30px; border-radius: 8px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
      h1 { color: #1DB954; margin-top: 0; }
      .token { background: #f0f0f0; padding: 15px; border-radius: 4px; font-family: monospace; word-break: break-all; margin: 20px 0; }
      .instruction { background: #e3f2fd; padding: 15px; border-radius: 4px; border-left: 4px solid #2196f3; }
    </style>
  </head>
  <body>
    <div class="container">
      <h1>Authorization Successful!</h1>
      <p>Your Spotify app is now connected.</p>
      <div class="instruction"><strong>Copy this refresh token to your .env file:</strong></div>
      <div class="token"><strong>SPOTIFY_REFRESH_TOKEN=</strong>{{.RefreshToken}}</div>
      <p>Add this line to your <code>.env</code> file, then restart the server.</p>
      <details>
        <summary>Additional token information</summary>
        <p><strong>Access Token:</strong> {{.AccessToken}}</p>
        <p><strong>Expires in:</strong> {{.ExpiresIn}} seconds</p>
        <p><strong>Token Type:</strong> {{.TokenType}}</p>
      </details>
    </div>
  </body>
</html>
`))

// SpotifyHandler serves the now-playing widget and the web player helpers.
type SpotifyHandler struct {
	musicService service.MusicService
}

// NewSpotifyHandler creates a new SpotifyHandler.
func NewSpotifyHandler(musicService service.MusicService) *SpotifyHandler {
	return &SpotifyHandler{musicService: musicService}
}

// TokenResponse carries an access token for the web playback SDK.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// SuccessResponse is a bare acknowledgement.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// NowPlaying returns the current or last played track.
func (h *SpotifyHandler) NowPlaying(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	track, err := h.musicService.NowPlaying(ctx)
	if errors.Is(err, service.ErrNotFound) {
		writeError(ctx, w, http.StatusNotFound, "No track found")
		return
	}
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "now playing failed", "error", err)
		writeError(ctx, w, http.StatusInternalServerError, "Failed to fetch Spotify data")
		return
	}

	w.Header().Set("Cache-Control", nowPlayingCacheControl)
	writeJSON(ctx, w, http.StatusOK, track)
}

// Token returns a fresh access token.
func (h *SpotifyHandler) Token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, err := h.musicService.AccessToken(ctx)
	if err != nil {
		writeError(ctx, w, http.StatusInternalServerError, "Failed to get access token")
		return
	}

	w.Header().Set("Cache-Control", tokenCacheControl)
	writeJSON(ctx, w, http.StatusOK, TokenResponse{AccessToken: token})
}

// Play transfers playback to the site's web player.
func (h *SpotifyHandler) Play(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req service.PlayRequest
	if issues := validation.DecodeJSON(http.MaxBytesReader(w, r.Body, maxPlayBodyBytes), &req); len(issues) > 0 {
		writeJSON(ctx, w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request data", Details: issues})
		return
	}

	if err := h.musicService.Play(ctx, req); err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			writeError(ctx, w, http.StatusBadRequest, validationErr.Field+" "+validationErr.Message)
			return
		}
		writeError(ctx, w, http.StatusInternalServerError, "Failed to transfer playback")
		return
	}

	writeJSON(ctx, w, http.StatusOK, SuccessResponse{Success: true})
}

// Callback completes the one-time OAuth flow and shows the refresh token.
func (h *SpotifyHandler) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(ctx, w, http.StatusBadRequest, "No code provided")
		return
	}

	tok, err := h.musicService.ExchangeCode(ctx, code)
	if err != nil {
		writeError(ctx, w, http.StatusInternalServerError, "Failed to exchange token")
		return
	}
	if tok.Error != "" {
		logger.WarnContext(ctx, "authorization code rejected", "error", tok.Error, "description", tok.ErrorDescription)
		writeError(ctx, w, http.StatusBadRequest, tok.Error)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := callbackPage.Execute(w, tok); err != nil {
		logger.ErrorContext(ctx, "failed to render callback page", "error", err)
	}
}
