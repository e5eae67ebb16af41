package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_spotify_api.go -package=mocks portfolio-api/internal/service SpotifyAPI,AccessTokenProvider
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_music_service.go -package=mocks portfolio-api/internal/service MusicService

import (
	"context"
	"errors"

	"portfolio-api/internal/contextutil"
	"portfolio-api/internal/spotify"
)

// SpotifyAPI is the subset of the Spotify Web API the music service uses.
type SpotifyAPI interface {
	CurrentlyPlaying(ctx context.Context, accessToken string) (*spotify.CurrentlyPlaying, error)
	RecentlyPlayed(ctx context.Context, accessToken string, limit int) ([]spotify.PlayHistory, error)
	TransferPlayback(ctx context.Context, accessToken, deviceID string, play bool) error
	Play(ctx context.Context, accessToken, deviceID string, uris []string) error
	ExchangeCode(ctx context.Context, code string) (*spotify.TokenResponse, error)
}

// AccessTokenProvider hands out Spotify access tokens.
type AccessTokenProvider interface {
	// Get returns a cached token when one is still valid.
	Get(ctx context.Context) (string, error)
	// Refresh always fetches a new token.
	Refresh(ctx context.Context) (string, error)
}

// Track is the normalised track shown by the site.
type Track struct {
	IsPlaying     bool   `json:"isPlaying"`
	Title         string `json:"title"`
	Artist        string `json:"artist"`
	AlbumImageURL string `json:"albumImageUrl,omitempty"`
	SongURL       string `json:"songUrl"`
	TrackID       string `json:"trackId"`
	Duration      int    `json:"duration"`
	Progress      int    `json:"progress"`
	PreviewURL    string `json:"previewUrl,omitempty"`
}

// PlayRequest asks to move playback to a web player device.
type PlayRequest struct {
	DeviceID string `json:"deviceId" validate:"required"`
	TrackURI string `json:"trackUri,omitempty"`
}

// MusicService exposes the owner's Spotify player.
type MusicService interface {
	// NowPlaying returns the current track, or the most recent one. ErrNotFound when there is none.
	NowPlaying(ctx context.Context) (*Track, error)
	// AccessToken returns a freshly refreshed access token.
	AccessToken(ctx context.Context) (string, error)
	// Play transfers playback to a device and optionally starts a track.
	Play(ctx context.Context, req PlayRequest) error
	// ExchangeCode completes the one-time OAuth authorization.
	ExchangeCode(ctx context.Context, code string) (*spotify.TokenResponse, error)
}

type musicService struct {
	api    SpotifyAPI
	tokens AccessTokenProvider
}

// NewMusicService creates a new MusicService.
func NewMusicService(api SpotifyAPI, tokens AccessTokenProvider) MusicService {
	return &musicService{api: api, tokens: tokens}
}

func (s *musicService) NowPlaying(ctx context.Context) (*Track, error) {
	logger := contextutil.LoggerFromContext(ctx)

	token, err := s.tokens.Get(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get spotify access token", "error", err)
		return nil, WrapError(err, "failed to get access token")
	}

	state, err := s.api.CurrentlyPlaying(ctx, token)
	switch {
	case errors.Is(err, spotify.ErrNoPlayback):
		return s.lastPlayed(ctx, token)
	case err != nil:
		logger.ErrorContext(ctx, "failed to get player state", "error", err)
		return nil, WrapError(err, "failed to get player state")
	case state.Item == nil:
		return nil, ErrNotFound
	}

	track := normaliseTrack(*state.Item)
	track.IsPlaying = state.IsPlaying
	track.Progress = state.ProgressMS
	return &track, nil
}

func (s *musicService) lastPlayed(ctx context.Context, token string) (*Track, error) {
	items, err := s.api.RecentlyPlayed(ctx, token, 1)
	if errors.Is(err, spotify.ErrNoPlayback) {
		return nil, ErrNotFound
	}
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to get recently played", "error", err)
		return nil, WrapError(err, "failed to get recently played")
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}

	track := normaliseTrack(items[0].Track)
	return &track, nil
}

func normaliseTrack(t spotify.Track) Track {
	return Track{
		Title:         t.Name,
		Artist:        t.ArtistNames(),
		AlbumImageURL: t.CoverURL(),
		SongURL:       t.ExternalURLs.Spotify,
		TrackID:       t.ID,
		Duration:      t.DurationMS,
		PreviewURL:    t.PreviewURL,
	}
}

func (s *musicService) AccessToken(ctx context.Context) (string, error) {
	token, err := s.tokens.Refresh(ctx)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to refresh spotify access token", "error", err)
		return "", WrapError(err, "failed to refresh access token")
	}
	return token, nil
}

func (s *musicService) Play(ctx context.Context, req PlayRequest) error {
	logger := contextutil.LoggerFromContext(ctx)

	if req.DeviceID == "" {
		return &ValidationError{Field: "deviceId", Message: "is required"}
	}

	token, err := s.tokens.Get(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get spotify access token", "error", err)
		return WrapError(err, "failed to get access token")
	}

	if err := s.api.TransferPlayback(ctx, token, req.DeviceID, false); err != nil {
		logger.ErrorContext(ctx, "failed to transfer playback", "device_id", req.DeviceID, "error", err)
		return WrapError(err, "failed to transfer playback")
	}

	if req.TrackURI != "" {
		if err := s.api.Play(ctx, token, req.DeviceID, []string{req.TrackURI}); err != nil {
			logger.ErrorContext(ctx, "failed to start playback", "device_id", req.DeviceID, "error", err)
			return WrapError(err, "failed to start playback")
		}
	}

	logger.InfoContext(ctx, "playback transferred", "device_id", req.DeviceID, "with_track", req.TrackURI != "")
	return nil
}

func (s *musicService) ExchangeCode(ctx context.Context, code string) (*spotify.TokenResponse, error) {
	if code == "" {
		return nil, &ValidationError{Field: "code", Message: "is required"}
	}

	tok, err := s.api.ExchangeCode(ctx, code)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to exchange authorization code", "error", err)
		return nil, WrapError(err, "failed to exchange authorization code")
	}
	return tok, nil
}
