// Package spotify is a small Spotify Web API client for the player endpoints
// and the OAuth token grants they need.
package spotify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNotConfigured is returned when client credentials or the refresh token are missing.
	ErrNotConfigured = errors.New("spotify not configured")
	// ErrNoPlayback is returned when the player has nothing to report.
	ErrNoPlayback = errors.New("no playback")
)

// APIError is returned for non-success answers of the Web API.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("spotify bad status %d: %s", e.StatusCode, string(e.Body))
}

// Config holds the application credentials and endpoints.
type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	RedirectURI  string
	AccountsURL  string
	APIURL       string
}

// Client calls the accounts service and the Web API.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a new Spotify client.
func NewClient(cfg Config, timeout time.Duration) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// Configured reports whether the refresh-token grant can be used.
func (c *Client) Configured() bool {
	return c.cfg.ClientID != "" && c.cfg.ClientSecret != "" && c.cfg.RefreshToken != ""
}

// RefreshAccessToken trades the configured refresh token for a new access token.
func (c *Client) RefreshAccessToken(ctx context.Context) (*TokenResponse, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	tok, status, err := c.token(ctx, url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {c.cfg.RefreshToken},
	})
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 || tok.AccessToken == "" {
		return nil, fmt.Errorf("token refresh failed with status %d: %s", status, tok.Error)
	}
	return tok, nil
}

// ExchangeCode trades an authorization code for tokens.
// A grant rejected by Spotify is returned as a response with Error set.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*TokenResponse, error) {
	tok, _, err := c.token(ctx, url.Values{
		"grant_type":   {"authorization_code"},
		"code":         {code},
		"redirect_uri": {c.cfg.RedirectURI},
	})
	return tok, err
}

func (c *Client) token(ctx context.Context, form url.Values) (*TokenResponse, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.AccountsURL+"/api/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var tok TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to decode token response: %w", err)
	}
	return &tok, resp.StatusCode, nil
}

// CurrentlyPlaying returns the player state. A 204 or a status above 400
// yields ErrNoPlayback.
func (c *Client) CurrentlyPlaying(ctx context.Context, accessToken string) (*CurrentlyPlaying, error) {
	resp, err := c.do(ctx, http.MethodGet, "/v1/me/player/currently-playing", accessToken, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNoContent || resp.StatusCode > http.StatusBadRequest {
		return nil, ErrNoPlayback
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: raw}
	}

	var out CurrentlyPlaying
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode player state: %w", err)
	}
	return &out, nil
}

// RecentlyPlayed returns up to limit recently played tracks, newest first.
// Any status other than 200 yields ErrNoPlayback.
func (c *Client) RecentlyPlayed(ctx context.Context, accessToken string, limit int) ([]PlayHistory, error) {
	path := "/v1/me/player/recently-played?limit=" + strconv.Itoa(limit)
	resp, err := c.do(ctx, http.MethodGet, path, accessToken, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNoPlayback
	}

	var out recentlyPlayedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode recently played: %w", err)
	}
	return out.Items, nil
}

// TransferPlayback moves playback to deviceID.
func (c *Client) TransferPlayback(ctx context.Context, accessToken, deviceID string, play bool) error {
	return c.send(ctx, "/v1/me/player", accessToken, map[string]any{
		"device_ids": []string{deviceID},
		"play":       play,
	})
}

// Play starts the given track URIs on deviceID.
func (c *Client) Play(ctx context.Context, accessToken, deviceID string, uris []string) error {
	path := "/v1/me/player/play?device_id=" + url.QueryEscape(deviceID)
	return c.send(ctx, path, accessToken, map[string]any{"uris": uris})
}

func (c *Client) send(ctx context.Context, path, accessToken string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPut, path, accessToken, bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: raw}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path, accessToken string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.cfg.APIURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}
