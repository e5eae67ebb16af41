// Package wakatime reads daily coding summaries from the WakaTime API.
package wakatime

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DateLayout is the day format used by the summaries range.
const DateLayout = "2006-01-02"

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("wakatime not configured")

// APIError is returned when the API answers with a non-success status.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wakatime bad status %d: %s", e.StatusCode, string(e.Body))
}

type GrandTotal struct {
	Digital      string  `json:"digital"`
	Hours        int     `json:"hours"`
	Minutes      int     `json:"minutes"`
	Text         string  `json:"text"`
	TotalSeconds float64 `json:"total_seconds"`
}

type Range struct {
	Date     string `json:"date"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Text     string `json:"text"`
	Timezone string `json:"timezone"`
}

// Summary is the activity of one day.
type Summary struct {
	GrandTotal GrandTotal `json:"grand_total"`
	Range      Range      `json:"range"`
}

type summariesResponse struct {
	Data []Summary `json:"data"`
}

// Client calls the WakaTime API with an API key.
type Client struct {
	BaseURL string
	APIKey  string
	client  *http.Client
}

// NewClient creates a new WakaTime client.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// Configured reports whether an API key is available.
func (c *Client) Configured() bool {
	return c.APIKey != ""
}

// Summaries returns the daily summaries of the current user between start and end inclusive.
func (c *Client) Summaries(ctx context.Context, start, end time.Time) ([]Summary, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	query := url.Values{
		"start": {start.Format(DateLayout)},
		"end":   {end.Format(DateLayout)},
	}
	endpoint := c.BaseURL + "/users/current/summaries?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.APIKey)))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: raw}
	}

	var out summariesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode summaries: %w", err)
	}
	return out.Data, nil
}
