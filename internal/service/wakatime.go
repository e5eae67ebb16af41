package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_coding_stats.go -package=mocks portfolio-api/internal/service CodingStatsClient,CodingStatsService

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"portfolio-api/internal/contextutil"
	"portfolio-api/internal/wakatime"
)

const (
	activityToday     = "Today"
	activityYesterday = "Yesterday"
	activityRecently  = "Recently"
	noTimeWorked      = "0 mins"
)

// CodingStatsClient reads daily coding summaries.
type CodingStatsClient interface {
	Summaries(ctx context.Context, start, end time.Time) ([]wakatime.Summary, error)
	Configured() bool
}

// CodingStats is the coding activity badge shown by the site.
type CodingStats struct {
	IsOnline     bool    `json:"isOnline"`
	TimeWorked   string  `json:"timeWorked"`
	TotalSeconds float64 `json:"totalSeconds"`
	LastActivity string  `json:"lastActivity"`
	Error        string  `json:"error,omitempty"`
}

// CodingStatsService summarises recent coding activity.
type CodingStatsService interface {
	// Stats returns today's activity, or yesterday's when today has none.
	// Upstream failures yield zeroed stats, not errors; only ErrNotConfigured is returned.
	Stats(ctx context.Context) (CodingStats, error)
}

type codingStatsService struct {
	client CodingStatsClient
	now    func() time.Time
}

// StatsOption configures the coding stats service.
type StatsOption func(*codingStatsService)

// WithStatsClock overrides the clock used to pick today and yesterday.
func WithStatsClock(now func() time.Time) StatsOption {
	return func(s *codingStatsService) {
		s.now = now
	}
}

// NewCodingStatsService creates a new CodingStatsService.
func NewCodingStatsService(client CodingStatsClient, opts ...StatsOption) CodingStatsService {
	s := &codingStatsService{client: client, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *codingStatsService) Stats(ctx context.Context) (CodingStats, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if !s.client.Configured() {
		return CodingStats{}, ErrNotConfigured
	}

	now := s.now().UTC()
	yesterday := now.AddDate(0, 0, -1)
	todayKey := now.Format(wakatime.DateLayout)
	yesterdayKey := yesterday.Format(wakatime.DateLayout)

	days, err := s.client.Summaries(ctx, yesterday, now)
	if err != nil {
		var apiErr *wakatime.APIError
		if errors.As(err, &apiErr) {
			logger.WarnContext(ctx, "wakatime returned an error", "status", apiErr.StatusCode, "body", string(apiErr.Body))
			stats := idleStats(activityRecently)
			stats.Error = fmt.Sprintf("API Error: %d", apiErr.StatusCode)
			return stats, nil
		}
		logger.ErrorContext(ctx, "failed to fetch coding summaries", "error", err)
		return idleStats(activityToday), nil
	}

	var today, prev *wakatime.Summary
	for i := range days {
		switch days[i].Range.Date {
		case todayKey:
			today = &days[i]
		case yesterdayKey:
			prev = &days[i]
		}
	}

	active := prev
	if today != nil && today.GrandTotal.TotalSeconds > 0 {
		active = today
	}
	if active == nil || active.GrandTotal.TotalSeconds <= 0 {
		return idleStats(activityRecently), nil
	}

	total := active.GrandTotal.TotalSeconds
	isToday := active.Range.Date == todayKey

	stats := CodingStats{
		IsOnline:     isToday,
		TimeWorked:   FormatTimeWorked(total),
		TotalSeconds: total,
		LastActivity: activityYesterday,
	}
	if isToday {
		stats.LastActivity = activityToday
	}
	return stats, nil
}

func idleStats(lastActivity string) CodingStats {
	return CodingStats{
		TimeWorked:   noTimeWorked,
		LastActivity: lastActivity,
	}
}

// FormatTimeWorked renders seconds as "<h>h <m>m", "<m>m" or "0 mins".
func FormatTimeWorked(totalSeconds float64) string {
	secs := int(math.Floor(totalSeconds))
	hours := secs / 3600
	minutes := (secs % 3600) / 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return noTimeWorked
	}
}
