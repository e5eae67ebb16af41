// Package ratelimit implements a per-client fixed-window request limiter held in process memory.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Decision is the outcome of a single Check.
type Decision struct {
	Allowed   bool
	Remaining int
	Limit     int
	// ResetAt is when the current window of the client ends.
	ResetAt time.Time
}

type window struct {
	count   int
	resetAt time.Time
}

// FixedWindow counts requests per client key in fixed windows.
// It is safe for concurrent use. State is local to the process.
type FixedWindow struct {
	limit  int
	period time.Duration
	now    func() time.Time

	mu      sync.Mutex
	windows map[string]*window
}

// Option configures a FixedWindow.
type Option func(*FixedWindow)

// WithClock replaces time.Now as the limiter's clock.
func WithClock(now func() time.Time) Option {
	return func(l *FixedWindow) {
		l.now = now
	}
}

// NewFixedWindow creates a limiter that allows limit requests per period for each key.
func NewFixedWindow(limit int, period time.Duration, opts ...Option) *FixedWindow {
	l := &FixedWindow{
		limit:   limit,
		period:  period,
		now:     time.Now,
		windows: make(map[string]*window),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Limit returns the number of requests allowed per window.
func (l *FixedWindow) Limit() int {
	return l.limit
}

// Period returns the window length.
func (l *FixedWindow) Period() time.Duration {
	return l.period
}

// Check records a request for key and reports whether it is allowed.
// A denied request does not count against the window.
func (l *FixedWindow) Check(key string) Decision {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &window{count: 1, resetAt: now.Add(l.period)}
		l.windows[key] = w
		return Decision{Allowed: true, Remaining: l.limit - 1, Limit: l.limit, ResetAt: w.resetAt}
	}

	if w.count >= l.limit {
		return Decision{Allowed: false, Remaining: 0, Limit: l.limit, ResetAt: w.resetAt}
	}

	w.count++
	return Decision{Allowed: true, Remaining: l.limit - w.count, Limit: l.limit, ResetAt: w.resetAt}
}

// Sweep removes every window that has expired and returns how many were removed.
// Check would replace those windows anyway, so sweeping never changes a decision.
func (l *FixedWindow) Sweep() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, w := range l.windows {
		if now.After(w.resetAt) {
			delete(l.windows, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (l *FixedWindow) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

// Run sweeps expired windows every interval until ctx is done.
func (l *FixedWindow) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Sweep()
		}
	}
}
