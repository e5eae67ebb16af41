package spotify

import (
	"context"
	"sync"
	"time"
)

// TokenTTL is how long a refreshed access token is reused. Spotify tokens live one hour.
const TokenTTL = 55 * time.Minute

// TokenSource issues fresh access tokens.
type TokenSource interface {
	RefreshAccessToken(ctx context.Context) (*TokenResponse, error)
}

// TokenCache keeps a single access token until it expires.
// Refreshes run outside the lock, so concurrent misses may each refresh; the last one wins.
// Failed refreshes are not cached.
type TokenCache struct {
	source TokenSource
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	token   string
	expires time.Time
}

// CacheOption configures a TokenCache.
type CacheOption func(*TokenCache)

// WithCacheClock overrides the clock used for expiry.
func WithCacheClock(now func() time.Time) CacheOption {
	return func(c *TokenCache) {
		c.now = now
	}
}

// NewTokenCache creates a cache in front of source.
func NewTokenCache(source TokenSource, ttl time.Duration, opts ...CacheOption) *TokenCache {
	c := &TokenCache{
		source: source,
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached token, refreshing it when expired.
func (c *TokenCache) Get(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.token != "" && c.now().Before(c.expires) {
		token := c.token
		c.mu.Unlock()
		return token, nil
	}
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// Refresh fetches a new token and caches it.
func (c *TokenCache) Refresh(ctx context.Context) (string, error) {
	tok, err := c.source.RefreshAccessToken(ctx)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.token = tok.AccessToken
	c.expires = c.now().Add(c.ttl)
	c.mu.Unlock()

	return tok.AccessToken, nil
}
