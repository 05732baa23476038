package http

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter manages per-domain request pacing with a token bucket, plus
// exponential backoff when the upstream answers 429/403/503. YouTube's
// unauthenticated surfaces throttle aggressively, so pacing is applied even
// before the first error.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	backoff  map[string]*backoffState
	mu       sync.Mutex
	config   RateLimiterConfig
}

// backoffState tracks rate limit backoff for a domain.
type backoffState struct {
	current     time.Duration
	lastError   time.Time
	consecutive int
}

const (
	initialBackoff  = 1 * time.Second
	maxBackoff      = 60 * time.Second
	backoffMultiple = 2.0
	// backoffCooldown is how long after the last error before a successful
	// request clears the backoff state entirely.
	backoffCooldown = 5 * time.Minute
)

// RateLimiterConfig defines per-surface request rates.
type RateLimiterConfig struct {
	// PageRPS is requests per second against youtube.com (Innertube posts
	// and page scrapes share the same host and the same throttling).
	PageRPS float64
	// DataAPIRPS is requests per second for the Data API (googleapis.com).
	DataAPIRPS float64
	// FeedRPS is requests per second for syndication feeds.
	FeedRPS float64
}

// DefaultRateLimiterConfig returns conservative defaults aligned with
// observed YouTube throttling.
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		PageRPS:    2.5,
		DataAPIRPS: 1.0,
		FeedRPS:    10.0,
	}
}

// NewRateLimiter creates a new rate limiter with the given configuration.
func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	defaults := DefaultRateLimiterConfig()
	if cfg.PageRPS == 0 {
		cfg.PageRPS = defaults.PageRPS
	}
	if cfg.DataAPIRPS == 0 {
		cfg.DataAPIRPS = defaults.DataAPIRPS
	}
	if cfg.FeedRPS == 0 {
		cfg.FeedRPS = defaults.FeedRPS
	}

	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		backoff:  make(map[string]*backoffState),
		config:   cfg,
	}
}

// Wait blocks until the rate limit allows a request for the given URL, or
// the context is done.
func (rl *RateLimiter) Wait(ctx context.Context, urlStr string) error {
	if rl == nil {
		return nil
	}

	limiter := rl.getLimiter(urlStr)
	if limiter == nil {
		return nil
	}

	if limiter.Allow() {
		return nil
	}

	reservation := limiter.Reserve()
	if !reservation.OK() {
		return fmt.Errorf("rate limit: cannot reserve token")
	}

	select {
	case <-time.After(reservation.Delay()):
		return nil
	case <-ctx.Done():
		reservation.Cancel()
		return ctx.Err()
	}
}

// getLimiter returns the limiter for a URL's domain, creating one if needed.
func (rl *RateLimiter) getLimiter(urlStr string) *rate.Limiter {
	domain := extractDomain(urlStr)
	rps := rl.rpsFor(domain)
	if rps == 0 {
		return nil
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, ok := rl.limiters[domain]; ok {
		return limiter
	}

	limiter := rate.NewLimiter(rate.Limit(rps), 1)
	rl.limiters[domain] = limiter
	return limiter
}

// rpsFor returns the configured requests per second for a domain.
func (rl *RateLimiter) rpsFor(domain string) float64 {
	switch domain {
	case "www.youtube.com", "youtube.com":
		return rl.config.PageRPS
	case "www.googleapis.com", "googleapis.com":
		return rl.config.DataAPIRPS
	default:
		return rl.config.PageRPS
	}
}

// extractDomain extracts the host from a URL string, without port.
func extractDomain(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	host := u.Host
	if idx := strings.IndexByte(host, ':'); idx != -1 {
		host = host[:idx]
	}
	return host
}

// RecordRateLimitError records a 429/403/503 for a domain and returns the
// recommended backoff before the next attempt. Consecutive errors double the
// backoff up to a cap; a server-supplied Retry-After wins when longer.
func (rl *RateLimiter) RecordRateLimitError(urlStr string, retryAfter time.Duration) time.Duration {
	if rl == nil {
		if retryAfter > 0 {
			return retryAfter
		}
		return initialBackoff
	}

	domain := extractDomain(urlStr)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	state, ok := rl.backoff[domain]
	if !ok {
		state = &backoffState{current: initialBackoff}
		rl.backoff[domain] = state
	}

	state.lastError = time.Now()
	state.consecutive++

	if state.consecutive > 1 {
		state.current = time.Duration(float64(state.current) * backoffMultiple)
		if state.current > maxBackoff {
			state.current = maxBackoff
		}
	}

	if retryAfter > state.current {
		state.current = retryAfter
	}

	return state.current
}

// RecordSuccess records a successful request, decaying and eventually
// clearing the domain's backoff state.
func (rl *RateLimiter) RecordSuccess(urlStr string) {
	if rl == nil {
		return
	}

	domain := extractDomain(urlStr)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	state, ok := rl.backoff[domain]
	if !ok {
		return
	}

	if time.Since(state.lastError) > backoffCooldown {
		delete(rl.backoff, domain)
		return
	}

	if state.consecutive > 0 {
		state.consecutive--
	}
	if state.consecutive == 0 {
		delete(rl.backoff, domain)
	}
}

// WaitForBackoff waits out the remaining backoff period for the URL's
// domain. Returns immediately when the domain is not backed off.
func (rl *RateLimiter) WaitForBackoff(ctx context.Context, urlStr string) error {
	if rl == nil {
		return nil
	}

	domain := extractDomain(urlStr)

	rl.mu.Lock()
	state, ok := rl.backoff[domain]
	var remaining time.Duration
	if ok {
		remaining = state.current - time.Since(state.lastError)
	}
	rl.mu.Unlock()

	if !ok || remaining <= 0 {
		return nil
	}

	select {
	case <-time.After(remaining):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
