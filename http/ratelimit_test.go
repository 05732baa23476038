package http

import (
	"context"
	"testing"
	"time"
)

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/results?search_query=x", "www.youtube.com"},
		{"https://www.googleapis.com/youtube/v3/search", "www.googleapis.com"},
		{"https://example.com:8443/path", "example.com"},
		{"not a url", "unknown"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		if got := extractDomain(tt.url); got != tt.want {
			t.Errorf("extractDomain(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestRateLimiterWaitAllowsWithinRate(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{PageRPS: 1000, DataAPIRPS: 1000, FeedRPS: 1000})

	start := time.Now()
	if err := rl.Wait(context.Background(), "https://www.youtube.com/results"); err != nil {
		t.Fatalf("Wait() unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("first request waited %v", elapsed)
	}
}

func TestRateLimiterWaitHonorsContext(t *testing.T) {
	// Burst of 1 at a very low rate: the second request must block until
	// the context dies.
	rl := NewRateLimiter(RateLimiterConfig{PageRPS: 0.001, DataAPIRPS: 1, FeedRPS: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_ = rl.Wait(ctx, "https://www.youtube.com/results")
	err := rl.Wait(ctx, "https://www.youtube.com/results")
	if err == nil {
		t.Fatal("Wait() expected context error for second request")
	}
}

func TestRecordRateLimitErrorBackoffDoubles(t *testing.T) {
	rl := NewRateLimiter(DefaultRateLimiterConfig())
	url := "https://www.youtube.com/results"

	first := rl.RecordRateLimitError(url, 0)
	if first != initialBackoff {
		t.Errorf("first backoff = %v, want %v", first, initialBackoff)
	}

	second := rl.RecordRateLimitError(url, 0)
	if second != 2*initialBackoff {
		t.Errorf("second backoff = %v, want %v", second, 2*initialBackoff)
	}

	// A server-supplied Retry-After wins when longer than the computed value.
	third := rl.RecordRateLimitError(url, 30*time.Second)
	if third != 30*time.Second {
		t.Errorf("third backoff = %v, want 30s", third)
	}
}

func TestRecordRateLimitErrorCapsAtMax(t *testing.T) {
	rl := NewRateLimiter(DefaultRateLimiterConfig())
	url := "https://www.youtube.com/results"

	var backoff time.Duration
	for i := 0; i < 12; i++ {
		backoff = rl.RecordRateLimitError(url, 0)
	}
	if backoff != maxBackoff {
		t.Errorf("backoff after many errors = %v, want cap %v", backoff, maxBackoff)
	}
}

func TestRecordSuccessClearsBackoff(t *testing.T) {
	rl := NewRateLimiter(DefaultRateLimiterConfig())
	url := "https://www.youtube.com/results"

	rl.RecordRateLimitError(url, 0)
	rl.RecordSuccess(url)

	if _, ok := rl.backoff["www.youtube.com"]; ok {
		t.Error("backoff state not cleared after success")
	}
}

func TestWaitForBackoffNoState(t *testing.T) {
	rl := NewRateLimiter(DefaultRateLimiterConfig())

	start := time.Now()
	if err := rl.WaitForBackoff(context.Background(), "https://www.youtube.com/results"); err != nil {
		t.Fatalf("WaitForBackoff() unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("waited %v with no backoff recorded", elapsed)
	}
}

func TestWaitForBackoffHonorsContext(t *testing.T) {
	rl := NewRateLimiter(DefaultRateLimiterConfig())
	url := "https://www.youtube.com/results"

	rl.RecordRateLimitError(url, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := rl.WaitForBackoff(ctx, url); err == nil {
		t.Fatal("WaitForBackoff() expected context error during long backoff")
	}
}

func TestNilRateLimiterIsInert(t *testing.T) {
	var rl *RateLimiter

	if err := rl.Wait(context.Background(), "https://www.youtube.com/x"); err != nil {
		t.Errorf("nil Wait() error: %v", err)
	}
	if err := rl.WaitForBackoff(context.Background(), "https://www.youtube.com/x"); err != nil {
		t.Errorf("nil WaitForBackoff() error: %v", err)
	}
	rl.RecordSuccess("https://www.youtube.com/x")
	if got := rl.RecordRateLimitError("https://www.youtube.com/x", 0); got != initialBackoff {
		t.Errorf("nil RecordRateLimitError = %v, want %v", got, initialBackoff)
	}
}
