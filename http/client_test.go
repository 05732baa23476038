package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/PraiseTechzw/mentora-sub000/retry"
)

// scriptedTransport replays a fixed sequence of responses, then repeats the
// last one.
type scriptedTransport struct {
	responses []scriptedResponse
	calls     int
}

type scriptedResponse struct {
	statusCode int
	body       string
	header     http.Header
}

func (s *scriptedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	idx := s.calls
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	s.calls++

	r := s.responses[idx]
	header := r.header
	if header == nil {
		header = make(http.Header)
	}
	return &http.Response{
		StatusCode: r.statusCode,
		Status:     http.StatusText(r.statusCode),
		Body:       io.NopCloser(strings.NewReader(r.body)),
		Header:     header,
		Request:    req,
	}, nil
}

func newTestClient(transport *scriptedTransport, maxRetries int) *Client {
	cfg := DefaultConfig()
	cfg.Retry = retry.Config{
		MaxRetries:     maxRetries,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		Multiplier:     2.0,
	}
	cfg.RateLimiter = RateLimiterConfig{PageRPS: 1000, DataAPIRPS: 1000, FeedRPS: 1000}
	return NewWithBase(&http.Client{Transport: transport}, cfg)
}

func TestClientGetSuccess(t *testing.T) {
	transport := &scriptedTransport{responses: []scriptedResponse{
		{statusCode: http.StatusOK, body: "hello"},
	}}
	client := newTestClient(transport, 3)

	resp, err := client.Get(context.Background(), "https://www.youtube.com/results")
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d", resp.StatusCode)
	}
	if string(resp.Body) != "hello" {
		t.Errorf("Body = %q", resp.Body)
	}
	if transport.calls != 1 {
		t.Errorf("transport called %d times, want 1", transport.calls)
	}
}

func TestClientRetriesServerErrors(t *testing.T) {
	transport := &scriptedTransport{responses: []scriptedResponse{
		{statusCode: http.StatusInternalServerError},
		{statusCode: http.StatusBadGateway},
		{statusCode: http.StatusOK, body: "recovered"},
	}}
	client := newTestClient(transport, 3)

	resp, err := client.Get(context.Background(), "https://www.youtube.com/results")
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if string(resp.Body) != "recovered" {
		t.Errorf("Body = %q", resp.Body)
	}
	if transport.calls != 3 {
		t.Errorf("transport called %d times, want 3", transport.calls)
	}
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	transport := &scriptedTransport{responses: []scriptedResponse{
		{statusCode: http.StatusNotFound, body: "gone"},
	}}
	client := newTestClient(transport, 3)

	_, err := client.Get(context.Background(), "https://www.youtube.com/results")

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("Get() error = %T, want *HTTPError", err)
	}
	if httpErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d", httpErr.StatusCode)
	}
	if transport.calls != 1 {
		t.Errorf("transport called %d times, want 1", transport.calls)
	}
}

func TestClientRateLimitError(t *testing.T) {
	header := make(http.Header)
	header.Set("Retry-After", "120")
	transport := &scriptedTransport{responses: []scriptedResponse{
		{statusCode: http.StatusTooManyRequests, header: header},
	}}
	client := newTestClient(transport, 0)

	_, err := client.Get(context.Background(), "https://www.youtube.com/results")

	var rlErr *RateLimitError
	if !errors.As(err, &rlErr) {
		t.Fatalf("Get() error = %T, want *RateLimitError", err)
	}
	if rlErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d", rlErr.StatusCode)
	}
	if rlErr.RetryAfter < 120*time.Second {
		t.Errorf("RetryAfter = %v, want at least 120s", rlErr.RetryAfter)
	}
	if rlErr.IsBotDetection {
		t.Error("429 flagged as bot detection")
	}
}

func TestClientFlagsBotDetection(t *testing.T) {
	transport := &scriptedTransport{responses: []scriptedResponse{
		{statusCode: http.StatusForbidden},
	}}
	client := newTestClient(transport, 0)

	_, err := client.Get(context.Background(), "https://www.youtube.com/results")

	var rlErr *RateLimitError
	if !errors.As(err, &rlErr) {
		t.Fatalf("Get() error = %T, want *RateLimitError", err)
	}
	if !rlErr.IsBotDetection {
		t.Error("403 not flagged as bot detection")
	}
}

func TestParseRetryAfter(t *testing.T) {
	header := make(http.Header)
	if got := parseRetryAfter(header); got != 0 {
		t.Errorf("missing header = %v, want 0", got)
	}

	header.Set("Retry-After", "30")
	if got := parseRetryAfter(header); got != 30*time.Second {
		t.Errorf("seconds form = %v, want 30s", got)
	}

	header.Set("Retry-After", time.Now().Add(time.Minute).UTC().Format(http.TimeFormat))
	got := parseRetryAfter(header)
	if got < 50*time.Second || got > 70*time.Second {
		t.Errorf("HTTP-date form = %v, want ~1m", got)
	}
}
