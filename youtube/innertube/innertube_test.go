package innertube

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	ythttp "github.com/PraiseTechzw/mentora-sub000/http"
	"github.com/PraiseTechzw/mentora-sub000/retry"
)

// capturingTransport records the last request and returns a canned body.
type capturingTransport struct {
	lastURL  string
	lastBody []byte
	respBody string
}

func (c *capturingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.lastURL = req.URL.String()
	if req.Body != nil {
		c.lastBody, _ = io.ReadAll(req.Body)
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(c.respBody)),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

func newTestInnertubeClient(transport *capturingTransport) *Client {
	noRetry := retry.Config{MaxRetries: 0, InitialBackoff: time.Millisecond, MaxBackoff: time.Millisecond, Multiplier: 2}
	cfg := ythttp.DefaultConfig()
	cfg.Retry = noRetry
	cfg.RateLimiter = ythttp.RateLimiterConfig{PageRPS: 1000, DataAPIRPS: 1000, FeedRPS: 1000}
	httpClient := ythttp.NewWithBase(&http.Client{Transport: transport}, cfg)
	return NewClient(httpClient, WithLocale("de", "DE"), WithRetryConfig(noRetry))
}

func TestSearchRequestEnvelope(t *testing.T) {
	transport := &capturingTransport{respBody: sampleSearchResponse}
	client := newTestInnertubeClient(transport)

	resp, err := client.Search(context.Background(), "algebra")
	if err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}
	if resp == nil || resp.Contents == nil {
		t.Fatal("Search() returned undecoded response")
	}

	if !strings.Contains(transport.lastURL, "/youtubei/v1/search") {
		t.Errorf("request URL = %q", transport.lastURL)
	}
	if !strings.Contains(transport.lastURL, "key=") {
		t.Errorf("request URL missing API key: %q", transport.lastURL)
	}

	var sent Request
	if err := json.Unmarshal(transport.lastBody, &sent); err != nil {
		t.Fatalf("decode sent body: %v", err)
	}
	if sent.Query != "algebra" {
		t.Errorf("query = %q", sent.Query)
	}
	if sent.Context.Client.ClientName != "WEB" {
		t.Errorf("client name = %q", sent.Context.Client.ClientName)
	}
	if sent.Context.Client.ClientVersion == "" {
		t.Error("client version missing")
	}
	if sent.Context.Client.HL != "de" || sent.Context.Client.GL != "DE" {
		t.Errorf("locale = %s/%s", sent.Context.Client.HL, sent.Context.Client.GL)
	}
}

func TestBrowsePlaylistPrefixesID(t *testing.T) {
	transport := &capturingTransport{respBody: sampleBrowseResponse}
	client := newTestInnertubeClient(transport)

	if _, err := client.BrowsePlaylist(context.Background(), "PLabc"); err != nil {
		t.Fatalf("BrowsePlaylist() unexpected error: %v", err)
	}

	if !strings.Contains(transport.lastURL, "/youtubei/v1/browse") {
		t.Errorf("request URL = %q", transport.lastURL)
	}

	var sent Request
	if err := json.Unmarshal(transport.lastBody, &sent); err != nil {
		t.Fatalf("decode sent body: %v", err)
	}
	if sent.BrowseID != "VLPLabc" {
		t.Errorf("browseId = %q, want VL-prefixed", sent.BrowseID)
	}
	if sent.Query != "" {
		t.Errorf("browse request carries a query: %q", sent.Query)
	}
}

func TestPostRejectsMalformedResponse(t *testing.T) {
	transport := &capturingTransport{respBody: "<html>not json</html>"}
	client := newTestInnertubeClient(transport)

	if _, err := client.Search(context.Background(), "algebra"); err == nil {
		t.Fatal("Search() expected decode error")
	}
}
