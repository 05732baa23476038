package youtube

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/PraiseTechzw/mentora-sub000/retry"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// DataAPISource searches through the official YouTube Data API v3. It is
// only constructed when an API key is configured; the aggregation layer
// then tries it ahead of the unauthenticated Innertube client. Search
// results from the API carry no duration or view count in the snippet, so
// those fields stay empty, an accepted tradeoff for a stable, documented
// surface.
type DataAPISource struct {
	service     *ytapi.Service
	RetryConfig *retry.Config

	mu             sync.Mutex
	quotaExhausted bool
	quotaResetAt   time.Time
}

// quotaRecheckInterval is how long a quota-exhausted source stays parked
// before it is tried again. The Data API quota resets daily.
const quotaRecheckInterval = 1 * time.Hour

// NewDataAPISource creates a Data API backed search source.
func NewDataAPISource(apiKey string) (*DataAPISource, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}

	service, err := ytapi.NewService(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	cfg := retry.DefaultConfig()
	return &DataAPISource{
		service:     service,
		RetryConfig: &cfg,
	}, nil
}

// SearchItems runs a video search against the Data API.
func (d *DataAPISource) SearchItems(ctx context.Context, query string) ([]RawItem, error) {
	d.mu.Lock()
	if d.quotaExhausted {
		if time.Now().Before(d.quotaResetAt) {
			d.mu.Unlock()
			return nil, &SourceError{Source: "dataapi", Query: query, Err: errQuotaExhausted}
		}
		d.quotaExhausted = false
	}
	d.mu.Unlock()

	cfg := d.RetryConfig
	if cfg == nil {
		defaultCfg := retry.DefaultConfig()
		cfg = &defaultCfg
	}

	var items []RawItem
	err := retry.Do(ctx, *cfg, dataAPIErrorClassifier, func(ctx context.Context) error {
		call := d.service.Search.List([]string{"snippet"}).
			Q(query).
			Type("video").
			MaxResults(25).
			Context(ctx)

		resp, err := call.Do()
		if err != nil {
			if isQuotaError(err) {
				d.markQuotaExhausted(query)
				return errQuotaExhausted
			}
			if ctx.Err() != nil {
				return ErrNetworkTimeout
			}
			return err
		}

		items = items[:0]
		for _, result := range resp.Items {
			if result.Id == nil || result.Id.VideoId == "" || result.Snippet == nil {
				continue
			}

			item := RawItem{
				ID:          result.Id.VideoId,
				Title:       result.Snippet.Title,
				Description: result.Snippet.Description,
				ChannelName: result.Snippet.ChannelTitle,
				ChannelID:   result.Snippet.ChannelId,
			}
			if t, err := time.Parse(time.RFC3339, result.Snippet.PublishedAt); err == nil {
				item.Published = t
			}
			if result.Snippet.Thumbnails != nil && result.Snippet.Thumbnails.High != nil {
				item.Thumbnail = result.Snippet.Thumbnails.High.Url
			}
			items = append(items, item)
		}
		return nil
	})

	if err != nil {
		return nil, &SourceError{Source: "dataapi", Query: query, Err: err}
	}

	return items, nil
}

func (d *DataAPISource) markQuotaExhausted(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.quotaExhausted {
		log.Printf("mentora: dataapi quota exhausted during %q, parking source", query)
	}
	d.quotaExhausted = true
	d.quotaResetAt = time.Now().Add(quotaRecheckInterval)
}

var errQuotaExhausted = errors.New("youtube: data api quota exhausted")

// isQuotaError reports whether the API error indicates quota exhaustion.
func isQuotaError(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Code != 403 {
		return false
	}
	for _, e := range apiErr.Errors {
		if e.Reason == "quotaExceeded" || e.Reason == "dailyLimitExceeded" || e.Reason == "rateLimitExceeded" {
			return true
		}
	}
	return false
}

// dataAPIErrorClassifier determines if a Data API error is retryable.
func dataAPIErrorClassifier(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, errQuotaExhausted) {
		return false
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code >= 500
	}

	return retry.IsRetryable(err)
}
