// Package content implements the aggregation orchestrator: it coordinates
// search, trending, recommended, and playlist queries across the available
// transports, then deduplicates, filters, and sorts the results into the
// canonical video list handed to callers.
//
// Every public operation catches all internal errors and returns a possibly
// empty slice. An empty result is deliberately ambiguous between "truly no
// results" and "upstream unavailable"; failures are observable only through
// logging.
package content

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/PraiseTechzw/mentora-sub000/config"
	ythttp "github.com/PraiseTechzw/mentora-sub000/http"
	"github.com/PraiseTechzw/mentora-sub000/retry"
	"github.com/PraiseTechzw/mentora-sub000/youtube"
	"github.com/PraiseTechzw/mentora-sub000/youtube/innertube"
)

const (
	// searchBiasTerm is appended to every caller query to bias results
	// toward educational content.
	searchBiasTerm = "tutorial"

	// discoveryQuery is the general path when no query or category is given.
	discoveryQuery = "educational tutorials for beginners"

	// trendingQuery biases toward currently popular educational content.
	trendingQuery = "trending educational tutorials this week"

	// categoryAll is the sentinel category meaning "no category filter".
	categoryAll = "all"
)

// SearchStrategy is one transport's way of answering a search query.
// Strategies are tried in order until one yields a non-empty result.
type SearchStrategy struct {
	Name  string
	Fetch func(ctx context.Context, query string) ([]youtube.RawItem, error)
}

// PlaylistStrategy is one transport's way of fetching a playlist.
type PlaylistStrategy struct {
	Name  string
	Fetch func(ctx context.Context, playlistID string) ([]youtube.RawItem, error)
}

// Aggregator coordinates the transport fallback chains. It holds no
// per-call state: every operation builds its result from scratch and
// retains no reference afterwards.
type Aggregator struct {
	searchChain    []SearchStrategy
	playlistChain  []PlaylistStrategy
	attemptTimeout time.Duration

	httpClient *ythttp.Client
	inner      *youtube.InnertubeSource
}

// New creates an aggregator wired with the full transport stack: the Data
// API source when a key is configured, then Innertube, then the feed and
// page-scrape fallbacks.
func New(cfg *config.Config) *Aggregator {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	retryCfg := retry.Config{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff,
		MaxBackoff:     cfg.MaxBackoff,
		Multiplier:     cfg.BackoffMultiplier,
		JitterFraction: 0.2,
	}

	httpCfg := ythttp.DefaultConfig()
	httpCfg.Timeout = cfg.HTTPTimeout
	httpCfg.Retry = retryCfg
	if cfg.UserAgent != "" {
		httpCfg.UserAgent = cfg.UserAgent
	}
	httpCfg.RateLimiter = ythttp.RateLimiterConfig{
		PageRPS:    cfg.PageRPS,
		DataAPIRPS: cfg.DataAPIRPS,
		FeedRPS:    cfg.FeedRPS,
	}
	httpClient := ythttp.New(httpCfg)

	inner := youtube.NewInnertubeSource(httpClient,
		innertube.WithRetryConfig(retryCfg),
		innertube.WithLocale(cfg.Language, cfg.Region),
	)
	feed := youtube.NewFeedClient()
	scraper := youtube.NewScraper(httpClient)

	a := &Aggregator{
		attemptTimeout: cfg.StrategyTimeout,
		httpClient:     httpClient,
		inner:          inner,
	}

	if cfg.DataAPIKey != "" {
		if api, err := youtube.NewDataAPISource(cfg.DataAPIKey); err != nil {
			log.Printf("mentora: data api source unavailable: %v", err)
		} else {
			a.searchChain = append(a.searchChain, SearchStrategy{Name: "dataapi", Fetch: api.SearchItems})
		}
	}
	a.searchChain = append(a.searchChain,
		SearchStrategy{Name: "innertube", Fetch: inner.SearchItems},
		SearchStrategy{Name: "scrape", Fetch: scraper.SearchItems},
	)

	a.playlistChain = []PlaylistStrategy{
		{Name: "innertube", Fetch: inner.PlaylistItems},
		{Name: "feed", Fetch: feed.PlaylistItems},
		{Name: "scrape", Fetch: scraper.PlaylistItems},
	}

	return a
}

// NewWithChains creates an aggregator with explicit strategy chains.
// Intended for tests.
func NewWithChains(search []SearchStrategy, playlist []PlaylistStrategy, attemptTimeout time.Duration) *Aggregator {
	if attemptTimeout <= 0 {
		attemptTimeout = 15 * time.Second
	}
	return &Aggregator{
		searchChain:    search,
		playlistChain:  playlist,
		attemptTimeout: attemptTimeout,
	}
}

// Close releases transport resources.
func (a *Aggregator) Close() error {
	if a.httpClient != nil {
		return a.httpClient.Close()
	}
	return nil
}

// Aggregated returns educational videos for an optional search query and/or
// category. A query takes priority over a category; with neither, the
// general discovery path is used. Results are deduplicated, filtered, and
// sorted newest first.
func (a *Aggregator) Aggregated(ctx context.Context, query, category string, freeOnly bool) []youtube.Video {
	reqID := requestID()

	q := discoveryQuery
	switch {
	case strings.TrimSpace(query) != "":
		q = strings.TrimSpace(query) + " " + searchBiasTerm
	case category != "" && !strings.EqualFold(category, categoryAll):
		q = category + " " + searchBiasTerm
	}

	videos := a.runSearchChain(ctx, reqID, q)
	videos = dedupe(videos)
	videos = filterFree(videos, freeOnly)
	sortByPublishedDesc(videos)
	return videos
}

// Trending returns currently popular educational videos, sorted by view
// count descending. Ties keep their prior relative order.
func (a *Aggregator) Trending(ctx context.Context, freeOnly bool) []youtube.Video {
	reqID := requestID()

	videos := a.runSearchChain(ctx, reqID, trendingQuery)
	videos = dedupe(videos)
	videos = filterFree(videos, freeOnly)
	sortByViewsDesc(videos)
	return videos
}

// Recommended returns videos matching the user's preference terms. One
// search runs per preference, concurrently; a failed preference search
// never prevents the others from contributing. With no preferences the
// general discovery path is used.
func (a *Aggregator) Recommended(ctx context.Context, preferences []string, freeOnly bool) []youtube.Video {
	if len(preferences) == 0 {
		return a.Aggregated(ctx, "", "", freeOnly)
	}

	reqID := requestID()

	// Fan out one search per preference and wait for all to settle.
	// runSearchChain never fails, so every slot holds a (possibly empty)
	// result regardless of what happened upstream.
	results := make([][]youtube.Video, len(preferences))
	var wg sync.WaitGroup
	for i, pref := range preferences {
		wg.Add(1)
		go func(i int, pref string) {
			defer wg.Done()
			results[i] = a.runSearchChain(ctx, reqID, strings.TrimSpace(pref)+" "+searchBiasTerm)
		}(i, pref)
	}
	wg.Wait()

	// Merge in preference order; first occurrence of an ID wins.
	var merged []youtube.Video
	for _, batch := range results {
		merged = append(merged, batch...)
	}
	merged = dedupe(merged)
	merged = filterFree(merged, freeOnly)
	sortByPublishedDesc(merged)
	return merged
}

// PlaylistVideos returns the videos of a playlist, preserving playlist
// order, via the structured browse → feed → page scrape fallback chain.
func (a *Aggregator) PlaylistVideos(ctx context.Context, playlistID string) []youtube.Video {
	reqID := requestID()

	for _, s := range a.playlistChain {
		attemptCtx, cancel := context.WithTimeout(ctx, a.attemptTimeout)
		items, err := s.Fetch(attemptCtx, playlistID)
		cancel()

		if err != nil {
			log.Printf("mentora: [%s] %s playlist %q: %v", reqID, s.Name, playlistID, err)
			continue
		}

		videos := dedupe(normalize(items))
		if len(videos) > 0 {
			log.Printf("mentora: [%s] %s playlist %q: %d videos", reqID, s.Name, playlistID, len(videos))
			return videos
		}
	}

	log.Printf("mentora: [%s] playlist %q: all transports empty", reqID, playlistID)
	return nil
}

// runSearchChain tries each search strategy in order until one yields a
// non-empty result. Each attempt is bounded by its own timeout so a hung
// transport cannot stall the whole chain. Failures are logged and swallowed.
func (a *Aggregator) runSearchChain(ctx context.Context, reqID, query string) []youtube.Video {
	for _, s := range a.searchChain {
		attemptCtx, cancel := context.WithTimeout(ctx, a.attemptTimeout)
		items, err := s.Fetch(attemptCtx, query)
		cancel()

		if err != nil {
			log.Printf("mentora: [%s] %s search %q: %v", reqID, s.Name, query, err)
			continue
		}

		videos := normalize(items)
		if len(videos) > 0 {
			log.Printf("mentora: [%s] %s search %q: %d videos", reqID, s.Name, query, len(videos))
			return videos
		}
	}

	log.Printf("mentora: [%s] search %q: all transports empty", reqID, query)
	return nil
}

// normalize converts raw items to canonical records, dropping any that
// failed to yield an ID.
func normalize(items []youtube.RawItem) []youtube.Video {
	videos := make([]youtube.Video, 0, len(items))
	for _, item := range items {
		if v, ok := item.Video(); ok {
			videos = append(videos, v)
		}
	}
	return videos
}

// dedupe removes records sharing an ID, keeping the first occurrence.
func dedupe(videos []youtube.Video) []youtube.Video {
	if len(videos) == 0 {
		return videos
	}
	seen := make(map[string]struct{}, len(videos))
	out := videos[:0]
	for _, v := range videos {
		if _, ok := seen[v.ID]; ok {
			continue
		}
		seen[v.ID] = struct{}{}
		out = append(out, v)
	}
	return out
}

// filterFree keeps only free records when freeOnly is set. Every record
// this layer produces is currently free; the filter is the extensibility
// hook for paid sources.
func filterFree(videos []youtube.Video, freeOnly bool) []youtube.Video {
	if !freeOnly {
		return videos
	}
	out := videos[:0]
	for _, v := range videos {
		if v.IsFree {
			out = append(out, v)
		}
	}
	return out
}

// sortByPublishedDesc sorts newest first. Records whose PublishedAt does
// not parse compare equal, so invalid input never reorders anything.
func sortByPublishedDesc(videos []youtube.Video) {
	sort.SliceStable(videos, func(i, j int) bool {
		ti, oki := parsePublishedAt(videos[i].PublishedAt)
		tj, okj := parsePublishedAt(videos[j].PublishedAt)
		if !oki || !okj {
			return false
		}
		return ti.After(tj)
	})
}

// parsePublishedAt accepts both full RFC 3339 timestamps and the date-only
// ISO-8601 form some upstream records carry.
func parsePublishedAt(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// sortByViewsDesc sorts by numeric view count descending. The abbreviated
// display text is parsed back to an integer for comparison only.
func sortByViewsDesc(videos []youtube.Video) {
	sort.SliceStable(videos, func(i, j int) bool {
		return youtube.ParseCompactCount(videos[i].Views) > youtube.ParseCompactCount(videos[j].Views)
	})
}

// requestID returns a short correlation ID for tying together the log lines
// of one aggregation call.
func requestID() string {
	return uuid.NewString()[:8]
}
