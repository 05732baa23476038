// Package mentora aggregates educational videos from YouTube into a single
// normalized feed.
//
// It layers three independent transports (the structured Innertube API, the
// public Atom syndication feeds, and an HTML page scraper) behind a
// fallback chain, so the feed keeps working when any one surface shifts or
// rejects the client.
//
// # Overview
//
// mentora provides high-level convenience functions for the most common
// operations:
//
//   - Search: Find educational videos for a query or category
//   - Trending: Fetch currently popular educational videos
//   - Recommended: Build a feed from a user's preference terms
//   - PlaylistVideos: Fetch the videos of a playlist
//
// All of them return a possibly-empty slice and no error: upstream failures
// are logged and swallowed so a consuming UI never has to handle a transient
// transport failure. An empty result can mean "no matches" or "everything
// upstream failed"; the log tells you which.
//
// # Quick Start
//
// Search for videos:
//
//	ctx := context.Background()
//	videos := mentora.Search(ctx, "linear algebra")
//	for _, v := range videos {
//		fmt.Println(v.Title, v.Duration, v.Views)
//	}
//
// Fetch a playlist:
//
//	videos := mentora.PlaylistVideos(ctx, "PLxxxxxxxx")
//
// # Configuration
//
// mentora uses a configuration system that loads settings from multiple
// sources:
//
//  1. Environment variables (highest priority)
//  2. Config file (mentora.json or ~/.config/mentora/mentora.json)
//  3. Default values (lowest priority)
//
// Environment variables:
//
//   - MENTORA_HTTP_TIMEOUT: Timeout for individual HTTP requests
//   - MENTORA_STRATEGY_TIMEOUT: Timeout for one transport attempt
//   - MENTORA_MAX_RETRIES: Maximum retry attempts
//   - MENTORA_INITIAL_BACKOFF: Initial retry backoff duration
//   - MENTORA_MAX_BACKOFF: Maximum retry backoff duration
//   - MENTORA_BACKOFF_MULTIPLIER: Exponential backoff multiplier
//   - MENTORA_DATA_API_KEY: Enables the official Data API search source
//   - MENTORA_USER_AGENT: Overrides the user agent sent with page requests
//   - MENTORA_LANGUAGE: Interface language sent to the API (hl)
//   - MENTORA_REGION: Region sent to the API (gl)
//   - MENTORA_PAGE_RPS: Request rate limit against youtube.com
//   - MENTORA_DATA_API_RPS: Request rate limit against the Data API
//   - MENTORA_FEED_RPS: Request rate limit against syndication feeds
//
// # Error Handling
//
// The transport packages return errors that implement standard Go error
// handling; only the aggregation layer swallows them.
//
// Checking for sentinel errors:
//
//	if errors.Is(err, mentora.ErrPlaylistNotFound) {
//		fmt.Println("Playlist not found")
//	}
//
// Extracting wrapped error details:
//
//	var srcErr *mentora.SourceError
//	if errors.As(err, &srcErr) {
//		fmt.Printf("%s failed for %s: %v\n", srcErr.Source, srcErr.Query, srcErr.Err)
//	}
//
// # Advanced Usage
//
// For more control, use the sub-packages directly:
//
//   - content: Aggregation orchestrator and discovery helpers
//   - youtube: Transport clients, parsers, and extractor utilities
//   - config: Configuration management
//   - retry: Exponential backoff retry logic
//
// Example using the content package directly:
//
//	cfg, _ := config.Load()
//	agg := content.New(cfg)
//	defer agg.Close()
//	videos := agg.Aggregated(ctx, "calculus", "", true)
package mentora
