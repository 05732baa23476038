package mentora

import (
	"context"
	"log"
	"sync"

	"github.com/PraiseTechzw/mentora-sub000/config"
	"github.com/PraiseTechzw/mentora-sub000/content"
	"github.com/PraiseTechzw/mentora-sub000/youtube"
)

// Video is the canonical normalized video record.
type Video = youtube.Video

var (
	defaultOnce sync.Once
	defaultAgg  *content.Aggregator
)

// defaultAggregator lazily builds the shared aggregator from the loaded
// configuration. A config load failure falls back to defaults: the
// convenience surface never fails to come up.
func defaultAggregator() *content.Aggregator {
	defaultOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			log.Printf("mentora: config load failed, using defaults: %v", err)
			cfg = config.DefaultConfig()
		}
		defaultAgg = content.New(cfg)
	})
	return defaultAgg
}

// Search returns educational videos matching the query, newest first.
// An empty query falls back to the general discovery feed.
func Search(ctx context.Context, query string) []Video {
	return defaultAggregator().Aggregated(ctx, query, "", true)
}

// SearchCategory returns educational videos for a category, newest first.
// The category "all" (or empty) falls back to the general discovery feed.
func SearchCategory(ctx context.Context, category string) []Video {
	return defaultAggregator().Aggregated(ctx, "", category, true)
}

// Trending returns currently popular educational videos, most viewed first.
func Trending(ctx context.Context) []Video {
	return defaultAggregator().Trending(ctx, true)
}

// Recommended builds a feed from the user's preference terms, newest first.
// With no preferences it returns the general discovery feed.
func Recommended(ctx context.Context, preferences []string) []Video {
	return defaultAggregator().Recommended(ctx, preferences, true)
}

// PlaylistVideos returns the videos of a playlist in playlist order.
func PlaylistVideos(ctx context.Context, playlistID string) []Video {
	return defaultAggregator().PlaylistVideos(ctx, playlistID)
}
