package youtube

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/PraiseTechzw/mentora-sub000/retry"
)

const (
	playlistFeedURLTemplate = "https://www.youtube.com/feeds/videos.xml?playlist_id=%s"
	feedTimeout             = 12 * time.Second
)

// FeedClient fetches playlist contents from YouTube's public Atom
// syndication feeds. Feeds carry only the most recent entries and no
// duration, so this is a fallback transport for playlist retrieval, not a
// search surface.
type FeedClient struct {
	client      *http.Client
	RetryConfig *retry.Config
}

// NewFeedClient creates a new Atom feed client.
func NewFeedClient() *FeedClient {
	cfg := retry.DefaultConfig()
	return &FeedClient{
		client: &http.Client{
			Timeout: feedTimeout,
		},
		RetryConfig: &cfg,
	}
}

// NewFeedClientWithClient creates a feed client with a custom HTTP client.
func NewFeedClientWithClient(client *http.Client) *FeedClient {
	return &FeedClient{client: client}
}

// PlaylistItems fetches the entries of a playlist feed as raw items.
func (f *FeedClient) PlaylistItems(ctx context.Context, playlistID string) ([]RawItem, error) {
	if playlistID == "" {
		return nil, &SourceError{Source: "feed", Query: playlistID, Err: ErrInvalidID}
	}

	cfg := f.RetryConfig
	if cfg == nil {
		defaultCfg := retry.DefaultConfig()
		cfg = &defaultCfg
	}

	var items []RawItem
	err := retry.Do(ctx, *cfg, feedErrorClassifier, func(ctx context.Context) error {
		feedURL := fmt.Sprintf(playlistFeedURLTemplate, playlistID)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
		if err != nil {
			return &SourceError{Source: "feed", Query: playlistID, Err: err}
		}

		resp, err := f.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return &SourceError{Source: "feed", Query: playlistID, Err: ErrNetworkTimeout}
			}
			return &SourceError{Source: "feed", Query: playlistID, Err: err}
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return &SourceError{Source: "feed", Query: playlistID, Err: ErrPlaylistNotFound}
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			return &SourceError{Source: "feed", Query: playlistID, Err: ErrRateLimited}
		}
		if resp.StatusCode != http.StatusOK {
			return &SourceError{Source: "feed", Query: playlistID,
				Err: fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)}
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return &SourceError{Source: "feed", Query: playlistID, Err: err}
		}

		feed, err := parseAtomFeed(body)
		if err != nil {
			return &SourceError{Source: "feed", Query: playlistID, Err: err}
		}

		items = feedToRawItems(feed)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return items, nil
}

// atomFeed represents a YouTube playlist Atom feed.
type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Title   string      `xml:"title"`
	Author  atomAuthor  `xml:"author"`
	Entries []atomEntry `xml:"entry"`
}

type atomAuthor struct {
	Name string `xml:"name"`
	URI  string `xml:"uri"`
}

type atomEntry struct {
	ID          string        `xml:"id"`
	VideoID     string        `xml:"http://www.youtube.com/xml/schemas/2015 videoId"`
	ChannelID   string        `xml:"http://www.youtube.com/xml/schemas/2015 channelId"`
	Title       string        `xml:"title"`
	Author      atomAuthor    `xml:"author"`
	Published   time.Time     `xml:"published"`
	Updated     time.Time     `xml:"updated"`
	Description string        `xml:"group>description"`
	Thumbnail   atomThumbnail `xml:"group>thumbnail"`
	Community   atomCommunity `xml:"group>community"`
}

type atomThumbnail struct {
	URL    string `xml:"url,attr"`
	Width  int    `xml:"width,attr"`
	Height int    `xml:"height,attr"`
}

type atomCommunity struct {
	Views atomViews `xml:"http://search.yahoo.com/mrss/ statistics"`
}

type atomViews struct {
	Views int64 `xml:"views,attr"`
}

// parseAtomFeed parses YouTube's Atom XML feed.
func parseAtomFeed(data []byte) (*atomFeed, error) {
	var feed atomFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("parse atom feed: %w", err)
	}
	return &feed, nil
}

// feedToRawItems converts Atom entries to raw items. Entries without a
// video ID are dropped.
func feedToRawItems(feed *atomFeed) []RawItem {
	items := make([]RawItem, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		if entry.VideoID == "" {
			continue
		}

		channelName := entry.Author.Name
		if channelName == "" {
			channelName = feed.Author.Name
		}

		viewText := ""
		if entry.Community.Views.Views > 0 {
			viewText = strconv.FormatInt(entry.Community.Views.Views, 10)
		}

		items = append(items, RawItem{
			ID:          entry.VideoID,
			Title:       entry.Title,
			Description: entry.Description,
			ChannelName: channelName,
			ChannelID:   entry.ChannelID,
			ViewText:    viewText,
			Published:   entry.Published,
			Thumbnail:   entry.Thumbnail.URL,
			// Duration is not available in feeds
		})
	}
	return items
}

// feedErrorClassifier determines if a feed error is retryable.
func feedErrorClassifier(err error) bool {
	if err == nil {
		return false
	}

	var srcErr *SourceError
	if errors.As(err, &srcErr) {
		switch {
		case errors.Is(srcErr.Err, ErrPlaylistNotFound), errors.Is(srcErr.Err, ErrInvalidID):
			return false
		default:
			return true
		}
	}

	return true
}
