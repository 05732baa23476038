// Package youtube provides the canonical video record produced by the
// aggregation layer, the free-text extractors that normalize YouTube's
// metadata strings, and the feed/scrape transport clients.
package youtube

import (
	"errors"
	"time"
)

// SourceYouTube tags every record produced by this layer. The player side
// treats it as "embedded external player" content.
const SourceYouTube = "youtube"

const (
	thumbnailURLTemplate = "https://i.ytimg.com/vi/"
	thumbnailURLSuffix   = "/hqdefault.jpg"
	embedURLPrefix       = "https://www.youtube.com/embed/"
)

// Sentinel errors for transport operations.
var (
	ErrPlaylistNotFound = errors.New("youtube: playlist not found")
	ErrRateLimited      = errors.New("youtube: rate limited")
	ErrNetworkTimeout   = errors.New("youtube: network timeout")
	ErrInvalidID        = errors.New("youtube: invalid identifier")
)

// Video is the canonical record this layer hands to callers, regardless of
// which transport produced it. Every numeric/time field is either a valid
// formatted string or an empty string, never a null sentinel, so renderers
// never special-case absence.
type Video struct {
	// ID is the 11-character YouTube video ID, the dedup key.
	ID string `json:"id"`

	// Title and Description are free text; either may be empty when the
	// source transport didn't expose them.
	Title       string `json:"title"`
	Description string `json:"description"`

	// Thumbnail is always populated: when a transport doesn't carry one it
	// is derived from the ID via a fixed template.
	Thumbnail string `json:"thumbnail"`

	// Source is the provenance tag, always SourceYouTube.
	Source string `json:"source"`

	// VideoURL is the canonical embeddable URL derived from ID.
	VideoURL string `json:"videoUrl"`

	// Duration is a human-readable H:MM:SS or M:SS string, "" when unknown.
	Duration string `json:"duration"`

	// Views is an abbreviated count ("12.3K", "1.2M"), "" when unknown.
	Views string `json:"views"`

	// PublishedAt is an RFC 3339 timestamp. When the source only exposed
	// relative text ("2 weeks ago") this is an estimate, not authoritative.
	PublishedAt string `json:"publishedAt"`

	ChannelName string `json:"channelName"`
	ChannelID   string `json:"channelId"`

	// IsFree is true for every record this layer produces; it exists as a
	// filter hook for paid-source integration that never landed.
	IsFree bool `json:"isFree"`
}

// ThumbnailURL returns the deterministic thumbnail URL for a video ID.
func ThumbnailURL(id string) string {
	return thumbnailURLTemplate + id + thumbnailURLSuffix
}

// EmbedURL returns the canonical embeddable URL for a video ID.
func EmbedURL(id string) string {
	return embedURLPrefix + id
}

// RawItem is the loosely-populated output of a transport parser, before the
// extractors normalize it into a Video. Text fields hold whatever the
// upstream document carried, in whatever format it carried it.
type RawItem struct {
	ID          string
	Title       string
	Description string
	ChannelName string
	ChannelID   string

	// ViewText is view-count free text, e.g. "1,234,567 views".
	ViewText string
	// LengthText is duration text, e.g. "12:34" or "PT12M34S".
	LengthText string
	// PublishedText is relative publish text, e.g. "3 weeks ago".
	PublishedText string
	// Published is the absolute publish time when the transport exposed one
	// (feed entries do, scraped renderers don't). Takes priority over
	// PublishedText.
	Published time.Time

	Thumbnail string
}

// Video normalizes the raw item into a canonical record. It reports false
// when the item failed to yield an ID; such items are dropped during parsing
// per the record invariants.
func (r RawItem) Video() (Video, bool) {
	if r.ID == "" {
		return Video{}, false
	}

	thumbnail := r.Thumbnail
	if thumbnail == "" {
		thumbnail = ThumbnailURL(r.ID)
	}

	published := ""
	switch {
	case !r.Published.IsZero():
		published = r.Published.UTC().Format(time.RFC3339)
	case r.PublishedText != "":
		published = EstimatePublishDate(r.PublishedText)
	}

	return Video{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Thumbnail:   thumbnail,
		Source:      SourceYouTube,
		VideoURL:    EmbedURL(r.ID),
		Duration:    ParseDuration(r.LengthText),
		Views:       ParseViewCount(r.ViewText),
		PublishedAt: published,
		ChannelName: r.ChannelName,
		ChannelID:   r.ChannelID,
		IsFree:      true,
	}, true
}

// SourceError wraps transport errors with context about what failed.
// Use errors.As() to extract it:
//
//	var srcErr *youtube.SourceError
//	if errors.As(err, &srcErr) {
//		fmt.Printf("%s fetch of %q failed: %v\n", srcErr.Source, srcErr.Query, srcErr.Err)
//	}
type SourceError struct {
	// Source indicates which transport produced the error ("innertube",
	// "feed", "scrape", "dataapi").
	Source string
	// Query is the search query or playlist ID that was being fetched.
	Query string
	// Err is the underlying error.
	Err error
}

// Error returns a string representation of the transport error.
func (e *SourceError) Error() string {
	return "youtube: " + e.Source + " fetching " + e.Query + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for errors.Is() and errors.As().
func (e *SourceError) Unwrap() error { return e.Err }
