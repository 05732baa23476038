package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strconv"

	ythttp "github.com/PraiseTechzw/mentora-sub000/http"
	"github.com/PraiseTechzw/mentora-sub000/youtube/innertube"
)

const (
	searchPageURLTemplate   = "https://www.youtube.com/results?search_query=%s"
	playlistPageURLTemplate = "https://www.youtube.com/playlist?list=%s"
)

var (
	// initialDataPattern locates the ytInitialData assignment embedded in a
	// script tag of every results/playlist page.
	initialDataPattern = regexp.MustCompile(`(?s)var ytInitialData\s*=\s*(\{.*?\})\s*;\s*</script>`)

	// videoIDPattern is the last-resort sweep for video IDs when the
	// embedded JSON cannot be decoded.
	videoIDPattern = regexp.MustCompile(`"videoId"\s*:\s*"([0-9A-Za-z_-]{11})"`)

	// hexEscapePattern matches \xNN byte escapes, which appear in the blob
	// when YouTube serves it through certain server-side renderings.
	hexEscapePattern = regexp.MustCompile(`\\x([0-9a-fA-F]{2})`)
)

// Scraper fetches public YouTube HTML pages and recovers video items from
// the JSON blob embedded in them. It is the last transport in the fallback
// chain: slower and more fragile than the structured API, but it works when
// the API surface shifts or rejects the client.
type Scraper struct {
	client *ythttp.Client
}

// NewScraper creates a new page scraper on top of the shared HTTP client.
func NewScraper(client *ythttp.Client) *Scraper {
	return &Scraper{client: client}
}

// SearchItems scrapes the public results page for a query.
func (s *Scraper) SearchItems(ctx context.Context, query string) ([]RawItem, error) {
	pageURL := fmt.Sprintf(searchPageURLTemplate, url.QueryEscape(query))
	return s.pageItems(ctx, "scrape", query, pageURL)
}

// PlaylistItems scrapes the public playlist page.
func (s *Scraper) PlaylistItems(ctx context.Context, playlistID string) ([]RawItem, error) {
	if playlistID == "" {
		return nil, &SourceError{Source: "scrape", Query: playlistID, Err: ErrInvalidID}
	}
	pageURL := fmt.Sprintf(playlistPageURLTemplate, url.QueryEscape(playlistID))
	return s.pageItems(ctx, "scrape", playlistID, pageURL)
}

func (s *Scraper) pageItems(ctx context.Context, source, query, pageURL string) ([]RawItem, error) {
	resp, err := s.client.Get(ctx, pageURL)
	if err != nil {
		return nil, &SourceError{Source: source, Query: query, Err: err}
	}

	m := initialDataPattern.FindSubmatch(resp.Body)
	if m == nil {
		// No embedded blob at all; sweep the page for bare IDs.
		return sweepVideoIDs(resp.Body), nil
	}

	blob := unescapeHex(m[1])

	var decoded innertube.Response
	if err := json.Unmarshal(blob, &decoded); err != nil {
		// Malformed blob: degrade to the ID sweep rather than failing the
		// transport. The resulting records carry no metadata beyond the ID.
		log.Printf("mentora: scrape of %q: initial data decode failed, sweeping IDs: %v", query, err)
		return sweepVideoIDs(resp.Body), nil
	}

	items := innertube.ExtractItems(&decoded)
	raw := make([]RawItem, 0, len(items))
	for _, item := range items {
		raw = append(raw, RawItemFromInnertube(item))
	}
	return raw, nil
}

// unescapeHex replaces \xNN byte escapes with the bytes they encode,
// leaving everything else untouched.
func unescapeHex(blob []byte) []byte {
	return hexEscapePattern.ReplaceAllFunc(blob, func(match []byte) []byte {
		n, err := strconv.ParseUint(string(match[2:]), 16, 8)
		if err != nil {
			return match
		}
		return []byte{byte(n)}
	})
}

// sweepVideoIDs extracts unique video IDs from raw page bytes, in order of
// first occurrence, yielding items with no metadata beyond the ID.
func sweepVideoIDs(body []byte) []RawItem {
	matches := videoIDPattern.FindAllSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	var items []RawItem
	for _, m := range matches {
		id := string(m[1])
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		items = append(items, RawItem{ID: id})
	}
	return items
}

// RawItemFromInnertube projects an innertube item into a raw item.
func RawItemFromInnertube(item innertube.Item) RawItem {
	return RawItem{
		ID:            item.VideoID,
		Title:         item.Title,
		Description:   item.Description,
		ChannelName:   item.ChannelName,
		ChannelID:     item.ChannelID,
		ViewText:      item.ViewCountText,
		LengthText:    item.LengthText,
		PublishedText: item.PublishedTimeText,
		Thumbnail:     item.Thumbnail,
	}
}
