package content

import (
	"context"
	"log"
	"sort"
	"strings"
)

// knownCategories is the fixed vocabulary matched against discovery results.
// Matching is heuristic: a category is "present" when its name appears in a
// result title or channel name. The list seeds the no-query path and is
// never an authoritative taxonomy.
var knownCategories = []string{
	"programming",
	"mathematics",
	"science",
	"history",
	"language",
	"music",
	"art",
	"business",
	"technology",
	"design",
	"health",
	"finance",
}

// Channel is a channel observed in discovery results.
type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Playlist is a playlist surfaced by a discovery search.
type Playlist struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

// Categories returns the known categories that appear in the current
// discovery results, in canonical order. Best effort: an upstream failure
// yields an empty list.
func (a *Aggregator) Categories(ctx context.Context) []string {
	reqID := requestID()
	videos := a.runSearchChain(ctx, reqID, discoveryQuery)

	var matched []string
	for _, category := range knownCategories {
		for _, v := range videos {
			haystack := strings.ToLower(v.Title + " " + v.ChannelName)
			if strings.Contains(haystack, category) {
				matched = append(matched, category)
				break
			}
		}
	}
	return matched
}

// Channels returns the unique channels observed in discovery results, in
// order of first occurrence.
func (a *Aggregator) Channels(ctx context.Context) []Channel {
	reqID := requestID()
	videos := a.runSearchChain(ctx, reqID, discoveryQuery)

	seen := make(map[string]struct{}, len(videos))
	var channels []Channel
	for _, v := range videos {
		if v.ChannelID == "" {
			continue
		}
		if _, ok := seen[v.ChannelID]; ok {
			continue
		}
		seen[v.ChannelID] = struct{}{}
		channels = append(channels, Channel{ID: v.ChannelID, Name: v.ChannelName})
	}
	return channels
}

// Playlists returns playlists surfaced by a discovery search, deduplicated
// by ID and sorted by title for stable presentation. Only the structured
// client exposes playlist entries in search results, so there is no
// fallback here; failure yields an empty list.
func (a *Aggregator) Playlists(ctx context.Context) []Playlist {
	reqID := requestID()

	if a.inner == nil {
		return nil
	}

	attemptCtx, cancel := context.WithTimeout(ctx, a.attemptTimeout)
	refs, err := a.inner.SearchPlaylists(attemptCtx, discoveryQuery)
	cancel()
	if err != nil {
		log.Printf("mentora: [%s] playlist discovery: %v", reqID, err)
		return nil
	}

	seen := make(map[string]struct{}, len(refs))
	playlists := make([]Playlist, 0, len(refs))
	for _, ref := range refs {
		if ref.ID == "" {
			continue
		}
		if _, ok := seen[ref.ID]; ok {
			continue
		}
		seen[ref.ID] = struct{}{}
		playlists = append(playlists, Playlist{ID: ref.ID, Title: ref.Title, Owner: ref.Owner})
	}

	sort.Slice(playlists, func(i, j int) bool {
		return playlists[i].Title < playlists[j].Title
	})
	return playlists
}
