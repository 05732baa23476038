package youtube

import (
	"context"

	ythttp "github.com/PraiseTechzw/mentora-sub000/http"
	"github.com/PraiseTechzw/mentora-sub000/youtube/innertube"
)

// InnertubeSource adapts the Innertube client to the raw-item contract the
// aggregation layer consumes. It is the primary transport for both search
// and playlist retrieval.
type InnertubeSource struct {
	client *innertube.Client
}

// NewInnertubeSource creates an Innertube-backed source.
func NewInnertubeSource(httpClient *ythttp.Client, opts ...innertube.ClientOption) *InnertubeSource {
	return &InnertubeSource{client: innertube.NewClient(httpClient, opts...)}
}

// SearchItems runs a search query through the Innertube search endpoint.
func (s *InnertubeSource) SearchItems(ctx context.Context, query string) ([]RawItem, error) {
	resp, err := s.client.Search(ctx, query)
	if err != nil {
		return nil, &SourceError{Source: "innertube", Query: query, Err: err}
	}
	return rawItems(innertube.ExtractItems(resp)), nil
}

// PlaylistItems fetches a playlist through the Innertube browse endpoint.
func (s *InnertubeSource) PlaylistItems(ctx context.Context, playlistID string) ([]RawItem, error) {
	if playlistID == "" {
		return nil, &SourceError{Source: "innertube", Query: playlistID, Err: ErrInvalidID}
	}
	resp, err := s.client.BrowsePlaylist(ctx, playlistID)
	if err != nil {
		return nil, &SourceError{Source: "innertube", Query: playlistID, Err: err}
	}
	return rawItems(innertube.ExtractItems(resp)), nil
}

// SearchPlaylists runs a search and returns the playlist entries observed
// in the results. Used by discovery only.
func (s *InnertubeSource) SearchPlaylists(ctx context.Context, query string) ([]innertube.PlaylistRef, error) {
	resp, err := s.client.Search(ctx, query)
	if err != nil {
		return nil, &SourceError{Source: "innertube", Query: query, Err: err}
	}
	return innertube.ExtractPlaylists(resp), nil
}

func rawItems(items []innertube.Item) []RawItem {
	raw := make([]RawItem, 0, len(items))
	for _, item := range items {
		raw = append(raw, RawItemFromInnertube(item))
	}
	return raw
}
