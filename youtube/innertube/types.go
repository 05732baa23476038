package innertube

import "strings"

// The types below mirror the fragments of Innertube's response documents
// this layer actually reads. Every field is optional: the same logical
// content has been observed under both "rich grid" and "section list"
// renderings, and items appear as videoRenderer, gridVideoRenderer, or
// playlistVideoRenderer depending on the surface. Decoding tolerates any of
// them being absent.

// Response is the top-level document returned by the search and browse
// endpoints, and also the shape of the ytInitialData blob embedded in
// public HTML pages.
type Response struct {
	Contents *Contents        `json:"contents,omitempty"`
	Header   *Header          `json:"header,omitempty"`
	Metadata *PlaylistHeading `json:"metadata,omitempty"`
}

// Contents holds the main content structure for either endpoint.
type Contents struct {
	TwoColumnSearchResultsRenderer *TwoColumnSearchResultsRenderer `json:"twoColumnSearchResultsRenderer,omitempty"`
	TwoColumnBrowseResultsRenderer *TwoColumnBrowseResultsRenderer `json:"twoColumnBrowseResultsRenderer,omitempty"`
}

// TwoColumnSearchResultsRenderer is the search results layout.
type TwoColumnSearchResultsRenderer struct {
	PrimaryContents *PrimaryContents `json:"primaryContents,omitempty"`
}

// PrimaryContents holds the search result list under one of two renderings.
type PrimaryContents struct {
	SectionListRenderer *SectionListRenderer `json:"sectionListRenderer,omitempty"`
	RichGridRenderer    *RichGridRenderer    `json:"richGridRenderer,omitempty"`
}

// TwoColumnBrowseResultsRenderer is the browse (playlist/channel) layout.
type TwoColumnBrowseResultsRenderer struct {
	Tabs []Tab `json:"tabs,omitempty"`
}

// Tab represents a browse tab.
type Tab struct {
	TabRenderer *TabRenderer `json:"tabRenderer,omitempty"`
}

// TabRenderer contains tab content.
type TabRenderer struct {
	Title    string      `json:"title,omitempty"`
	Selected bool        `json:"selected,omitempty"`
	Content  *TabContent `json:"content,omitempty"`
}

// TabContent holds the content within a tab.
type TabContent struct {
	SectionListRenderer *SectionListRenderer `json:"sectionListRenderer,omitempty"`
	RichGridRenderer    *RichGridRenderer    `json:"richGridRenderer,omitempty"`
}

// SectionListRenderer displays content in sections.
type SectionListRenderer struct {
	Contents []SectionContent `json:"contents,omitempty"`
}

// SectionContent holds section items.
type SectionContent struct {
	ItemSectionRenderer *ItemSectionRenderer `json:"itemSectionRenderer,omitempty"`
}

// ItemSectionRenderer renders a section of items.
type ItemSectionRenderer struct {
	Contents []ItemContent `json:"contents,omitempty"`
}

// ItemContent can be various content kinds; exactly one renderer is set.
type ItemContent struct {
	VideoRenderer             *VideoRenderer             `json:"videoRenderer,omitempty"`
	GridVideoRenderer         *GridVideoRenderer         `json:"gridVideoRenderer,omitempty"`
	PlaylistVideoRenderer     *PlaylistVideoRenderer     `json:"playlistVideoRenderer,omitempty"`
	PlaylistVideoListRenderer *PlaylistVideoListRenderer `json:"playlistVideoListRenderer,omitempty"`
	PlaylistRenderer          *PlaylistRenderer          `json:"playlistRenderer,omitempty"`
}

// PlaylistVideoListRenderer wraps the item list of a playlist browse page.
type PlaylistVideoListRenderer struct {
	Contents []ItemContent `json:"contents,omitempty"`
}

// RichGridRenderer displays items in a grid layout.
type RichGridRenderer struct {
	Contents []RichGridContent `json:"contents,omitempty"`
}

// RichGridContent holds grid items.
type RichGridContent struct {
	RichItemRenderer *RichItemRenderer `json:"richItemRenderer,omitempty"`
}

// RichItemRenderer wraps video content in the grid.
type RichItemRenderer struct {
	Content *RichItemContent `json:"content,omitempty"`
}

// RichItemContent holds the actual video renderer.
type RichItemContent struct {
	VideoRenderer *VideoRenderer `json:"videoRenderer,omitempty"`
}

// VideoRenderer contains full video metadata as shown in search results.
type VideoRenderer struct {
	VideoID            string         `json:"videoId,omitempty"`
	Title              *TextRuns      `json:"title,omitempty"`
	DescriptionSnippet *TextRuns      `json:"descriptionSnippet,omitempty"`
	Thumbnail          *ThumbnailList `json:"thumbnail,omitempty"`
	PublishedTimeText  *SimpleText    `json:"publishedTimeText,omitempty"`
	LengthText         *SimpleText    `json:"lengthText,omitempty"`
	ViewCountText      *SimpleText    `json:"viewCountText,omitempty"`
	OwnerText          *TextRuns      `json:"ownerText,omitempty"`
	LongBylineText     *TextRuns      `json:"longBylineText,omitempty"`
}

// GridVideoRenderer is the slimmer grid-layout variant of VideoRenderer.
type GridVideoRenderer struct {
	VideoID           string         `json:"videoId,omitempty"`
	Title             *TextRuns      `json:"title,omitempty"`
	Thumbnail         *ThumbnailList `json:"thumbnail,omitempty"`
	PublishedTimeText *SimpleText    `json:"publishedTimeText,omitempty"`
	ViewCountText     *SimpleText    `json:"viewCountText,omitempty"`
	ShortBylineText   *TextRuns      `json:"shortBylineText,omitempty"`
}

// PlaylistVideoRenderer represents a video inside a playlist listing.
type PlaylistVideoRenderer struct {
	VideoID         string         `json:"videoId,omitempty"`
	Title           *TextRuns      `json:"title,omitempty"`
	Thumbnail       *ThumbnailList `json:"thumbnail,omitempty"`
	LengthText      *SimpleText    `json:"lengthText,omitempty"`
	ShortBylineText *TextRuns      `json:"shortBylineText,omitempty"`
	Index           *SimpleText    `json:"index,omitempty"`
}

// PlaylistRenderer represents a playlist item in search results.
type PlaylistRenderer struct {
	PlaylistID      string      `json:"playlistId,omitempty"`
	Title           *SimpleText `json:"title,omitempty"`
	VideoCount      string      `json:"videoCount,omitempty"`
	ShortBylineText *TextRuns   `json:"shortBylineText,omitempty"`
}

// TextRuns contains text as either a simple string or formatted runs.
type TextRuns struct {
	Runs       []TextRun `json:"runs,omitempty"`
	SimpleText string    `json:"simpleText,omitempty"`
}

// TextRun is a segment of text, optionally carrying a navigation target.
type TextRun struct {
	Text               string    `json:"text,omitempty"`
	NavigationEndpoint *Endpoint `json:"navigationEndpoint,omitempty"`
}

// Endpoint represents a navigation endpoint.
type Endpoint struct {
	BrowseEndpoint *BrowseEndpointData `json:"browseEndpoint,omitempty"`
}

// BrowseEndpointData holds browse endpoint parameters.
type BrowseEndpointData struct {
	BrowseID string `json:"browseId,omitempty"`
}

// SimpleText holds a simple text value.
type SimpleText struct {
	SimpleText string `json:"simpleText,omitempty"`
}

// ThumbnailList contains thumbnail images.
type ThumbnailList struct {
	Thumbnails []Thumbnail `json:"thumbnails,omitempty"`
}

// Thumbnail represents a single thumbnail.
type Thumbnail struct {
	URL    string `json:"url,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Header contains page header information for browse responses.
type Header struct {
	PlaylistHeaderRenderer *PlaylistHeaderRenderer `json:"playlistHeaderRenderer,omitempty"`
}

// PlaylistHeaderRenderer holds playlist title and owner.
type PlaylistHeaderRenderer struct {
	PlaylistID string    `json:"playlistId,omitempty"`
	Title      *TextRuns `json:"title,omitempty"`
	OwnerText  *TextRuns `json:"ownerText,omitempty"`
}

// PlaylistHeading carries browse page metadata.
type PlaylistHeading struct {
	PlaylistMetadataRenderer *PlaylistMetadataRenderer `json:"playlistMetadataRenderer,omitempty"`
}

// PlaylistMetadataRenderer holds playlist metadata details.
type PlaylistMetadataRenderer struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// GetText extracts plain text from TextRuns.
func (t *TextRuns) GetText() string {
	if t == nil {
		return ""
	}
	if t.SimpleText != "" {
		return t.SimpleText
	}
	var parts []string
	for _, run := range t.Runs {
		parts = append(parts, run.Text)
	}
	return strings.Join(parts, "")
}

// BrowseID returns the browse target carried by the first run with a
// navigation endpoint, typically a channel ID on byline text.
func (t *TextRuns) BrowseID() string {
	if t == nil {
		return ""
	}
	for _, run := range t.Runs {
		if run.NavigationEndpoint != nil && run.NavigationEndpoint.BrowseEndpoint != nil {
			return run.NavigationEndpoint.BrowseEndpoint.BrowseID
		}
	}
	return ""
}

// Text returns the value of an optional SimpleText node.
func (s *SimpleText) Text() string {
	if s == nil {
		return ""
	}
	return s.SimpleText
}

// BestURL returns the URL of the largest thumbnail, or "".
func (t *ThumbnailList) BestURL() string {
	if t == nil || len(t.Thumbnails) == 0 {
		return ""
	}
	best := t.Thumbnails[0]
	for _, thumb := range t.Thumbnails[1:] {
		if thumb.Width*thumb.Height > best.Width*best.Height {
			best = thumb
		}
	}
	return best.URL
}
