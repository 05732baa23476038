package innertube

// Item is a partially-populated video item pulled out of a response. All
// fields except VideoID may be empty depending on which renderer kind the
// item came from.
type Item struct {
	VideoID           string
	Title             string
	Description       string
	ChannelName       string
	ChannelID         string
	ViewCountText     string
	LengthText        string
	PublishedTimeText string
	Thumbnail         string
}

// PlaylistRef is a playlist observed in search results.
type PlaylistRef struct {
	ID    string
	Title string
	Owner string
}

// ExtractItems walks a response and returns the video items it can find,
// regardless of whether the document came from the search endpoint, the
// browse endpoint, or a scraped page. Items without a video ID are dropped.
func ExtractItems(resp *Response) []Item {
	var items []Item
	for _, content := range itemContents(resp) {
		if item, ok := itemFromContent(content); ok {
			items = append(items, item)
		}
	}
	return items
}

// ExtractPlaylists walks a response and returns the playlist entries
// observed in it. Entries without an ID are dropped.
func ExtractPlaylists(resp *Response) []PlaylistRef {
	var playlists []PlaylistRef
	for _, content := range itemContents(resp) {
		p := content.PlaylistRenderer
		if p == nil || p.PlaylistID == "" {
			continue
		}
		playlists = append(playlists, PlaylistRef{
			ID:    p.PlaylistID,
			Title: p.Title.Text(),
			Owner: p.ShortBylineText.GetText(),
		})
	}
	return playlists
}

// itemContents flattens every known rendering of a response down to its
// item-level contents. Both the section-list and rich-grid shapes are
// checked in sequence; a document may legitimately carry either.
func itemContents(resp *Response) []ItemContent {
	if resp == nil || resp.Contents == nil {
		return nil
	}

	var out []ItemContent

	if search := resp.Contents.TwoColumnSearchResultsRenderer; search != nil && search.PrimaryContents != nil {
		out = append(out, sectionListItems(search.PrimaryContents.SectionListRenderer)...)
		out = append(out, richGridItems(search.PrimaryContents.RichGridRenderer)...)
	}

	if browse := resp.Contents.TwoColumnBrowseResultsRenderer; browse != nil {
		for _, tab := range browse.Tabs {
			if tab.TabRenderer == nil || tab.TabRenderer.Content == nil {
				continue
			}
			out = append(out, sectionListItems(tab.TabRenderer.Content.SectionListRenderer)...)
			out = append(out, richGridItems(tab.TabRenderer.Content.RichGridRenderer)...)
		}
	}

	return out
}

func sectionListItems(list *SectionListRenderer) []ItemContent {
	if list == nil {
		return nil
	}
	var out []ItemContent
	for _, section := range list.Contents {
		if section.ItemSectionRenderer == nil {
			continue
		}
		for _, content := range section.ItemSectionRenderer.Contents {
			// Playlist browse pages nest their items one level deeper.
			if wrapper := content.PlaylistVideoListRenderer; wrapper != nil {
				out = append(out, wrapper.Contents...)
				continue
			}
			out = append(out, content)
		}
	}
	return out
}

func richGridItems(grid *RichGridRenderer) []ItemContent {
	if grid == nil {
		return nil
	}
	var out []ItemContent
	for _, content := range grid.Contents {
		if content.RichItemRenderer == nil || content.RichItemRenderer.Content == nil {
			continue
		}
		if v := content.RichItemRenderer.Content.VideoRenderer; v != nil {
			out = append(out, ItemContent{VideoRenderer: v})
		}
	}
	return out
}

// itemFromContent projects whichever renderer kind is present into an Item.
func itemFromContent(content ItemContent) (Item, bool) {
	switch {
	case content.VideoRenderer != nil:
		return itemFromVideo(content.VideoRenderer)
	case content.GridVideoRenderer != nil:
		return itemFromGridVideo(content.GridVideoRenderer)
	case content.PlaylistVideoRenderer != nil:
		return itemFromPlaylistVideo(content.PlaylistVideoRenderer)
	default:
		return Item{}, false
	}
}

func itemFromVideo(v *VideoRenderer) (Item, bool) {
	if v.VideoID == "" {
		return Item{}, false
	}

	owner := v.OwnerText
	if owner.GetText() == "" {
		owner = v.LongBylineText
	}

	return Item{
		VideoID:           v.VideoID,
		Title:             v.Title.GetText(),
		Description:       v.DescriptionSnippet.GetText(),
		ChannelName:       owner.GetText(),
		ChannelID:         owner.BrowseID(),
		ViewCountText:     v.ViewCountText.Text(),
		LengthText:        v.LengthText.Text(),
		PublishedTimeText: v.PublishedTimeText.Text(),
		Thumbnail:         v.Thumbnail.BestURL(),
	}, true
}

func itemFromGridVideo(v *GridVideoRenderer) (Item, bool) {
	if v.VideoID == "" {
		return Item{}, false
	}

	return Item{
		VideoID:           v.VideoID,
		Title:             v.Title.GetText(),
		ChannelName:       v.ShortBylineText.GetText(),
		ChannelID:         v.ShortBylineText.BrowseID(),
		ViewCountText:     v.ViewCountText.Text(),
		PublishedTimeText: v.PublishedTimeText.Text(),
		Thumbnail:         v.Thumbnail.BestURL(),
	}, true
}

func itemFromPlaylistVideo(v *PlaylistVideoRenderer) (Item, bool) {
	if v.VideoID == "" {
		return Item{}, false
	}

	return Item{
		VideoID:     v.VideoID,
		Title:       v.Title.GetText(),
		ChannelName: v.ShortBylineText.GetText(),
		ChannelID:   v.ShortBylineText.BrowseID(),
		LengthText:  v.LengthText.Text(),
		Thumbnail:   v.Thumbnail.BestURL(),
	}, true
}
