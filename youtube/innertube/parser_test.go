package innertube

import (
	"encoding/json"
	"testing"
)

const sampleSearchResponse = `{
  "contents": {
    "twoColumnSearchResultsRenderer": {
      "primaryContents": {
        "sectionListRenderer": {
          "contents": [
            {
              "itemSectionRenderer": {
                "contents": [
                  {
                    "videoRenderer": {
                      "videoId": "dQw4w9WgXcQ",
                      "title": {"runs": [{"text": "Algebra Crash Course"}]},
                      "descriptionSnippet": {"runs": [{"text": "Everything "}, {"text": "in one video"}]},
                      "thumbnail": {"thumbnails": [
                        {"url": "small.jpg", "width": 120, "height": 90},
                        {"url": "large.jpg", "width": 480, "height": 360}
                      ]},
                      "publishedTimeText": {"simpleText": "3 days ago"},
                      "lengthText": {"simpleText": "12:34"},
                      "viewCountText": {"simpleText": "1,234,567 views"},
                      "ownerText": {"runs": [{"text": "Math Channel", "navigationEndpoint": {"browseEndpoint": {"browseId": "UCuAXFkgsw1L7xaCfnd5JJOw"}}}]}
                    }
                  },
                  {
                    "playlistRenderer": {
                      "playlistId": "PLtest00000000000000000000000000",
                      "title": {"simpleText": "Full Algebra Course"},
                      "videoCount": "40",
                      "shortBylineText": {"runs": [{"text": "Math Channel"}]}
                    }
                  },
                  {
                    "videoRenderer": {
                      "title": {"runs": [{"text": "no id, dropped"}]}
                    }
                  }
                ]
              }
            }
          ]
        }
      }
    }
  }
}`

const sampleBrowseResponse = `{
  "contents": {
    "twoColumnBrowseResultsRenderer": {
      "tabs": [
        {
          "tabRenderer": {
            "selected": true,
            "content": {
              "sectionListRenderer": {
                "contents": [
                  {
                    "itemSectionRenderer": {
                      "contents": [
                        {
                          "playlistVideoListRenderer": {
                            "contents": [
                              {
                                "playlistVideoRenderer": {
                                  "videoId": "aaaaaaaaaaa",
                                  "title": {"runs": [{"text": "Lecture 1"}]},
                                  "lengthText": {"simpleText": "45:00"},
                                  "shortBylineText": {"runs": [{"text": "Math Channel", "navigationEndpoint": {"browseEndpoint": {"browseId": "UCuAXFkgsw1L7xaCfnd5JJOw"}}}]},
                                  "index": {"simpleText": "1"}
                                }
                              },
                              {
                                "playlistVideoRenderer": {
                                  "videoId": "bbbbbbbbbbb",
                                  "title": {"runs": [{"text": "Lecture 2"}]},
                                  "lengthText": {"simpleText": "50:00"}
                                }
                              }
                            ]
                          }
                        }
                      ]
                    }
                  }
                ]
              }
            }
          }
        }
      ]
    }
  }
}`

const sampleRichGridResponse = `{
  "contents": {
    "twoColumnSearchResultsRenderer": {
      "primaryContents": {
        "richGridRenderer": {
          "contents": [
            {
              "richItemRenderer": {
                "content": {
                  "videoRenderer": {
                    "videoId": "ccccccccccc",
                    "title": {"runs": [{"text": "Grid Video"}]},
                    "longBylineText": {"runs": [{"text": "Science Channel", "navigationEndpoint": {"browseEndpoint": {"browseId": "UCscience0000000000000000"}}}]}
                  }
                }
              }
            },
            {
              "richItemRenderer": {}
            }
          ]
        }
      }
    }
  }
}`

func decodeResponse(t *testing.T, raw string) *Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return &resp
}

func TestExtractItemsSearch(t *testing.T) {
	items := ExtractItems(decodeResponse(t, sampleSearchResponse))

	// One full video renderer; the ID-less renderer and the playlist entry
	// are not video items.
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}

	item := items[0]
	if item.VideoID != "dQw4w9WgXcQ" {
		t.Errorf("VideoID = %q", item.VideoID)
	}
	if item.Title != "Algebra Crash Course" {
		t.Errorf("Title = %q", item.Title)
	}
	if item.Description != "Everything in one video" {
		t.Errorf("Description = %q", item.Description)
	}
	if item.ChannelName != "Math Channel" {
		t.Errorf("ChannelName = %q", item.ChannelName)
	}
	if item.ChannelID != "UCuAXFkgsw1L7xaCfnd5JJOw" {
		t.Errorf("ChannelID = %q", item.ChannelID)
	}
	if item.ViewCountText != "1,234,567 views" {
		t.Errorf("ViewCountText = %q", item.ViewCountText)
	}
	if item.LengthText != "12:34" {
		t.Errorf("LengthText = %q", item.LengthText)
	}
	if item.PublishedTimeText != "3 days ago" {
		t.Errorf("PublishedTimeText = %q", item.PublishedTimeText)
	}
	if item.Thumbnail != "large.jpg" {
		t.Errorf("Thumbnail = %q, want largest", item.Thumbnail)
	}
}

func TestExtractItemsBrowsePlaylist(t *testing.T) {
	items := ExtractItems(decodeResponse(t, sampleBrowseResponse))

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].VideoID != "aaaaaaaaaaa" || items[1].VideoID != "bbbbbbbbbbb" {
		t.Errorf("IDs = %q, %q", items[0].VideoID, items[1].VideoID)
	}
	if items[0].LengthText != "45:00" {
		t.Errorf("LengthText = %q", items[0].LengthText)
	}
	if items[0].ChannelID != "UCuAXFkgsw1L7xaCfnd5JJOw" {
		t.Errorf("ChannelID = %q", items[0].ChannelID)
	}
}

func TestExtractItemsRichGrid(t *testing.T) {
	items := ExtractItems(decodeResponse(t, sampleRichGridResponse))

	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].VideoID != "ccccccccccc" {
		t.Errorf("VideoID = %q", items[0].VideoID)
	}
	// Owner falls back to longBylineText when ownerText is absent.
	if items[0].ChannelName != "Science Channel" {
		t.Errorf("ChannelName = %q", items[0].ChannelName)
	}
}

func TestExtractItemsNilAndEmpty(t *testing.T) {
	if items := ExtractItems(nil); items != nil {
		t.Errorf("ExtractItems(nil) = %v", items)
	}
	if items := ExtractItems(&Response{}); items != nil {
		t.Errorf("ExtractItems(empty) = %v", items)
	}
}

func TestExtractPlaylists(t *testing.T) {
	playlists := ExtractPlaylists(decodeResponse(t, sampleSearchResponse))

	if len(playlists) != 1 {
		t.Fatalf("got %d playlists, want 1", len(playlists))
	}
	p := playlists[0]
	if p.ID != "PLtest00000000000000000000000000" {
		t.Errorf("ID = %q", p.ID)
	}
	if p.Title != "Full Algebra Course" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.Owner != "Math Channel" {
		t.Errorf("Owner = %q", p.Owner)
	}
}

func TestTextRunsGetText(t *testing.T) {
	var nilRuns *TextRuns
	if got := nilRuns.GetText(); got != "" {
		t.Errorf("nil GetText = %q", got)
	}

	runs := &TextRuns{Runs: []TextRun{{Text: "a"}, {Text: "b"}}}
	if got := runs.GetText(); got != "ab" {
		t.Errorf("runs GetText = %q", got)
	}

	simple := &TextRuns{SimpleText: "plain"}
	if got := simple.GetText(); got != "plain" {
		t.Errorf("simpleText GetText = %q", got)
	}
}
