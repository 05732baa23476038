package youtube

// SamplePlaylistFeed is a sample YouTube playlist Atom feed.
const SamplePlaylistFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:yt="http://www.youtube.com/xml/schemas/2015" xmlns:media="http://search.yahoo.com/mrss/">
  <title>Calculus Course</title>
  <link rel="self" href="https://www.youtube.com/feeds/videos.xml?playlist_id=PLtest00000000000000000000000000"/>
  <author>
    <name>Math Channel</name>
    <uri>https://www.youtube.com/channel/UCuAXFkgsw1L7xaCfnd5JJOw</uri>
  </author>
  <published>2020-01-02T12:00:00-05:00</published>
  <entry>
    <id>yt:video:dQw4w9WgXcQ</id>
    <yt:videoId>dQw4w9WgXcQ</yt:videoId>
    <yt:channelId>UCuAXFkgsw1L7xaCfnd5JJOw</yt:channelId>
    <title>Lecture 1: Limits</title>
    <link rel="alternate" href="https://www.youtube.com/watch?v=dQw4w9WgXcQ"/>
    <author>
      <name>Math Channel</name>
      <uri>https://www.youtube.com/channel/UCuAXFkgsw1L7xaCfnd5JJOw</uri>
    </author>
    <published>2020-01-01T00:00:00Z</published>
    <updated>2020-01-02T00:00:00Z</updated>
    <media:group>
      <media:description>Introduction to limits</media:description>
      <media:thumbnail url="https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg" width="480" height="360"/>
      <media:community>
        <media:statistics views="1000000"/>
      </media:community>
    </media:group>
  </entry>
  <entry>
    <id>yt:video:xQw4w9WgXcZ</id>
    <yt:videoId>xQw4w9WgXcZ</yt:videoId>
    <yt:channelId>UCuAXFkgsw1L7xaCfnd5JJOw</yt:channelId>
    <title>Lecture 2: Derivatives</title>
    <link rel="alternate" href="https://www.youtube.com/watch?v=xQw4w9WgXcZ"/>
    <published>2020-01-02T00:00:00Z</published>
    <updated>2020-01-03T00:00:00Z</updated>
    <media:group>
      <media:description>Introduction to derivatives</media:description>
      <media:thumbnail url="https://i.ytimg.com/vi/xQw4w9WgXcZ/hqdefault.jpg" width="480" height="360"/>
      <media:community>
        <media:statistics views="500000"/>
      </media:community>
    </media:group>
  </entry>
</feed>`

// SampleEmptyPlaylistFeed is a playlist feed with no entries.
const SampleEmptyPlaylistFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:yt="http://www.youtube.com/xml/schemas/2015">
  <title>Empty Playlist</title>
  <author>
    <name>Math Channel</name>
  </author>
</feed>`

// SampleSearchPage is a results page carrying a decodable ytInitialData blob
// with one full video renderer and one item without a video ID.
const SampleSearchPage = `<!DOCTYPE html>
<html><head><title>results</title></head>
<body>
<script nonce="x">var ytInitialData = {
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
                      "descriptionSnippet": {"runs": [{"text": "Everything in one video"}]},
                      "thumbnail": {"thumbnails": [{"url": "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg", "width": 480, "height": 360}]},
                      "publishedTimeText": {"simpleText": "3 days ago"},
                      "lengthText": {"simpleText": "12:34"},
                      "viewCountText": {"simpleText": "1,234,567 views"},
                      "ownerText": {"runs": [{"text": "Math Channel", "navigationEndpoint": {"browseEndpoint": {"browseId": "UCuAXFkgsw1L7xaCfnd5JJOw"}}}]}
                    }
                  },
                  {
                    "videoRenderer": {
                      "title": {"runs": [{"text": "item with no id"}]}
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
};</script>
</body></html>`

// SampleBrokenPage carries a ytInitialData assignment that is not valid
// JSON, plus bare video IDs elsewhere in the markup, to exercise the
// ID-sweep degradation path.
const SampleBrokenPage = `<!DOCTYPE html>
<html><body>
<script>var ytInitialData = {"contents": {broken}};</script>
<script>"videoId":"dQw4w9WgXcQ" "videoId":"xQw4w9WgXcZ" "videoId":"dQw4w9WgXcQ"</script>
</body></html>`

// SampleBlobFreePage has no embedded blob at all, only bare IDs.
const SampleBlobFreePage = `<!DOCTYPE html>
<html><body>
<div data-x='"videoId":"aaaaaaaaaaa"'></div>
<div data-x='"videoId":"bbbbbbbbbbb"'></div>
</body></html>`
