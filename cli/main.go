package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/PraiseTechzw/mentora-sub000/config"
	"github.com/PraiseTechzw/mentora-sub000/content"
	"github.com/PraiseTechzw/mentora-sub000/youtube"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "search":
		cmdSearch(args)
	case "trending":
		cmdTrending(args)
	case "recommended":
		cmdRecommended(args)
	case "playlist":
		cmdPlaylist(args)
	case "discover":
		cmdDiscover(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		// Assume it's a search query for convenience
		cmdSearch(os.Args[1:])
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `mentora - educational video aggregator

Usage:
  mentora search [flags] <query>         Search educational videos
  mentora trending [flags]               Show trending educational videos
  mentora recommended [flags] <terms>    Build a feed from preference terms
  mentora playlist [flags] <playlist-id> List videos of a playlist
  mentora discover [flags]               Show discovered categories/channels
  mentora help                           Show this help message

Examples:
  mentora "linear algebra"                          # Search (default)
  mentora search --category science --max 10        # Category browse
  mentora trending --json                           # Trending as JSON
  mentora recommended golang,databases              # Preference feed
  mentora playlist PLxxxxxxxx                       # Playlist contents
  mentora discover --what channels                  # Observed channels

For help on specific command: mentora <command> -h
`)
}

func cmdSearch(args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	category := fs.String("category", "", "Category to browse when no query is given")
	maxResults := fs.Int("max", 0, "Maximum videos to print (0 = all)")
	allContent := fs.Bool("all-content", false, "Include non-free content")
	asJSON := fs.Bool("json", false, "Print results as JSON")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mentora search [flags] <query>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	query := strings.Join(fs.Args(), " ")

	agg, cancel := newAggregator()
	defer cancel()

	ctx, ctxCancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer ctxCancel()

	fmt.Fprintf(os.Stderr, "Searching...\n")
	videos := agg.Aggregated(ctx, query, *category, !*allContent)
	printVideos(videos, *maxResults, *asJSON)
}

func cmdTrending(args []string) {
	fs := flag.NewFlagSet("trending", flag.ExitOnError)
	maxResults := fs.Int("max", 0, "Maximum videos to print (0 = all)")
	allContent := fs.Bool("all-content", false, "Include non-free content")
	asJSON := fs.Bool("json", false, "Print results as JSON")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mentora trending [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	agg, cancel := newAggregator()
	defer cancel()

	ctx, ctxCancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer ctxCancel()

	fmt.Fprintf(os.Stderr, "Fetching trending videos...\n")
	videos := agg.Trending(ctx, !*allContent)
	printVideos(videos, *maxResults, *asJSON)
}

func cmdRecommended(args []string) {
	fs := flag.NewFlagSet("recommended", flag.ExitOnError)
	maxResults := fs.Int("max", 0, "Maximum videos to print (0 = all)")
	allContent := fs.Bool("all-content", false, "Include non-free content")
	asJSON := fs.Bool("json", false, "Print results as JSON")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mentora recommended [flags] <comma-separated-terms>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	var preferences []string
	if fs.NArg() > 0 {
		for _, term := range strings.Split(strings.Join(fs.Args(), ","), ",") {
			if term = strings.TrimSpace(term); term != "" {
				preferences = append(preferences, term)
			}
		}
	}

	agg, cancel := newAggregator()
	defer cancel()

	ctx, ctxCancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer ctxCancel()

	fmt.Fprintf(os.Stderr, "Building recommendations...\n")
	videos := agg.Recommended(ctx, preferences, !*allContent)
	printVideos(videos, *maxResults, *asJSON)
}

func cmdPlaylist(args []string) {
	fs := flag.NewFlagSet("playlist", flag.ExitOnError)
	maxResults := fs.Int("max", 0, "Maximum videos to print (0 = all)")
	asJSON := fs.Bool("json", false, "Print results as JSON")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mentora playlist [flags] <playlist-id>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	if fs.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: missing playlist-id\n")
		fs.Usage()
		os.Exit(1)
	}
	playlistID := fs.Arg(0)

	agg, cancel := newAggregator()
	defer cancel()

	ctx, ctxCancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer ctxCancel()

	fmt.Fprintf(os.Stderr, "Fetching playlist %s...\n", playlistID)
	videos := agg.PlaylistVideos(ctx, playlistID)
	printVideos(videos, *maxResults, *asJSON)
}

func cmdDiscover(args []string) {
	fs := flag.NewFlagSet("discover", flag.ExitOnError)
	what := fs.String("what", "categories", "What to discover: categories, channels, or playlists")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mentora discover [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	agg, cancel := newAggregator()
	defer cancel()

	ctx, ctxCancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer ctxCancel()

	switch *what {
	case "categories":
		for _, c := range agg.Categories(ctx) {
			fmt.Println(c)
		}
	case "channels":
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CHANNEL ID\tNAME")
		for _, c := range agg.Channels(ctx) {
			fmt.Fprintf(w, "%s\t%s\n", c.ID, truncate(c.Name, 40))
		}
		w.Flush()
	case "playlists":
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PLAYLIST ID\tTITLE\tOWNER")
		for _, p := range agg.Playlists(ctx) {
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, truncate(p.Title, 50), truncate(p.Owner, 30))
		}
		w.Flush()
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid --what value %q (use categories, channels, or playlists)\n", *what)
		os.Exit(1)
	}
}

// newAggregator builds the aggregator from the loaded configuration.
func newAggregator() (*content.Aggregator, func()) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	agg := content.New(cfg)
	return agg, func() { agg.Close() }
}

func printVideos(videos []youtube.Video, maxResults int, asJSON bool) {
	if len(videos) == 0 {
		fmt.Println("No videos found.")
		return
	}
	if maxResults > 0 && len(videos) > maxResults {
		videos = videos[:maxResults]
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(videos); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VIDEO ID\tTITLE\tCHANNEL\tDURATION\tVIEWS\tPUBLISHED")

	for _, v := range videos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			v.ID,
			truncate(v.Title, 50),
			truncate(v.ChannelName, 25),
			v.Duration,
			v.Views,
			displayDate(v.PublishedAt),
		)
	}
	w.Flush()

	fmt.Fprintf(os.Stderr, "\nTotal: %d videos\n", len(videos))
}

// displayDate renders a timestamp as a plain date for table display. Both
// full RFC 3339 and date-only ISO-8601 values are accepted; anything else
// is shown verbatim.
func displayDate(s string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// truncate shortens a string for table display.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
