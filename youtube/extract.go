package youtube

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// The extractors below convert YouTube's free-text metadata into the
// canonical field formats. They never fail: absence or unparseable input
// degrades to an empty/now value, because these fields are cosmetic
// metadata, not control data.

var (
	isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)
	viewDigitsPattern  = regexp.MustCompile(`\d[\d,]*`)
)

// ParseDuration converts a duration encoding into a display string in
// H:MM:SS or M:SS form. It accepts the ISO-8601 style "PT#H#M#S" encoding
// (any subset of components), an already colon-separated clock string, or a
// plain second count. Unparseable input yields "".
func ParseDuration(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if m := isoDurationPattern.FindStringSubmatch(strings.ToUpper(raw)); m != nil {
		if m[1] == "" && m[2] == "" && m[3] == "" {
			return ""
		}
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		seconds, _ := strconv.Atoi(m[3])
		return formatClock(hours*3600 + minutes*60 + seconds)
	}

	if strings.Contains(raw, ":") {
		parts := strings.Split(raw, ":")
		if len(parts) > 3 {
			return ""
		}
		total := 0
		for _, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || n < 0 {
				return ""
			}
			total = total*60 + n
		}
		return formatClock(total)
	}

	if seconds, err := strconv.Atoi(raw); err == nil && seconds >= 0 {
		return formatClock(seconds)
	}

	return ""
}

// formatClock renders a second count as H:MM:SS, or M:SS when there is no
// hour component. Minutes are zero-padded only when hours are present.
func formatClock(total int) string {
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// ParseViewCount extracts the first numeric run from view-count free text
// ("1,234,567 views" or a raw integer string), strips grouping separators,
// and abbreviates with a K/M suffix at the thousand/million thresholds.
// Returns "" when the text contains no digits.
func ParseViewCount(raw string) string {
	m := viewDigitsPattern.FindString(raw)
	if m == "" {
		return ""
	}

	n, err := strconv.ParseInt(strings.ReplaceAll(m, ",", ""), 10, 64)
	if err != nil {
		return ""
	}

	return AbbreviateCount(n)
}

// AbbreviateCount formats a count with one decimal place and a K/M suffix.
// Counts below one thousand are rendered verbatim.
func AbbreviateCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}

// ParseCompactCount converts an abbreviated count ("12.3K", "1.2M", "950")
// back to an integer. Used for ordering only, never for display. Returns 0
// when nothing numeric is found.
func ParseCompactCount(s string) int64 {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, " views")
	s = strings.TrimSuffix(s, " view")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}

	multiplier := float64(1)
	switch s[len(s)-1] {
	case 'k':
		multiplier = 1_000
		s = s[:len(s)-1]
	case 'm':
		multiplier = 1_000_000
		s = s[:len(s)-1]
	case 'b':
		multiplier = 1_000_000_000
		s = s[:len(s)-1]
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return int64(value * multiplier)
}

// relativeDateUnits is evaluated in priority order and the first match wins:
// a string matching both the month and day patterns resolves as months.
// Minute-level text and "just now" are deliberately unhandled; both collapse
// to the current instant.
var relativeDateUnits = []struct {
	pattern *regexp.Regexp
	unit    time.Duration
}{
	{regexp.MustCompile(`(\d+)\s*year`), 365 * 24 * time.Hour},
	{regexp.MustCompile(`(\d+)\s*month`), 30 * 24 * time.Hour},
	{regexp.MustCompile(`(\d+)\s*week`), 7 * 24 * time.Hour},
	{regexp.MustCompile(`(\d+)\s*day`), 24 * time.Hour},
	{regexp.MustCompile(`(\d+)\s*hour`), time.Hour},
}

// EstimatePublishDate converts relative publish text ("2 weeks ago") to an
// RFC 3339 timestamp by subtracting the implied offset from the current
// instant. The result is an estimate, not authoritative. Text matching no
// pattern yields the current instant, treated as "just now".
func EstimatePublishDate(relative string) string {
	now := time.Now().UTC()
	s := strings.ToLower(relative)

	for _, u := range relativeDateUnits {
		m := u.pattern.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return now.Add(-time.Duration(n) * u.unit).Format(time.RFC3339)
	}

	return now.Format(time.RFC3339)
}
