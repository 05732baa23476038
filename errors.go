package mentora

import (
	"github.com/PraiseTechzw/mentora-sub000/retry"
	"github.com/PraiseTechzw/mentora-sub000/youtube"
)

// Error handling types exported for library users.
//
// All error types support the standard error handling patterns:
//
// Using errors.Is() for sentinel errors:
//
//	if errors.Is(err, mentora.ErrPlaylistNotFound) {
//		fmt.Println("Playlist not found")
//	}
//
// Using errors.As() for wrapped errors:
//
//	var srcErr *mentora.SourceError
//	if errors.As(err, &srcErr) {
//		fmt.Printf("%s failed for %s: %v\n", srcErr.Source, srcErr.Query, srcErr.Err)
//	}

// Type aliases for convenient error handling.
type (
	// SourceError wraps errors from a single transport.
	SourceError = youtube.SourceError
	// ExhaustedError wraps errors that occurred after retries were exhausted.
	ExhaustedError = retry.ExhaustedError
)

// Sentinel errors exported from sub-packages.
var (
	// ErrPlaylistNotFound indicates the playlist does not exist.
	ErrPlaylistNotFound = youtube.ErrPlaylistNotFound
	// ErrRateLimited indicates the operation was rate limited.
	ErrRateLimited = youtube.ErrRateLimited
	// ErrNetworkTimeout indicates a network timeout occurred.
	ErrNetworkTimeout = youtube.ErrNetworkTimeout
	// ErrInvalidID indicates a malformed video or playlist identifier.
	ErrInvalidID = youtube.ErrInvalidID
)

// IsRetryable determines if an error should be retried.
// It returns false for permanent errors like context cancellation.
func IsRetryable(err error) bool {
	return retry.IsRetryable(err)
}
