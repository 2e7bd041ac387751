package mastersource

import (
	"context"
	"errors"
)

// Sentinel errors for master catalog fetching.
// Callers should use errors.Is to check.
var (
	// ErrFetchFailed indicates the Fetcher could not retrieve the document.
	ErrFetchFailed = errors.New("mastersource: fetch failed")
	// ErrNotFound indicates no document exists for the given file ID.
	ErrNotFound = errors.New("mastersource: document not found")
)

// Fetcher fetches raw interchange XML bytes by department file ID.
// Source uses it to obtain document content; the surrounding shell owns the
// transport (Drive download, HTTP, local file) and its cancellation policy.
//
// Return ErrNotFound when the document does not exist. Wrap other errors in
// ErrFetchFailed so callers can use errors.Is.
type Fetcher interface {
	Fetch(ctx context.Context, fileID string) ([]byte, error)
}

// Lister is optional. When implemented by Fetcher, Source.List uses it to
// return available file IDs.
type Lister interface {
	ListIDs(ctx context.Context) ([]string, error)
}
