package mastersource

import (
	"context"
	"sync"
	"time"

	"github.com/kosuda/teibun"
	"github.com/kosuda/teibun/interchange"

	"golang.org/x/sync/singleflight"
)

const defaultTTL = 5 * time.Minute

// Ensures Source implements teibun.MasterSource.
var _ teibun.MasterSource = (*Source)(nil)

// detachCancel returns a context that is not cancelled when parent is
// cancelled, but still respects parent's deadline so a shared fetch does not
// hang. The caller should call the returned cancel when done to release the
// deadline timer.
func detachCancel(parent context.Context) (context.Context, context.CancelFunc) {
	ctx := context.WithoutCancel(parent)
	if dl, ok := parent.Deadline(); ok {
		return context.WithDeadline(ctx, dl)
	}
	return context.WithCancel(ctx) // no-op cancel when no deadline, but same signature
}

type cacheEntry struct {
	folders   []teibun.SnippetFolder
	expiresAt time.Time
}

// cacheEntryValid reports whether the entry is still valid at the given time.
func (s *Source) cacheEntryValid(ent *cacheEntry, now time.Time) bool {
	return s.ttl <= 0 || now.Before(ent.expiresAt)
}

// Source loads master catalogs via a Fetcher and caches the decoded folders
// with TTL. Folders returns a deep clone so callers cannot mutate the cache.
// Safe for concurrent use.
type Source struct {
	fetcher Fetcher
	ttl     time.Duration
	mu      sync.RWMutex
	cache   map[string]*cacheEntry
	sf      singleflight.Group
}

// New creates a Source that uses the given Fetcher. Options (e.g. WithTTL)
// configure cache behavior. Panics if fetcher is nil.
func New(fetcher Fetcher, opts ...Option) *Source {
	if fetcher == nil {
		panic("mastersource: Fetcher must not be nil")
	}
	s := &Source{
		fetcher: fetcher,
		ttl:     defaultTTL,
		cache:   make(map[string]*cacheEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Folders returns the decoded folders of the document with the given file
// ID. Uses the TTL cache; on miss or expiry, fetches via the Fetcher, with
// concurrent requests for the same ID collapsed into one fetch. Decoding is
// best effort and never fails; only the fetch itself can error.
func (s *Source) Folders(ctx context.Context, fileID string) ([]teibun.SnippetFolder, error) {
	now := time.Now()

	s.mu.RLock()
	ent, ok := s.cache[fileID]
	if ok && s.cacheEntryValid(ent, now) {
		folders := teibun.CloneFolders(ent.folders)
		s.mu.RUnlock()
		return folders, nil
	}
	s.mu.RUnlock()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	v, err, _ := s.sf.Do(fileID, func() (any, error) {
		fetchCtx, cancel := detachCancel(ctx)
		defer cancel()
		data, err := s.fetcher.Fetch(fetchCtx, fileID)
		if err != nil {
			return nil, err
		}
		return interchange.Decode(data), nil
	})
	if err != nil {
		return nil, err
	}
	folders := v.([]teibun.SnippetFolder)

	s.mu.Lock()
	expiresAt := time.Now().Add(s.ttl)
	if s.ttl <= 0 {
		expiresAt = time.Time{}
	}
	s.cache[fileID] = &cacheEntry{folders: folders, expiresAt: expiresAt}
	s.mu.Unlock()
	return teibun.CloneFolders(folders), nil
}

// List returns file IDs from the Fetcher if it implements Lister; otherwise
// returns nil, nil.
func (s *Source) List(ctx context.Context) ([]string, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if lister, ok := s.fetcher.(Lister); ok {
		return lister.ListIDs(ctx)
	}
	return nil, nil
}

// Evict removes one document from the cache by file ID. Safe for concurrent use.
func (s *Source) Evict(fileID string) {
	s.mu.Lock()
	delete(s.cache, fileID)
	s.mu.Unlock()
}

// EvictAll clears the entire cache. Safe for concurrent use.
func (s *Source) EvictAll() {
	s.mu.Lock()
	s.cache = make(map[string]*cacheEntry)
	s.mu.Unlock()
}
