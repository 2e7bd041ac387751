package mastersource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Ensures FSFetcher implements Fetcher and Lister.
var (
	_ Fetcher = (*FSFetcher)(nil)
	_ Lister  = (*FSFetcher)(nil)
)

// FSFetcher reads master documents from a filesystem (a directory of XML
// files, or an embed.FS). The file ID is the file name relative to the root.
type FSFetcher struct {
	fsys fs.FS
}

// NewFSFetcher creates an FSFetcher over fsys. Panics if fsys is nil.
func NewFSFetcher(fsys fs.FS) *FSFetcher {
	if fsys == nil {
		panic("mastersource: fs.FS must not be nil")
	}
	return &FSFetcher{fsys: fsys}
}

// Fetch reads the document with the given file ID. IDs that escape the root
// are rejected as not found.
func (f *FSFetcher) Fetch(ctx context.Context, fileID string) ([]byte, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if !fs.ValidPath(fileID) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, fileID)
	}
	data, err := fs.ReadFile(f.fsys, fileID)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, fileID)
		}
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return data, nil
}

// ListIDs returns the XML file names under the root, sorted.
func (f *FSFetcher) ListIDs(ctx context.Context) ([]string, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	var ids []string
	err := fs.WalkDir(f.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(path.Ext(p), ".xml") {
			ids = append(ids, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	sort.Strings(ids)
	return ids, nil
}
