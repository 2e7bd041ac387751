package teibun

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// MasterSource supplies decoded master folders for one department XML
// document. mastersource.Source implements it; tests supply fakes.
type MasterSource interface {
	Folders(ctx context.Context, fileID string) ([]SnippetFolder, error)
}

// Service orchestrates a master sync: fetch and decode every requested
// department's document, then reconcile against the existing catalog.
// The zero value is not usable; Source must be set.
type Service struct {
	Source MasterSource
}

// Sync fetches the master folders of the given departments and merges them
// into existing per Reconcile. Departments are fetched concurrently but the
// merged folders keep request order, so the result is deterministic.
// Authorization is checked before any fetch is issued; an unauthorized actor
// gets the existing catalog back unchanged together with the error.
func (s Service) Sync(ctx context.Context, existing Catalog, actor Member, departments []Department) (Catalog, error) {
	names := make([]string, len(departments))
	for i, d := range departments {
		names[i] = d.Name
	}
	if !actor.CanWriteDepartments(names) {
		return existing, &AuthError{Actor: actor.Email, Role: actor.Role, Departments: names}
	}

	results := make([][]SnippetFolder, len(departments))
	g, gctx := errgroup.WithContext(ctx)
	for i, d := range departments {
		i, d := i, d
		g.Go(func() error {
			folders, err := s.Source.Folders(gctx, d.XMLFileID)
			if err != nil {
				return fmt.Errorf("department %q: %w", d.Name, err)
			}
			results[i] = folders
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return existing, err
	}

	var fresh []SnippetFolder
	for _, folders := range results {
		fresh = append(fresh, folders...)
	}
	return Reconcile(existing, fresh, actor, names)
}
