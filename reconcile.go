package teibun

import "strings"

// Reconcile merges a freshly fetched master catalog into an existing local
// catalog. The fresh folders replace the prior master folders wholesale
// (master content is a full-refresh snapshot, never an incremental diff),
// while personal folders are appended unchanged in their prior relative
// order. A personal folder whose name collides with a master folder stays a
// separate entry distinguished by snippet type; snippets are never merged
// across types.
//
// departments names the departments whose master content is being replaced.
// When the actor's role does not permit writing every one of them, Reconcile
// returns the existing catalog unchanged together with an AuthError wrapping
// ErrUnauthorized.
//
// Reconcile is idempotent for fixed inputs and never mutates its arguments.
func Reconcile(existing Catalog, fresh []SnippetFolder, actor Member, departments []string) (Catalog, error) {
	if !actor.CanWriteDepartments(departments) {
		return existing, &AuthError{Actor: actor.Email, Role: actor.Role, Departments: departments}
	}

	merged := mergeMasterFolders(fresh)
	for _, f := range existing {
		if f.IsPersonal() {
			merged = append(merged, CloneFolder(f))
		}
	}
	for i := range merged {
		merged[i].Order = i
	}
	return Catalog(merged), nil
}

// mergeMasterFolders stamps fresh folders as master content and coalesces
// same-named folders into one logical folder: folder identity for merge
// purposes is the trimmed name, not the ID. First occurrence wins position
// and ID; snippets from later occurrences are appended.
func mergeMasterFolders(fresh []SnippetFolder) []SnippetFolder {
	var out []SnippetFolder
	index := make(map[string]int)
	for _, f := range fresh {
		name := strings.TrimSpace(f.Name)
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, SnippetFolder{ID: f.ID, Name: name})
		}
		for _, s := range f.Snippets {
			s.Folder = name
			s.Type = TypeMaster
			if s.ID == "" {
				s.ID = Fingerprint(name, s.Title, s.Content)
			}
			s.Order = len(out[i].Snippets)
			out[i].Snippets = append(out[i].Snippets, s)
		}
	}
	return out
}
