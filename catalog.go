package teibun

import (
	"fmt"
	"strings"
)

// PersonalFolders returns the folders holding only personal snippets,
// preserving their relative order.
func (c Catalog) PersonalFolders() []SnippetFolder {
	var out []SnippetFolder
	for _, f := range c {
		if f.IsPersonal() {
			out = append(out, CloneFolder(f))
		}
	}
	return out
}

// MasterFolders returns the folders carrying master snippets, preserving
// their relative order.
func (c Catalog) MasterFolders() []SnippetFolder {
	var out []SnippetFolder
	for _, f := range c {
		if !f.IsPersonal() {
			out = append(out, CloneFolder(f))
		}
	}
	return out
}

// FolderByName returns the first folder with the given trimmed name whose
// personal/master kind matches personal.
func (c Catalog) FolderByName(name string, personal bool) (SnippetFolder, bool) {
	name = strings.TrimSpace(name)
	for _, f := range c {
		if strings.TrimSpace(f.Name) == name && f.IsPersonal() == personal {
			return CloneFolder(f), true
		}
	}
	return SnippetFolder{}, false
}

// AddPersonal appends a new personal snippet, creating the personal folder
// on demand. The snippet always gets a random ID from gen rather than a
// fingerprint, so two personal snippets with identical text stay distinct.
// Returns the new catalog and the created snippet.
func (c Catalog) AddPersonal(folderName, title, content, description string, gen IDGenerator, clock Clock) (Catalog, Snippet) {
	folderName = strings.TrimSpace(folderName)
	now := clock.Now()
	out := c.Clone()
	at := -1
	for i, f := range out {
		if strings.TrimSpace(f.Name) == folderName && f.IsPersonal() {
			at = i
			break
		}
	}
	if at == -1 {
		out = append(out, SnippetFolder{ID: gen.New(), Name: folderName, Order: len(out)})
		at = len(out) - 1
	}
	s := Snippet{
		ID:          gen.New(),
		Title:       title,
		Content:     content,
		Folder:      folderName,
		Type:        TypePersonal,
		Description: description,
		Order:       len(out[at].Snippets),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	out[at].Snippets = append(out[at].Snippets, s)
	return out, s
}

// UpdatePersonal rewrites the title, content, and description of the
// personal snippet with the given ID. Master snippets are read-only through
// this path: attempting to edit one returns ErrMasterReadOnly.
func (c Catalog) UpdatePersonal(id, title, content, description string, clock Clock) (Catalog, error) {
	out := c.Clone()
	for fi, f := range out {
		for si, s := range f.Snippets {
			if s.ID != id {
				continue
			}
			if s.Type != TypePersonal {
				return c, fmt.Errorf("%w: %q", ErrMasterReadOnly, id)
			}
			s.Title = title
			s.Content = content
			s.Description = description
			s.UpdatedAt = clock.Now()
			out[fi].Snippets[si] = s
			return out, nil
		}
	}
	return c, fmt.Errorf("%w: %q", ErrSnippetNotFound, id)
}

// RemovePersonal deletes the personal snippet with the given ID, dropping
// its folder when the folder empties.
func (c Catalog) RemovePersonal(id string) (Catalog, error) {
	out := c.Clone()
	for fi, f := range out {
		for si, s := range f.Snippets {
			if s.ID != id {
				continue
			}
			if s.Type != TypePersonal {
				return c, fmt.Errorf("%w: %q", ErrMasterReadOnly, id)
			}
			out[fi].Snippets = append(out[fi].Snippets[:si], out[fi].Snippets[si+1:]...)
			for i := range out[fi].Snippets {
				out[fi].Snippets[i].Order = i
			}
			if len(out[fi].Snippets) == 0 {
				out = append(out[:fi], out[fi+1:]...)
			}
			return out.Renumber(), nil
		}
	}
	return c, fmt.Errorf("%w: %q", ErrSnippetNotFound, id)
}

// Renumber reassigns sequential folder orders after structural edits.
func (c Catalog) Renumber() Catalog {
	for i := range c {
		c[i].Order = i
	}
	return c
}

// Snippet returns the snippet with the given ID, searching all folders.
func (c Catalog) Snippet(id string) (Snippet, bool) {
	for _, f := range c {
		for _, s := range f.Snippets {
			if s.ID == id {
				return s, true
			}
		}
	}
	return Snippet{}, false
}
