package teibun

import (
	"slices"
	"strings"
	"time"
)

// SnippetType distinguishes admin-distributed master snippets from
// user-authored personal snippets.
type SnippetType string

// Snippet types.
const (
	TypeMaster   SnippetType = "master"
	TypePersonal SnippetType = "personal"
)

// Role is the directory role that gates master catalog access.
type Role string

// Directory roles.
const (
	RoleGeneral    Role = "general"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superAdmin"
)

// Snippet is one reusable text entry. A snippet never exists outside a
// folder; Folder holds the owning folder's name rather than its ID because
// folder identity for merge purposes is the name.
type Snippet struct {
	ID          string
	Title       string
	Content     string
	Folder      string
	Type        SnippetType
	Description string
	Order       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SnippetFolder groups snippets for display. Order controls folder sequence
// in the catalog; Snippets keep their own per-folder Order.
type SnippetFolder struct {
	ID       string
	Name     string
	Snippets []Snippet
	Order    int
}

// IsPersonal reports whether the folder holds only personal snippets.
// An empty folder counts as personal: master feeds always carry snippets,
// so an empty folder can only have been created locally.
func (f SnippetFolder) IsPersonal() bool {
	for _, s := range f.Snippets {
		if s.Type != TypePersonal {
			return false
		}
	}
	return true
}

// CloneFolder returns a deep copy of f.
func CloneFolder(f SnippetFolder) SnippetFolder {
	f.Snippets = slices.Clone(f.Snippets)
	return f
}

// CloneFolders returns a deep copy of folders.
func CloneFolders(folders []SnippetFolder) []SnippetFolder {
	out := make([]SnippetFolder, len(folders))
	for i, f := range folders {
		out[i] = CloneFolder(f)
	}
	return out
}

// Catalog is the full ordered sequence of folders held by a client.
type Catalog []SnippetFolder

// Clone returns a deep copy of the catalog.
func (c Catalog) Clone() Catalog {
	return Catalog(CloneFolders(c))
}

// Department maps a department name to the location of its master XML
// document. Supplied by the directory collaborator, not persisted here.
type Department struct {
	Name      string
	XMLFileID string
}

// Member is the acting user as reported by the directory collaborator.
// Only the role and department set matter to the core; it is never persisted.
type Member struct {
	Name        string
	Email       string
	Departments []string
	Role        Role
}

// HasDepartment reports whether the member belongs to the named department.
// Names are compared case-sensitively after trimming.
func (m Member) HasDepartment(name string) bool {
	name = strings.TrimSpace(name)
	for _, d := range m.Departments {
		if strings.TrimSpace(d) == name {
			return true
		}
	}
	return false
}

// CanWriteDepartments reports whether the member may replace the master
// folders of every named department: superAdmin always, admin only within
// its own departments, general never.
func (m Member) CanWriteDepartments(departments []string) bool {
	switch m.Role {
	case RoleSuperAdmin:
		return true
	case RoleAdmin:
		for _, d := range departments {
			if !m.HasDepartment(d) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// CanReadDepartment reports whether the member may read a department's
// master folders. General members see only their own departments; admins
// may additionally read other departments when explicitly requested;
// superAdmin reads everything.
func (m Member) CanReadDepartment(name string, explicit bool) bool {
	switch m.Role {
	case RoleSuperAdmin:
		return true
	case RoleAdmin:
		return explicit || m.HasDepartment(name)
	default:
		return m.HasDepartment(name)
	}
}
