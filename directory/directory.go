package directory

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/kosuda/teibun"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDirectory indicates a malformed directory manifest.
// Callers should use errors.Is.
var ErrInvalidDirectory = errors.New("directory: manifest is malformed")

// Directory holds the parsed manifest: the department→file locator map and
// the member roster.
type Directory struct {
	Departments []teibun.Department
	Members     []teibun.Member
}

// fileManifest is the YAML manifest shape bound directly to domain types.
type fileManifest struct {
	Departments []struct {
		Name string `yaml:"name"`
		File string `yaml:"file"`
	} `yaml:"departments"`
	Members []struct {
		Name        string   `yaml:"name"`
		Email       string   `yaml:"email"`
		Role        string   `yaml:"role"`
		Departments []string `yaml:"departments"`
	} `yaml:"members"`
}

// ParseBytes parses a YAML directory manifest.
func ParseBytes(data []byte) (*Directory, error) {
	var m fileManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDirectory, err)
	}
	return build(&m)
}

// ParseFile reads and parses a manifest file.
func ParseFile(path string) (*Directory, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is validated by caller
	if err != nil {
		return nil, fmt.Errorf("directory: read file: %w", err)
	}
	return ParseBytes(data)
}

// ParseFS reads and parses a manifest from fs.FS (e.g. embed.FS).
func ParseFS(fsys fs.FS, name string) (*Directory, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("directory: read fs: %w", err)
	}
	return ParseBytes(data)
}

func build(m *fileManifest) (*Directory, error) {
	validRoles := map[teibun.Role]bool{
		teibun.RoleGeneral:    true,
		teibun.RoleAdmin:      true,
		teibun.RoleSuperAdmin: true,
	}
	d := &Directory{}
	for i, dept := range m.Departments {
		name := strings.TrimSpace(dept.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: department %d: missing name", ErrInvalidDirectory, i)
		}
		if dept.File == "" {
			return nil, fmt.Errorf("%w: department %q: missing file", ErrInvalidDirectory, name)
		}
		d.Departments = append(d.Departments, teibun.Department{Name: name, XMLFileID: dept.File})
	}
	for i, mem := range m.Members {
		if mem.Email == "" {
			return nil, fmt.Errorf("%w: member %d: missing email", ErrInvalidDirectory, i)
		}
		role := teibun.Role(mem.Role)
		if mem.Role == "" {
			role = teibun.RoleGeneral
		}
		if !validRoles[role] {
			return nil, fmt.Errorf("%w: member %q: invalid role %q", ErrInvalidDirectory, mem.Email, mem.Role)
		}
		d.Members = append(d.Members, teibun.Member{
			Name:        mem.Name,
			Email:       mem.Email,
			Role:        role,
			Departments: mem.Departments,
		})
	}
	return d, nil
}

// MemberByEmail returns the member with the given email.
func (d *Directory) MemberByEmail(email string) (teibun.Member, bool) {
	for _, m := range d.Members {
		if m.Email == email {
			return m, true
		}
	}
	return teibun.Member{}, false
}

// Department returns the department with the given trimmed name.
func (d *Directory) Department(name string) (teibun.Department, bool) {
	name = strings.TrimSpace(name)
	for _, dept := range d.Departments {
		if dept.Name == name {
			return dept, true
		}
	}
	return teibun.Department{}, false
}

// DepartmentsFor returns the departments the member belongs to, in manifest
// order. Departments named in the member entry but absent from the manifest
// are skipped.
func (d *Directory) DepartmentsFor(m teibun.Member) []teibun.Department {
	var out []teibun.Department
	for _, dept := range d.Departments {
		if m.HasDepartment(dept.Name) {
			out = append(out, dept)
		}
	}
	return out
}
