package directory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kosuda/teibun"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
departments:
  - name: 営業
    file: sales.xml
  - name: 総務
    file: ga.xml
members:
  - name: 青木
    email: aoki@example.co.jp
    role: admin
    departments: [営業]
  - name: 佐藤
    email: sato@example.co.jp
    departments: [営業, 総務]
  - name: 管理者
    email: it@example.co.jp
    role: superAdmin
`

func TestParseBytes(t *testing.T) {
	t.Parallel()
	d, err := ParseBytes([]byte(sampleManifest))
	require.NoError(t, err)

	require.Len(t, d.Departments, 2)
	assert.Equal(t, teibun.Department{Name: "営業", XMLFileID: "sales.xml"}, d.Departments[0])

	require.Len(t, d.Members, 3)
	assert.Equal(t, teibun.RoleAdmin, d.Members[0].Role)
	assert.Equal(t, teibun.RoleGeneral, d.Members[1].Role, "missing role defaults to general")
	assert.Equal(t, teibun.RoleSuperAdmin, d.Members[2].Role)
}

func TestParseBytes_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "{{"},
		{"department without name", "departments:\n  - file: a.xml"},
		{"department without file", "departments:\n  - name: 営業"},
		{"member without email", "members:\n  - name: 青木"},
		{"invalid role", "members:\n  - email: a@example.co.jp\n    role: owner"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseBytes([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidDirectory)
		})
	}
}

func TestParseFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "directory.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0600))

	d, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, d.Members, 3)

	_, err = ParseFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestDirectory_Lookups(t *testing.T) {
	t.Parallel()
	d, err := ParseBytes([]byte(sampleManifest))
	require.NoError(t, err)

	m, ok := d.MemberByEmail("aoki@example.co.jp")
	require.True(t, ok)
	assert.Equal(t, "青木", m.Name)

	_, ok = d.MemberByEmail("nobody@example.co.jp")
	assert.False(t, ok)

	dept, ok := d.Department("総務")
	require.True(t, ok)
	assert.Equal(t, "ga.xml", dept.XMLFileID)

	_, ok = d.Department("法務")
	assert.False(t, ok)
}

func TestDirectory_DepartmentsFor(t *testing.T) {
	t.Parallel()
	d, err := ParseBytes([]byte(sampleManifest))
	require.NoError(t, err)

	sato, ok := d.MemberByEmail("sato@example.co.jp")
	require.True(t, ok)
	depts := d.DepartmentsFor(sato)
	require.Len(t, depts, 2)
	assert.Equal(t, "営業", depts[0].Name)

	aoki, ok := d.MemberByEmail("aoki@example.co.jp")
	require.True(t, ok)
	assert.Len(t, d.DepartmentsFor(aoki), 1)
}
