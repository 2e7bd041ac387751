package interchange

import (
	"fmt"
	"testing"
	"time"

	"github.com/kosuda/teibun"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seqGen struct{ n int }

func (g *seqGen) New() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

const exportDoc = `<folders>
  <folder>
    <title>メモ</title>
    <snippets>
      <snippet>
        <id>old-device-id</id>
        <title>自分用</title>
        <content>本文</content>
      </snippet>
    </snippets>
  </folder>
</folders>`

func TestImportPersonal(t *testing.T) {
	t.Parallel()
	gen := &seqGen{}
	clock := fixedClock{at: time.Date(2026, time.January, 31, 9, 0, 0, 0, time.UTC)}

	got := ImportPersonal(nil, []byte(exportDoc), gen, clock)
	require.Len(t, got, 1)
	require.Len(t, got[0].Snippets, 1)

	s := got[0].Snippets[0]
	assert.Equal(t, teibun.TypePersonal, s.Type)
	assert.NotEqual(t, "old-device-id", s.ID, "imported snippets are re-created with fresh IDs")
	assert.Equal(t, clock.at, s.CreatedAt)
}

func TestImportPersonal_MergesSameNamedPersonalFolder(t *testing.T) {
	t.Parallel()
	gen := &seqGen{}
	clock := fixedClock{at: time.Date(2026, time.January, 31, 9, 0, 0, 0, time.UTC)}

	existing, _ := teibun.Catalog(nil).AddPersonal("メモ", "既存", "本文", "", gen, clock)
	got := ImportPersonal(existing, []byte(exportDoc), gen, clock)
	require.Len(t, got, 1, "import merges into the same-named personal folder")
	assert.Len(t, got[0].Snippets, 2)
}

func TestImportPersonal_TwiceKeepsBothCopies(t *testing.T) {
	t.Parallel()
	gen := &seqGen{}
	clock := fixedClock{at: time.Date(2026, time.January, 31, 9, 0, 0, 0, time.UTC)}

	once := ImportPersonal(nil, []byte(exportDoc), gen, clock)
	twice := ImportPersonal(once, []byte(exportDoc), gen, clock)
	require.Len(t, twice, 1)
	assert.Len(t, twice[0].Snippets, 2, "identical text stays duplicated on re-import")
}

func TestImportPersonal_MalformedExport(t *testing.T) {
	t.Parallel()
	gen := &seqGen{}
	clock := fixedClock{at: time.Now()}
	existing, _ := teibun.Catalog(nil).AddPersonal("メモ", "既存", "本文", "", gen, clock)

	got := ImportPersonal(existing, []byte("壊れたデータ"), gen, clock)
	assert.Equal(t, existing, got)
}
