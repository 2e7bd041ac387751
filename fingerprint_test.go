package teibun

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_Deterministic(t *testing.T) {
	t.Parallel()
	a := Fingerprint("営業", "挨拶", "お世話になっております")
	b := Fingerprint("営業", "挨拶", "お世話になっております")
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "snippet_"))
}

func TestFingerprint_KnownValue(t *testing.T) {
	t.Parallel()
	// "a_b_" folds to 2984155, which is 1ryl7 in base-36.
	assert.Equal(t, "snippet_1ryl7", Fingerprint("a", "b", ""))
}

func TestFingerprint_ContentTruncation(t *testing.T) {
	t.Parallel()
	base := strings.Repeat("あ", 100)
	a := Fingerprint("総務", "案内", base)
	b := Fingerprint("総務", "案内", base+"末尾の修正は同一視される")
	assert.Equal(t, a, b, "edits beyond the 100-character prefix must not change identity")

	c := Fingerprint("総務", "案内", strings.Repeat("あ", 99)+"い")
	assert.NotEqual(t, a, c, "edits within the prefix must change identity")
}

func TestFingerprint_DistinguishesInputs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name                   string
		folder, title, content string
	}{
		{"different folder", "人事", "挨拶", "お世話になっております"},
		{"different title", "営業", "御礼", "お世話になっております"},
		{"different content", "営業", "挨拶", "いつもありがとうございます"},
	}
	base := Fingerprint("営業", "挨拶", "お世話になっております")
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.NotEqual(t, base, Fingerprint(tt.folder, tt.title, tt.content))
		})
	}
}

func TestFingerprint_Base36Output(t *testing.T) {
	t.Parallel()
	// Long content forces the 32-bit accumulator through several wraparounds;
	// the rendered value must still be non-negative base-36.
	fp := Fingerprint("営業", "長文", strings.Repeat("定型文を共有するための本文です。", 20))
	rest := strings.TrimPrefix(fp, "snippet_")
	require.NotEmpty(t, rest)
	assert.NotContains(t, rest, "-")
	for _, r := range rest {
		assert.Contains(t, "0123456789abcdefghijklmnopqrstuvwxyz", string(r))
	}
}

func TestFingerprint_EmptyInputs(t *testing.T) {
	t.Parallel()
	a := Fingerprint("", "", "")
	b := Fingerprint("", "", "")
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "snippet_"))
}
