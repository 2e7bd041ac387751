package teibun

import (
	"strconv"
	"unicode/utf8"
)

// fingerprintPrefix tags generated identifiers so they are distinguishable
// from the random IDs of personal snippets.
const fingerprintPrefix = "snippet_"

// fingerprintContentRunes bounds how much content participates in the hash.
// Edits beyond this prefix (typically trailing-whitespace fixes in
// hand-maintained master documents) must not mint a new identity.
const fingerprintContentRunes = 100

// Fingerprint derives a stable identifier from a snippet's logical content.
// The same (folder, title, content prefix) always yields the same ID, so a
// snippet is recognized across re-imports and across platforms without a
// central ID authority. Collisions are theoretically possible and accepted.
//
// The fold is a classic 31-multiplier string hash over code points with
// two's-complement 32-bit wraparound. The wrapping arithmetic is part of the
// interchange contract: identifiers persisted by existing clients depend on
// it bit-for-bit.
func Fingerprint(folder, title, content string) string {
	if utf8.RuneCountInString(content) > fingerprintContentRunes {
		content = string([]rune(content)[:fingerprintContentRunes])
	}
	var h int32
	for _, r := range folder + "_" + title + "_" + content {
		h = h*31 + r
	}
	// Widen before negating: -MinInt32 does not fit in int32.
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return fingerprintPrefix + strconv.FormatInt(v, 36)
}
