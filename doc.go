// Package teibun provides the shared snippet catalog core: content-derived
// snippet fingerprints, calendar-aware template expansion, and merging of
// admin-curated master catalogs with locally authored personal snippets.
package teibun
