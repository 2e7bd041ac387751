// Package interchange implements the XML snippet/folder interchange format:
// a permissive decoder that never fails on malformed input, and the matching
// encoder. The master documents are hand-maintained by non-engineers, so
// decoding is best effort: tag case is ignored, unknown elements are skipped,
// and garbled structure degrades to a partial or empty folder list.
package interchange
