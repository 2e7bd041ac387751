// Package mastersource supplies decoded master catalogs by department file
// ID. A Fetcher obtains the raw XML bytes (the filesystem implementation is
// provided; network callers plug in their own), and Source wraps a Fetcher
// with a TTL cache and request deduplication so a periodic sync across many
// clients does not refetch an unchanged document.
package mastersource
