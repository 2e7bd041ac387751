package mastersource

import "time"

// Option configures a Source.
type Option func(*Source)

// WithTTL sets how long decoded catalogs stay cached. Zero or negative
// disables expiry (entries live until evicted).
func WithTTL(ttl time.Duration) Option {
	return func(s *Source) { s.ttl = ttl }
}
