package teibun

import (
	"time"

	"github.com/google/uuid"
)

// Clock abstracts time retrieval so catalog mutations are deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// IDGenerator abstracts unique ID generation so tests are deterministic.
// Personal snippets always get a random ID rather than a fingerprint: a user
// may intentionally keep two personal snippets with identical text.
type IDGenerator interface {
	New() string
}

// UUIDGenerator produces random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) New() string { return uuid.New().String() }
