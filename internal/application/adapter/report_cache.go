package adapter

import (
	"context"
	"time"
)

// ReportCache is a read-through cache for rendered report artifacts, keyed by
// report kind, date range, visibility floor and output format. Aggregation
// itself always recomputes; only rendered bytes are cached.
type ReportCache interface {
	// Get retrieves a cached artifact. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores an artifact with the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}
