package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/restobill/backend/internal/application/adapter"
)

const reportKeyPrefix = "report:"

// reportCache implements adapter.ReportCache on Redis. Only rendered report
// bytes are cached; aggregation always recomputes from the database.
type reportCache struct {
	client *redis.Client
}

// NewReportCache creates a new Redis-backed report artifact cache.
func NewReportCache(client *redis.Client) adapter.ReportCache {
	return &reportCache{
		client: client,
	}
}

// Get retrieves a cached artifact. The second return value reports a hit.
func (c *reportCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, reportKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cached report: %w", err)
	}
	return payload, true, nil
}

// Set stores an artifact with the given TTL.
func (c *reportCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, reportKeyPrefix+key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache report: %w", err)
	}
	return nil
}
