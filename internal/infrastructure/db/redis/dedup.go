package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// DedupChecker provides purchase idempotency checks backed by Redis.
// Keys are SET NX with a TTL, so a replayed Idempotency-Key inside the
// window is detected in a single round trip.
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// MarkOnce records key and reports whether this is its first occurrence.
func (d *DedupChecker) MarkOnce(ctx context.Context, key string) (bool, error) {
	ok, err := d.client.SetNX(ctx, "dedup:"+key, "1", dedupTTL).Result()
	if err != nil {
		return false, fmt.Errorf("dedup mark: %w", err)
	}
	return ok, nil
}

// Unmark deletes a claimed key so the same Idempotency-Key can be retried
// after the guarded operation failed.
func (d *DedupChecker) Unmark(ctx context.Context, key string) error {
	if err := d.client.Del(ctx, "dedup:"+key).Err(); err != nil {
		return fmt.Errorf("dedup release: %w", err)
	}
	return nil
}
