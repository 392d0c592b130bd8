package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// DedupChecker provides idempotency-key checks backed by Redis.
// Key format: idem:<client_id>:<idempotency_key>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this idempotency key has already been used for
// the client within the dedup window.
func (d *DedupChecker) IsDuplicate(ctx context.Context, clientID, key string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(clientID, key)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that an entry was created under this key (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, clientID, key string) error {
	return d.client.Set(ctx, d.key(clientID, key), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(clientID, key string) string {
	return fmt.Sprintf("idem:%s:%s", clientID, key)
}
