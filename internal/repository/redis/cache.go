package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avelinom/vidgate/internal/domain"
)

const (
	dashboardCachePrefix = "dashboard:"
	dashboardCacheTTL    = 30 * time.Second
)

// DashboardCache holds the redacted dashboard listing in Redis. The
// cached value is already stripped of source references, so a cache hit
// can be served verbatim.
type DashboardCache struct {
	client *Client
}

// NewDashboardCache creates a new dashboard cache
func NewDashboardCache(client *Client) *DashboardCache {
	return &DashboardCache{client: client}
}

// Get retrieves the cached listing for a limit. A miss returns (nil, nil).
func (c *DashboardCache) Get(ctx context.Context, limit int64) ([]domain.DashboardItem, error) {
	key := fmt.Sprintf("%s%d", dashboardCachePrefix, limit)

	data, err := c.client.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, nil // Cache miss
	}

	var items []domain.DashboardItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dashboard cache: %w", err)
	}

	return items, nil
}

// Set caches the listing for a limit
func (c *DashboardCache) Set(ctx context.Context, limit int64, items []domain.DashboardItem) error {
	key := fmt.Sprintf("%s%d", dashboardCachePrefix, limit)

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard cache: %w", err)
	}

	return c.client.rdb.Set(ctx, key, data, dashboardCacheTTL).Err()
}

// Invalidate drops all cached listings
func (c *DashboardCache) Invalidate(ctx context.Context) error {
	pattern := dashboardCachePrefix + "*"
	var cursor uint64

	for {
		keys, nextCursor, err := c.client.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan keys: %w", err)
		}

		if len(keys) > 0 {
			if err := c.client.rdb.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete keys: %w", err)
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			return nil
		}
	}
}
