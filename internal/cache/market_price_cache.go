package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harvestlink/harvest_api/internal/models"
)

// MarketPriceCache caches regional reference-price lists. The rows are
// displayed verbatim and change at most a few times per day, so a short
// TTL keeps them fresh without hitting the database on every dashboard
// load.
type MarketPriceCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewMarketPriceCache creates a new MarketPriceCache.
func NewMarketPriceCache(redis *RedisClient, ttl time.Duration) *MarketPriceCache {
	return &MarketPriceCache{redis: redis, ttl: ttl}
}

// key returns the Redis key for one region's price list. The empty region
// keys the all-regions listing.
func (c *MarketPriceCache) key(region string) string {
	if region == "" {
		return "market_prices:all"
	}
	return fmt.Sprintf("market_prices:region:%s", region)
}

// Get retrieves a cached price list for a region. A cache miss surfaces
// as an error from the underlying client.
func (c *MarketPriceCache) Get(ctx context.Context, region string) ([]models.MarketPrice, error) {
	raw, err := c.redis.Get(ctx, c.key(region))
	if err != nil {
		return nil, err
	}

	var prices []models.MarketPrice
	if err := json.Unmarshal([]byte(raw), &prices); err != nil {
		return nil, fmt.Errorf("failed to unmarshal market prices: %w", err)
	}
	return prices, nil
}

// Set stores a price list for a region.
func (c *MarketPriceCache) Set(ctx context.Context, region string, prices []models.MarketPrice) error {
	raw, err := json.Marshal(prices)
	if err != nil {
		return fmt.Errorf("failed to marshal market prices: %w", err)
	}
	return c.redis.Set(ctx, c.key(region), string(raw), c.ttl)
}

// Invalidate drops the cached lists for a region and the all-regions key.
func (c *MarketPriceCache) Invalidate(ctx context.Context, region string) error {
	return c.redis.Delete(ctx, c.key(region), c.key(""))
}
