package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"patrimon/internal/models"
)

// CachingProvider decorates a Provider with Redis caching. It adds
// caching transparently without modifying the underlying provider.
type CachingProvider struct {
	inner     Provider
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ Provider = (*CachingProvider)(nil)

// NewCachingProvider decorates a Provider with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "quotes".
func NewCachingProvider(rdb *redis.Client, ttl time.Duration, inner Provider, namespace string) *CachingProvider {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "quotes"
	}
	return &CachingProvider{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Fetch retrieves a quote, checking the cache first and falling back to
// the underlying provider. Failures from the provider are never cached.
func (c *CachingProvider) Fetch(ctx context.Context, ticker string, category models.AssetCategory) (*Quote, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Fetch(ctx, ticker, category)
	}

	key := c.cacheKey(ticker, category)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var quote Quote
		if err := json.Unmarshal(b, &quote); err == nil {
			return &quote, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fall back to the provider
	quote, err := c.inner.Fetch(ctx, ticker, category)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort: a failed write must not fail the read)
	if b, err := json.Marshal(quote); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return quote, nil
}

// cacheKey builds the Redis key for a ticker/category pair.
func (c *CachingProvider) cacheKey(ticker string, category models.AssetCategory) string {
	return fmt.Sprintf("%s:%s:%s", c.namespace, ticker, category)
}
