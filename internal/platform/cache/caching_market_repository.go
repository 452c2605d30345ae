// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"forex_backend/internal/feature/chart/domain/entity"
	"forex_backend/internal/feature/chart/usecase"
	"forex_backend/internal/platform/metrics"
)

// CachingMarketRepository decorates a MarketRepository with Redis memoization.
// Fetch results are keyed by the full set of inputs (symbol, interval,
// lookback), so identical requests within the TTL return identical data
// without touching the provider. Entries are immutable once written.
type CachingMarketRepository struct {
	inner       usecase.MarketRepository
	rdb         *redis.Client
	namespace   string
	intradayTTL time.Duration
}

// CachingMarketRepositoryがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*CachingMarketRepository)(nil)

// NewCachingMarketRepository decorates a MarketRepository with Redis caching.
// If intradayTTL is 0, it defaults to 5 minutes. If namespace is empty, it
// uses "series". Daily series are cached until the next UTC day instead.
func NewCachingMarketRepository(rdb *redis.Client, intradayTTL time.Duration, inner usecase.MarketRepository, namespace string) *CachingMarketRepository {
	if intradayTTL <= 0 {
		intradayTTL = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "series"
	}
	return &CachingMarketRepository{
		inner:       inner,
		rdb:         rdb,
		namespace:   namespace,
		intradayTTL: intradayTTL,
	}
}

// GetSeries retrieves a series, checking the cache first then falling back
// to the provider. Caching is best effort: a broken cache never fails a fetch.
func (c *CachingMarketRepository) GetSeries(ctx context.Context, symbol, interval string, lookback time.Duration) (entity.RawSeries, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.GetSeries(ctx, symbol, interval, lookback)
	}

	key := c.cacheKey(symbol, interval, lookback)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.RawSeries
		if err := json.Unmarshal(b, &out); err == nil {
			metrics.CacheHits.Inc()
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}
	metrics.CacheMisses.Inc()

	// 2) Fallback to provider
	out, err := c.inner.GetSeries(ctx, symbol, interval, lookback)
	if err != nil {
		return out, err
	}

	// 3) Store in cache (best effort); empty results are not cached so a
	// transient provider hiccup does not pin "no data" for a full TTL.
	if len(out.Bars) > 0 {
		if b, err := json.Marshal(out); err == nil {
			_ = c.rdb.Set(ctx, key, b, c.ttlFor(interval)).Err()
		}
	}

	return out, nil
}

// cacheKey generates a cache key from the full set of fetch inputs.
func (c *CachingMarketRepository) cacheKey(symbol, interval string, lookback time.Duration) string {
	return fmt.Sprintf("%s:%s:%s:%d",
		c.namespace,
		safe(symbol),
		safe(interval),
		int64(lookback.Seconds()),
	)
}

// ttlFor は時間足に応じたTTLを返します。日足は翌UTC日まで変化しないため
// 長く、イントラデイは短くキャッシュします。
func (c *CachingMarketRepository) ttlFor(interval string) time.Duration {
	if interval == "1d" {
		return TimeUntilNextUTCDay()
	}
	return c.intradayTTL
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
