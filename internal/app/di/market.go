// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"forex_backend/internal/feature/chart/usecase"
	"forex_backend/internal/platform/cache"
	"forex_backend/internal/platform/externalapi/yahoo"
	infrahttp "forex_backend/internal/platform/http"
)

// NewMarket creates a fully configured YahooMarket with HTTP client.
func NewMarket() *yahoo.YahooMarket {
	cfg := yahoo.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return yahoo.NewYahooMarket(cfg, httpClient)
}

// NewCachedMarket はYahooMarketをRedisメモ化でラップしたMarketRepositoryを返します。
// rdbがnilの場合、キャッシュは透過的にバイパスされます。
func NewCachedMarket(rdb *redis.Client, intradayTTL time.Duration, namespace string) usecase.MarketRepository {
	return cache.NewCachingMarketRepository(rdb, intradayTTL, NewMarket(), namespace)
}
