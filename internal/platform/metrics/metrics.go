// Package metrics はPrometheusメトリクスの定義と公開ハンドラーを提供します。
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// FetchTotal counts market data fetches by symbol and outcome.
	FetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "market_fetch_total",
		Help: "Total number of market data fetch attempts, labeled by symbol and status.",
	}, []string{"symbol", "status"})

	// CacheHits counts fetch results served from the Redis memoization cache.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "market_cache_hits_total",
		Help: "Total number of fetch results served from cache.",
	})

	// CacheMisses counts fetch requests that fell through to the provider.
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "market_cache_misses_total",
		Help: "Total number of fetch requests that missed the cache.",
	})
)

// Handler returns the Prometheus exposition handler for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
