package router

import (
	"github.com/gin-gonic/gin"

	cataloghandler "forex_backend/internal/feature/catalog/transport/handler"
	charthandler "forex_backend/internal/feature/chart/transport/handler"
	"forex_backend/internal/platform/http/handler"
	"forex_backend/internal/platform/metrics"
)

func NewRouter(chart *charthandler.ChartHandler, catalog *cataloghandler.CatalogHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", handler.Health)
	// Prometheusメトリクス
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// 選択可能な設定値の一覧
	r.GET("/catalog/indices", catalog.ListIndices)
	r.GET("/catalog/currencies", catalog.ListCurrencies)
	r.GET("/catalog/intervals", catalog.ListIntervals)

	// チャートパイプライン
	r.GET("/chart", chart.GetChartHandler)
	r.GET("/chart/csv", chart.GetChartCSVHandler)

	return r
}
