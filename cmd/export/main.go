// チャートパイプラインを1回実行し、CSVエクスポートをファイルに書き出すワンショットCLIです。
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/afero"

	"forex_backend/internal/app/config"
	"forex_backend/internal/app/di"
	catalogadapters "forex_backend/internal/feature/catalog/adapters"
	catalogusecase "forex_backend/internal/feature/catalog/usecase"
	chartexport "forex_backend/internal/feature/chart/export"
	chartusecase "forex_backend/internal/feature/chart/usecase"
	platformexport "forex_backend/internal/platform/export"
	"forex_backend/internal/shared/ratelimiter"
)

func main() {
	indexCode := flag.String("index", "GSPC", "index code (e.g. GSPC, DJI)")
	currency := flag.String("currency", "EUR", "target currency code")
	interval := flag.String("interval", "1d", "sampling interval (1m, 5m, 15m, 30m, 1h, 1d)")
	ma20 := flag.Bool("ma20", true, "include 20-period moving average")
	ma50 := flag.Bool("ma50", false, "include 50-period moving average")
	flag.Parse()

	_ = godotenv.Load()
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{TimeFormat: time.DateTime})))

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	catalogRepo, err := catalogadapters.NewYAMLCatalog(cfg.CatalogPath)
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	catalogUC := catalogusecase.NewCatalogUsecase(catalogRepo)
	chartUC := chartusecase.NewChartUsecase(di.NewMarket(), ratelimiter.NewRateLimiter(60, time.Minute))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	idx, err := catalogUC.ResolveIndex(ctx, *indexCode)
	if err != nil {
		slog.Error("unknown index", "error", err)
		os.Exit(1)
	}
	cur, err := catalogUC.ResolveCurrency(ctx, *currency)
	if err != nil {
		slog.Error("unknown currency", "error", err)
		os.Exit(1)
	}
	lookback, err := catalogUC.LookbackFor(*interval)
	if err != nil {
		slog.Error("unknown interval", "error", err)
		os.Exit(1)
	}

	var windows []int
	if *ma20 {
		windows = append(windows, 20)
	}
	if *ma50 {
		windows = append(windows, 50)
	}

	chart, err := chartUC.BuildChart(ctx, chartusecase.ChartRequest{
		IndexSymbol: idx.Ticker,
		Base:        catalogusecase.BaseCurrency,
		Target:      cur.Code,
		Interval:    *interval,
		Lookback:    lookback,
		Windows:     windows,
	})
	if err != nil {
		slog.Error("pipeline failed", "error", err)
		os.Exit(1)
	}
	for _, w := range chart.Warnings {
		slog.Warn("fetch warning", "warning", w)
	}

	var buf bytes.Buffer
	if err := chartexport.Marshal(&buf, chart.Series); err != nil {
		slog.Error("csv encode failed", "error", err)
		os.Exit(1)
	}

	writer := platformexport.NewWriter(afero.NewOsFs(), cfg.ExportDir)
	name := fmt.Sprintf("%s_%s_%s.csv", idx.Code, cur.Code, *interval)
	path, err := writer.WriteCSV(name, buf.Bytes())
	if err != nil {
		slog.Error("write failed", "error", err)
		os.Exit(1)
	}

	slog.Info("export ok", "path", path, "rows", len(chart.Series.Bars))
}
