package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	redisv9 "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"forex_backend/internal/app/config"
	"forex_backend/internal/app/di"
	"forex_backend/internal/app/router"
	catalogadapters "forex_backend/internal/feature/catalog/adapters"
	cataloghandler "forex_backend/internal/feature/catalog/transport/handler"
	catalogusecase "forex_backend/internal/feature/catalog/usecase"
	charthandler "forex_backend/internal/feature/chart/transport/handler"
	chartusecase "forex_backend/internal/feature/chart/usecase"
	infraredis "forex_backend/internal/platform/redis"
	"forex_backend/internal/shared/ratelimiter"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// .envがあれば読み込む（なければ無視）
	_ = godotenv.Load()

	// グローバルロガー
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.DateTime,
		}),
	))

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("failed to load config", "path", cfgPath, "error", err)
		os.Exit(1)
	}

	// Redis（任意）。未設定・接続不可でもキャッシュなしで継続する
	var rdb *redisv9.Client
	if addr := cfg.RedisAddr(); addr == "" {
		slog.Warn("Redis not configured. Running without fetch memoization.")
	} else if tmp, err := infraredis.NewRedisClient(addr, cfg.Redis.Password); err != nil {
		slog.Warn("Redis unavailable. Running without fetch memoization.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	catalogRepo, err := catalogadapters.NewYAMLCatalog(cfg.CatalogPath)
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	marketRepo := di.NewCachedMarket(rdb, cfg.Cache.IntradayTTL(), cfg.Cache.Namespace)

	// Usecase
	catalogUC := catalogusecase.NewCatalogUsecase(catalogRepo)
	chartUC := chartusecase.NewChartUsecase(marketRepo, ratelimiter.NewRateLimiter(60, time.Minute))

	// Handler
	chartH := charthandler.NewChartHandler(chartUC, catalogUC)
	catalogH := cataloghandler.NewCatalogHandler(catalogUC)

	// ルータ生成
	r := router.NewRouter(chartH, catalogH)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("starting server", "listen_address", cfg.ListenAddr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			cancel()
			return err
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		slog.Info("shutting down server gracefully")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server terminated", "error", err)
		os.Exit(1)
	}
}
