package usecase

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"forex_backend/internal/feature/chart/domain/entity"
)

// MarketRepository は外部プロバイダーから時系列データを取得するリポジトリの
// インターフェイスです。実装は期間やリクエスト形状に関わらず、フラットな
// スキーマ（timestamp, open, high, low, close）のRawSeriesを保証します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	GetSeries(ctx context.Context, symbol, interval string, lookback time.Duration) (entity.RawSeries, error)
}

// fetchAll は各銘柄を独立に取得し、成功した銘柄のみを結果マップに含めます。
// 失敗（0行またはトランスポートエラー）は銘柄ごとにerrsへ記録され、
// バッチ全体を中断することはありません。呼び出し側は結果マップに
// どの銘柄が存在するかで部分的成功を検出できます。
//
// 銘柄間に順序依存はないため並行に取得しますが、マージ段階は全銘柄の
// 取得が完了（または確定的に失敗）するまで開始されません。
func (cu *ChartUsecase) fetchAll(ctx context.Context, symbols []string, interval string, lookback time.Duration) (map[string]entity.RawSeries, map[string]error) {
	var (
		mu     sync.Mutex
		result = make(map[string]entity.RawSeries, len(symbols))
		errs   = map[string]error{}
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, symbol := range symbols {
		g.Go(func() error {
			cu.rateLimiter.WaitIfNeeded()
			series, err := cu.market.GetSeries(gctx, symbol, interval, lookback)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				errs[symbol] = err
			case len(series.Bars) == 0:
				errs[symbol] = ErrNoData
			default:
				result[symbol] = series
			}
			// 失敗は銘柄ごとに記録済みなので、グループにはエラーを返さない
			return nil
		})
	}
	_ = g.Wait()

	return result, errs
}
