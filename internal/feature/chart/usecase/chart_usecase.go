// Package usecase はチャートパイプライン（取得→結合・換算→指標→サマリー)の
// ビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"forex_backend/internal/feature/chart/domain/entity"
	"forex_backend/internal/shared/ratelimiter"
)

// ChartRequest は1回のパイプライン実行に必要な設定一式です。
// 指数コード→プロバイダーティッカーの解決は呼び出し側で済んでいる前提です。
// FXペアのティッカーは通貨コードから組み立てます。
type ChartRequest struct {
	IndexSymbol string        // Provider ticker for the index (e.g., "^GSPC")
	Base        string        // Base currency code (USD)
	Target      string        // Target currency code
	Interval    string        // Sampling interval
	Lookback    time.Duration // Lookback window derived from the interval
	Windows     []int         // Requested moving-average windows
}

// Chart はパイプラインの実行結果です。
type Chart struct {
	Series   entity.ConvertedSeries
	Quote    *entity.Quote // nil when fewer than 2 merged points exist
	Warnings []string      // Per-symbol fetch warnings surfaced to the user
}

// ChartUsecase は設定変更のたびに呼び出される、状態を持たない変換チェーンです。
// 同一入力に対しては冪等です（フェッチ段階の外部データ源の変動を除く）。
type ChartUsecase struct {
	market      MarketRepository
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewChartUsecase は新しい ChartUsecase を作成します。
func NewChartUsecase(market MarketRepository, rateLimiter ratelimiter.RateLimiterInterface) *ChartUsecase {
	return &ChartUsecase{market: market, rateLimiter: rateLimiter}
}

// BuildChart はフェッチ→結合・換算→指標→サマリーを1回実行します。
//
// フェッチ失敗は銘柄ごとに警告として収集され、必須の2銘柄が揃わない場合は
// マージ前に停止し、どの銘柄が欠けたか・何が取得できたかを含むエラーを
// 返します。致命的なエラーはなく、すべての失敗はユーザーに提示可能な
// メッセージに解決されます。
func (cu *ChartUsecase) BuildChart(ctx context.Context, req ChartRequest) (*Chart, error) {
	// 通貨ペアのティッカーを組み立て（例: "USDEUR=X"）
	fxSymbol := fmt.Sprintf("%s%s=X", req.Base, req.Target)
	symbols := []string{req.IndexSymbol, fxSymbol}
	fetched, fetchErrs := cu.fetchAll(ctx, symbols, req.Interval, req.Lookback)

	var warnings []string
	for _, s := range symbols {
		if err, ok := fetchErrs[s]; ok {
			warnings = append(warnings, fmt.Sprintf("%s: %v", s, err))
		}
	}

	// 両系列が揃わなければマージに進まない
	var missing []string
	for _, s := range symbols {
		if _, ok := fetched[s]; !ok {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		present := make([]string, 0, len(fetched))
		for s := range fetched {
			present = append(present, s)
		}
		sort.Strings(present)
		return nil, fmt.Errorf("%w: missing %v (fetched: %v)", ErrMissingSymbol, missing, present)
	}

	series, err := MergeConvert(fetched[req.IndexSymbol], fetched[fxSymbol], req.Base, req.Target)
	if err != nil {
		return nil, err
	}

	ApplyIndicators(&series, req.Windows)

	chart := &Chart{Series: series, Warnings: warnings}
	quote, err := ComputeQuote(series)
	switch {
	case err == nil:
		chart.Quote = &quote
	case errors.Is(err, ErrInsufficientHistory):
		// サマリーなしでもチャート自体は返せる
		slog.Warn("quote unavailable", "symbol", req.IndexSymbol, "bars", len(series.Bars))
		warnings = append(warnings, fmt.Sprintf("quote unavailable: %v", err))
		chart.Warnings = warnings
	default:
		return nil, err
	}

	return chart, nil
}
