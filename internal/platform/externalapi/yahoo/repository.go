package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"forex_backend/internal/feature/chart/domain/entity"
	"forex_backend/internal/feature/chart/usecase"
	"forex_backend/internal/platform/externalapi/yahoo/dto"
	"forex_backend/internal/platform/metrics"
)

// YahooMarket はYahoo Financeのchart APIから時系列データを取得する
// MarketRepository実装です。リクエスト形状に関わらず、フラットなスキーマ
// （timestamp, open, high, low, close）のRawSeriesを返すことを保証します。
type YahooMarket struct {
	cfg    Config
	client *http.Client
}

// YahooMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket は指定された設定とHTTPクライアントでYahooMarketの新しいインスタンスを生成します。
func NewYahooMarket(cfg Config, client *http.Client) *YahooMarket {
	return &YahooMarket{cfg: cfg, client: client}
}

// GetSeries は指定銘柄の時系列データを取得し、entity.RawSeriesとして返します。
//
// 期間はrangeトークンではなくperiod1/period2のエポック秒で指定します。
// 任意のルックバック幅を表現でき、返却形状も単一系列に固定されるためです。
// 全クオートがnullのバー（休場など）は除外し、タイムスタンプ昇順で返します。
// プロバイダーが0行を返した場合はエラーではなく空のRawSeriesを返し、
// 呼び出し側が「データなし」として分類できるようにします。
func (y *YahooMarket) GetSeries(ctx context.Context, symbol, interval string, lookback time.Duration) (entity.RawSeries, error) {
	series := entity.RawSeries{Symbol: symbol, Interval: interval}

	now := time.Now()
	q := url.Values{}
	q.Set("interval", interval)
	q.Set("period1", strconv.FormatInt(now.Add(-lookback).Unix(), 10))
	q.Set("period2", strconv.FormatInt(now.Unix(), 10))

	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", y.cfg.BaseURL, url.PathEscape(symbol), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return series, err
	}
	req.Header.Set("User-Agent", y.cfg.UserAgent)

	res, err := y.client.Do(req)
	if err != nil {
		metrics.FetchTotal.WithLabelValues(symbol, "error").Inc()
		return series, fmt.Errorf("yahoo fetch %s: %w", symbol, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		metrics.FetchTotal.WithLabelValues(symbol, "error").Inc()
		return series, fmt.Errorf("yahoo http %d for %s", res.StatusCode, symbol)
	}

	var body dto.ChartResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		metrics.FetchTotal.WithLabelValues(symbol, "error").Inc()
		return series, fmt.Errorf("yahoo decode %s: %w", symbol, err)
	}
	if body.Chart.Error != nil {
		metrics.FetchTotal.WithLabelValues(symbol, "error").Inc()
		return series, fmt.Errorf("yahoo api error for %s: %s", symbol, body.Chart.Error.Description)
	}

	metrics.FetchTotal.WithLabelValues(symbol, "ok").Inc()

	if len(body.Chart.Result) == 0 || len(body.Chart.Result[0].Indicators.Quote) == 0 {
		// プロバイダーがエラーなしで空応答を返した場合。「データなし」の分類は呼び出し側で行う
		return series, nil
	}

	result := body.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	series.Bars = make([]entity.Bar, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		if i >= len(quote.Open) || i >= len(quote.High) || i >= len(quote.Low) || i >= len(quote.Close) {
			break
		}
		// 全クオートがnullのバー（休場など）は除外
		if quote.Open[i] == nil || quote.High[i] == nil || quote.Low[i] == nil || quote.Close[i] == nil {
			continue
		}
		series.Bars = append(series.Bars, entity.Bar{
			Time:  time.Unix(ts, 0).UTC(),
			Open:  *quote.Open[i],
			High:  *quote.High[i],
			Low:   *quote.Low[i],
			Close: *quote.Close[i],
		})
	}

	sort.Slice(series.Bars, func(i, j int) bool { return series.Bars[i].Time.Before(series.Bars[j].Time) })
	return series, nil
}
