// Package handler はchartフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	catalogentity "forex_backend/internal/feature/catalog/domain/entity"
	catalogusecase "forex_backend/internal/feature/catalog/usecase"
	"forex_backend/internal/feature/chart/export"
	"forex_backend/internal/feature/chart/transport/http/dto"
	"forex_backend/internal/feature/chart/usecase"
)

// チャートスタイルの固定セットです。サーバー側の処理には影響せず、
// プレゼンテーション層のためにそのままレスポンスへ反映されます。
const (
	StyleLine   = "line"
	StyleCandle = "candlestick"
)

// ChartUsecase はチャートパイプラインのユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ChartUsecase interface {
	BuildChart(ctx context.Context, req usecase.ChartRequest) (*usecase.Chart, error)
}

// CatalogUsecase は入力コードの解決に必要なカタログ参照のインターフェースです。
type CatalogUsecase interface {
	ResolveIndex(ctx context.Context, code string) (catalogentity.Index, error)
	ResolveCurrency(ctx context.Context, code string) (catalogentity.Currency, error)
	LookbackFor(interval string) (time.Duration, error)
}

// ChartHandler はチャートデータのHTTPリクエストを処理します。
type ChartHandler struct {
	uc      ChartUsecase
	catalog CatalogUsecase
}

// NewChartHandler は指定されたusecaseでChartHandlerの新しいインスタンスを生成します。
func NewChartHandler(uc ChartUsecase, catalog CatalogUsecase) *ChartHandler {
	return &ChartHandler{uc: uc, catalog: catalog}
}

// GetChartHandler は設定一式を受け取り、チャートデータをJSONで返します。
// レコードは表示用に新しい順で返されます。
//
// エンドポイント例:
// GET /chart?index=GSPC&currency=EUR&interval=1h&ma20=true&ma50=false&style=line
func (h *ChartHandler) GetChartHandler(c *gin.Context) {
	req, idx, style, ok := h.parseRequest(c)
	if !ok {
		return
	}

	chart, err := h.uc.BuildChart(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	series := chart.Series
	out := dto.ChartResponse{
		Index:    idx.Code,
		Name:     idx.Name,
		Base:     series.Base,
		Currency: series.Target,
		Interval: series.Interval,
		Style:    style,
		Columns:  columnNames(series.Base, series.Target, req.Windows),
		Warnings: chart.Warnings,
		Records:  make([]dto.ChartRecord, 0, len(series.Bars)),
	}
	if chart.Quote != nil {
		out.Quote = &dto.QuoteResponse{
			Price: chart.Quote.Close,
			Delta: chart.Quote.Delta,
			Pct:   chart.Quote.Pct,
		}
	}

	// 表示は新しい順
	for i := len(series.Bars) - 1; i >= 0; i-- {
		b := series.Bars[i]
		rec := dto.ChartRecord{
			Time:      b.Time.UTC().Format(time.RFC3339),
			Open:      b.Open,
			High:      b.High,
			Low:       b.Low,
			Close:     b.Close,
			Rate:      b.Rate,
			ConvOpen:  b.ConvOpen,
			ConvHigh:  b.ConvHigh,
			ConvLow:   b.ConvLow,
			ConvClose: b.ConvClose,
		}
		if col, ok := series.MA[20]; ok {
			rec.MA20 = col[i]
		}
		if col, ok := series.MA[50]; ok {
			rec.MA50 = col[i]
		}
		out.Records = append(out.Records, rec)
	}

	c.JSON(http.StatusOK, out)
}

// GetChartCSVHandler は同じパイプラインを実行し、結果を時系列順（昇順）の
// CSVとしてダウンロードさせます。
//
// エンドポイント例:
// GET /chart/csv?index=GSPC&currency=EUR&interval=1d
func (h *ChartHandler) GetChartCSVHandler(c *gin.Context) {
	req, idx, _, ok := h.parseRequest(c)
	if !ok {
		return
	}

	chart, err := h.uc.BuildChart(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	filename := fmt.Sprintf("%s_%s_%s.csv", idx.Code, req.Target, req.Interval)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := export.Marshal(c.Writer, chart.Series); err != nil {
		// ヘッダー送信後はステータスを変えられないため、ログ相当の中断のみ
		_ = c.Error(err)
	}
}

// parseRequest はクエリパラメータを検証し、パイプラインへの入力に変換します。
// 検証エラー時は400を書き込み、ok=falseを返します。
func (h *ChartHandler) parseRequest(c *gin.Context) (usecase.ChartRequest, catalogentity.Index, string, bool) {
	ctx := c.Request.Context()

	indexCode := c.Query("index")
	currencyCode := strings.ToUpper(c.Query("currency"))
	interval := c.DefaultQuery("interval", "1d")
	style := c.DefaultQuery("style", StyleLine)

	if indexCode == "" || currencyCode == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "index and currency are required"})
		return usecase.ChartRequest{}, catalogentity.Index{}, "", false
	}
	if style != StyleLine && style != StyleCandle {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: fmt.Sprintf("unknown style %q", style)})
		return usecase.ChartRequest{}, catalogentity.Index{}, "", false
	}

	idx, err := h.catalog.ResolveIndex(ctx, indexCode)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return usecase.ChartRequest{}, catalogentity.Index{}, "", false
	}
	cur, err := h.catalog.ResolveCurrency(ctx, currencyCode)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return usecase.ChartRequest{}, catalogentity.Index{}, "", false
	}
	lookback, err := h.catalog.LookbackFor(interval)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return usecase.ChartRequest{}, catalogentity.Index{}, "", false
	}

	// 指標トグル。オリジナルのダッシュボードに合わせ20期間のみデフォルトON
	ma20, _ := strconv.ParseBool(c.DefaultQuery("ma20", "true"))
	ma50, _ := strconv.ParseBool(c.DefaultQuery("ma50", "false"))
	var windows []int
	if ma20 {
		windows = append(windows, 20)
	}
	if ma50 {
		windows = append(windows, 50)
	}

	req := usecase.ChartRequest{
		IndexSymbol: idx.Ticker,
		Base:        catalogusecase.BaseCurrency,
		Target:      cur.Code,
		Interval:    interval,
		Lookback:    lookback,
		Windows:     windows,
	}
	return req, idx, style, true
}

// writeError はパイプラインのエラー種別をHTTPステータスに対応付けます。
// エラーメッセージには取得済み銘柄などの診断情報が含まれています。
func (h *ChartHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrMissingSymbol):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrNoOverlap):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
	}
}

// columnNames はCSVエクスポートと一致するパラメトリックな列名一覧を返します。
func columnNames(base, target string, windows []int) []string {
	cols := []string{
		"time",
		"open_" + strings.ToLower(base),
		"high_" + strings.ToLower(base),
		"low_" + strings.ToLower(base),
		"close_" + strings.ToLower(base),
		"fx_rate",
		"open_" + strings.ToLower(target),
		"high_" + strings.ToLower(target),
		"low_" + strings.ToLower(target),
		"close_" + strings.ToLower(target),
	}
	for _, w := range windows {
		cols = append(cols, fmt.Sprintf("ma_%d", w))
	}
	return cols
}
