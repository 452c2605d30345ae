package usecase_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"forex_backend/internal/feature/chart/domain/entity"
	"forex_backend/internal/feature/chart/usecase"
)

// seriesAt は時刻オフセット（時間単位）と終値の組からRawSeriesを組み立てるテストヘルパーです。
func seriesAt(symbol, interval string, hours []int, closes []float64) entity.RawSeries {
	base := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	s := entity.RawSeries{Symbol: symbol, Interval: interval}
	for i, h := range hours {
		c := closes[i]
		s.Bars = append(s.Bars, entity.Bar{
			Time:  base.Add(time.Duration(h) * time.Hour),
			Open:  c - 1,
			High:  c + 2,
			Low:   c - 2,
			Close: c,
		})
	}
	return s
}

// TestMergeConvert_InnerJoin は両系列に存在するタイムスタンプのみが残り、
// 換算値が「基準値 × レート」と正確に一致することを検証します。
func TestMergeConvert_InnerJoin(t *testing.T) {
	t.Parallel()

	index := seriesAt("^GSPC", "1h", []int{1, 2, 3}, []float64{100, 110, 120})
	fx := seriesAt("USDEUR=X", "1h", []int{2, 3, 4}, []float64{0.9, 0.95, 1.0})

	merged, err := usecase.MergeConvert(index, fx, "USD", "EUR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 共通タイムスタンプは2つ（offset 2, 3）
	if len(merged.Bars) != 2 {
		t.Fatalf("expected 2 merged bars, got %d", len(merged.Bars))
	}
	// マージ結果は入力のどちらよりも長くならない
	if len(merged.Bars) > len(index.Bars) || len(merged.Bars) > len(fx.Bars) {
		t.Errorf("merged length %d exceeds input lengths %d/%d", len(merged.Bars), len(index.Bars), len(fx.Bars))
	}

	for _, b := range merged.Bars {
		for name, pair := range map[string][2]float64{
			"open":  {b.Open, b.ConvOpen},
			"high":  {b.High, b.ConvHigh},
			"low":   {b.Low, b.ConvLow},
			"close": {b.Close, b.ConvClose},
		} {
			want := pair[0] * b.Rate
			if math.Abs(pair[1]-want) > 1e-12 {
				t.Errorf("%s at %v: got %v, want %v", name, b.Time, pair[1], want)
			}
		}
	}

	if merged.Base != "USD" || merged.Target != "EUR" {
		t.Errorf("unexpected currency codes: base=%s target=%s", merged.Base, merged.Target)
	}
}

// TestMergeConvert_IdenticalTimestamps はタイムスタンプ集合が同一のとき、
// マージ結果の長さが入力と等しくなることを検証します。
func TestMergeConvert_IdenticalTimestamps(t *testing.T) {
	t.Parallel()

	index := seriesAt("^DJI", "1d", []int{0, 24, 48}, []float64{100, 101, 102})
	fx := seriesAt("USDJPY=X", "1d", []int{0, 24, 48}, []float64{150, 151, 152})

	merged, err := usecase.MergeConvert(index, fx, "USD", "JPY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(merged.Bars) != 3 {
		t.Errorf("expected 3 merged bars, got %d", len(merged.Bars))
	}
}

// TestMergeConvert_NoOverlap は共通タイムスタンプが存在しない場合に
// ErrNoOverlapが返ることを検証します。クラッシュではなくエラーです。
func TestMergeConvert_NoOverlap(t *testing.T) {
	t.Parallel()

	index := seriesAt("^GSPC", "1h", []int{1, 2, 3}, []float64{100, 110, 120})
	fx := seriesAt("USDEUR=X", "1h", []int{4, 5, 6}, []float64{0.9, 0.95, 1.0})

	merged, err := usecase.MergeConvert(index, fx, "USD", "EUR")
	if !errors.Is(err, usecase.ErrNoOverlap) {
		t.Fatalf("expected ErrNoOverlap, got %v", err)
	}
	if len(merged.Bars) != 0 {
		t.Errorf("expected empty merged series, got %d bars", len(merged.Bars))
	}
}

// TestMergeConvert_AnomalousRate はレートが0や負でも換算が算術どおり行われ、
// 異常値が隠されずそのまま出力されることを検証します。
func TestMergeConvert_AnomalousRate(t *testing.T) {
	t.Parallel()

	index := seriesAt("^GSPC", "1h", []int{1, 2}, []float64{100, 100})
	fx := seriesAt("USDEUR=X", "1h", []int{1, 2}, []float64{0, -0.5})

	merged, err := usecase.MergeConvert(index, fx, "USD", "EUR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if merged.Bars[0].ConvClose != 0 {
		t.Errorf("expected zero converted close, got %v", merged.Bars[0].ConvClose)
	}
	if merged.Bars[1].ConvClose != -50 {
		t.Errorf("expected -50 converted close, got %v", merged.Bars[1].ConvClose)
	}
}
