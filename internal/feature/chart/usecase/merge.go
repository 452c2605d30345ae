package usecase

import (
	"fmt"

	"forex_backend/internal/feature/chart/domain/entity"
)

// MergeConvert は指数系列とFX系列をタイムスタンプで内部結合し、
// OHLC各値を基準通貨から対象通貨へ換算します。
//
// 結合は内部結合（inner join）で、両系列に存在するタイムスタンプだけが
// 出力に残ります。前方補完は意図的に行いません。古いレートや欠損レートに
// 対して換算値を計算しないためのポリシーです。
//
// レートが0や負の場合（データ異常）も算術どおり換算します。異常値を
// 黙って除外せず、呼び出し側に見えるようにするためです。
func MergeConvert(index, fx entity.RawSeries, base, target string) (entity.ConvertedSeries, error) {
	out := entity.ConvertedSeries{
		Symbol:   index.Symbol,
		Base:     base,
		Target:   target,
		Interval: index.Interval,
		MA:       map[int][]*float64{},
	}

	// FX系列のタイムスタンプ→レートの索引を作成
	rates := make(map[int64]float64, len(fx.Bars))
	for _, b := range fx.Bars {
		rates[b.Time.UnixNano()] = b.Close
	}

	// 指数系列の順序を保ったまま、両系列に存在するタイムスタンプのみ結合
	for _, b := range index.Bars {
		rate, ok := rates[b.Time.UnixNano()]
		if !ok {
			continue
		}
		out.Bars = append(out.Bars, entity.ConvertedBar{
			Time:      b.Time,
			Open:      b.Open,
			High:      b.High,
			Low:       b.Low,
			Close:     b.Close,
			Rate:      rate,
			ConvOpen:  b.Open * rate,
			ConvHigh:  b.High * rate,
			ConvLow:   b.Low * rate,
			ConvClose: b.Close * rate,
		})
	}

	if len(out.Bars) == 0 {
		return out, fmt.Errorf("%w: index=%d bars, fx=%d bars", ErrNoOverlap, len(index.Bars), len(fx.Bars))
	}
	return out, nil
}
