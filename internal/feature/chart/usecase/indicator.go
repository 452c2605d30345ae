package usecase

import (
	"github.com/shopspring/decimal"

	"forex_backend/internal/feature/chart/domain/entity"
)

// ApplyIndicators は換算終値の単純移動平均をウィンドウごとに1列ずつ付与します。
// 複数ウィンドウは同一パスで計算されますが、各列の正しさは他の列に依存しません。
// 各列の先頭 window-1 要素は未定義（nil）のままです。
func ApplyIndicators(s *entity.ConvertedSeries, windows []int) {
	if s.MA == nil {
		s.MA = map[int][]*float64{}
	}

	// 無効なウィンドウと重複を除外
	sums := map[int]float64{}
	for _, w := range windows {
		if w <= 0 {
			continue
		}
		if _, ok := s.MA[w]; ok {
			continue
		}
		s.MA[w] = make([]*float64, len(s.Bars))
		sums[w] = 0
	}

	// 各ウィンドウの累積和をスライドさせながら1パスで計算
	for i, b := range s.Bars {
		for w := range sums {
			sums[w] += b.ConvClose
			if i >= w {
				sums[w] -= s.Bars[i-w].ConvClose
			}
			if i >= w-1 {
				v := sums[w] / float64(w)
				s.MA[w][i] = &v
			}
		}
	}
}

// ComputeQuote は最新の換算終値と直前バーとの差分・変化率を計算します。
// 系列が2点未満の場合は ErrInsufficientHistory を返します。
// 直前の終値が0の場合、変化率は定義されません（Pctはnil）。
func ComputeQuote(s entity.ConvertedSeries) (entity.Quote, error) {
	if len(s.Bars) < 2 {
		return entity.Quote{}, ErrInsufficientHistory
	}

	last := s.Bars[len(s.Bars)-1].ConvClose
	prev := s.Bars[len(s.Bars)-2].ConvClose

	q := entity.Quote{
		Close: last,
		Delta: round2(last - prev),
	}
	if prev != 0 {
		pct := round2((last - prev) / prev * 100)
		q.Pct = &pct
	}
	return q, nil
}

// round2 は表示用に小数第2位へ丸めます。浮動小数点の2進誤差を避けるため
// decimalで丸めてから戻します。
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
