// Package entity defines the domain models for the chart feature.
package entity

import "time"

// Bar represents one OHLC sample of a fetched time series.
// FX系列の場合、Closeはその時点の為替レートとして解釈されます。
type Bar struct {
	Time  time.Time // Timestamp for the start of this bar period (UTC)
	Open  float64   // Opening price
	High  float64   // Highest price during this period
	Low   float64   // Lowest price during this period
	Close float64   // Closing price (or FX rate for a currency pair)
}

// RawSeries は1銘柄分の取得済み時系列データです。
// タイムスタンプは狭義単調増加で、取得後は変更されません。
type RawSeries struct {
	Symbol   string // Provider ticker symbol (e.g., "^GSPC", "USDEUR=X")
	Interval string // Sampling interval (e.g., "5m", "1h", "1d")
	Bars     []Bar
}

// ConvertedBar は指数系列とFX系列を同一タイムスタンプで結合した1レコードです。
// 換算値は base値 × Rate で、レートが0や負でもそのまま保持されます。
type ConvertedBar struct {
	Time time.Time

	// 基準通貨（USD）建てのOHLC
	Open  float64
	High  float64
	Low   float64
	Close float64

	// Rate はこのタイムスタンプにおける基準通貨→対象通貨の為替レートです。
	Rate float64

	// 対象通貨建てのOHLC
	ConvOpen  float64
	ConvHigh  float64
	ConvLow   float64
	ConvClose float64
}

// ConvertedSeries は通貨換算済みのマージ結果です。ユーザー設定ごとに
// 純粋関数の出力として再計算され、生成後に変更されることはありません。
type ConvertedSeries struct {
	Symbol   string // Index ticker the series was built from
	Base     string // Base currency code (fixed to USD upstream)
	Target   string // Target currency code (e.g., "EUR")
	Interval string

	Bars []ConvertedBar

	// MA holds one moving-average column per requested window, each the
	// same length as Bars. 先頭の window-1 要素は未定義のためnilです。
	MA map[int][]*float64
}

// Quote は最新の換算終値と直前バーとの差分のサマリーです。
type Quote struct {
	Close float64  // Latest converted close
	Delta float64  // Close - previous close, rounded to 2 decimal places
	Pct   *float64 // Delta as a percentage of the previous close; nil when the previous close is zero
}
