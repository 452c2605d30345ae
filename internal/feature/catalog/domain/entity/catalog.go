// Package entity defines the domain models for the catalog feature.
package entity

// Index はユーザーが選択可能な市場指数です。
type Index struct {
	Code   string // Short code used by the API (e.g., "GSPC")
	Name   string // Display name (e.g., "S&P 500")
	Ticker string // Provider ticker (e.g., "^GSPC")
}

// Currency は換算先として選択可能な通貨です。コードはISO 4217です。
type Currency struct {
	Code string // ISO 4217 code (e.g., "EUR")
	Name string // Display name (e.g., "Euro")
}

// Interval はサンプリング間隔です。Intradayのときルックバック幅が短くなります。
type Interval struct {
	Code     string // Provider interval token (e.g., "5m", "1d")
	Intraday bool
}
