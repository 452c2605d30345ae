package usecase

import "errors"

var (
	// ErrUnknownIndex は固定の指数セットに存在しないコードが指定されたことを示します。
	ErrUnknownIndex = errors.New("unknown index code")

	// ErrUnknownCurrency は固定の通貨セットに存在しないコードが指定されたことを示します。
	ErrUnknownCurrency = errors.New("unknown currency code")

	// ErrUnknownInterval はサポート外のサンプリング間隔が指定されたことを示します。
	ErrUnknownInterval = errors.New("unknown interval")
)
