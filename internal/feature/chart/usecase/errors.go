package usecase

import "errors"

// パイプラインの各段階で発生しうるエラーのセンチネルです。
// ハンドラー側で errors.Is により分類し、HTTPステータスに変換します。
var (
	// ErrNoData はプロバイダーが銘柄に対して0行を返したことを示します。
	ErrNoData = errors.New("no data returned for symbol")

	// ErrMissingSymbol は必須銘柄がフェッチ結果に存在せず、
	// マージ前にパイプラインが停止したことを示します。
	ErrMissingSymbol = errors.New("required symbol missing from fetch results")

	// ErrNoOverlap は指数系列とFX系列に共通のタイムスタンプが
	// 1つも存在しなかったことを示します。フェッチ失敗とは区別されます。
	ErrNoOverlap = errors.New("no overlapping timestamps between index and fx series")

	// ErrInsufficientHistory はサマリー計算に必要な2点未満しか
	// データが存在しないことを示します。
	ErrInsufficientHistory = errors.New("not enough data points")
)
