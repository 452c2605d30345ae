package dto

// ChartRecord は結合済み1レコードのレスポンスDTOです。
// open_usd〜close_usd が基準通貨建て、open_conv〜close_conv が対象通貨建てです。
// ma_20 / ma_50 は未定義区間（先頭 window-1 件）では省略されます。
type ChartRecord struct {
	Time      string   `json:"time"`       // タイムスタンプ（RFC3339, UTC）
	Open      float64  `json:"open_usd"`   // 始値（USD）
	High      float64  `json:"high_usd"`   // 高値（USD）
	Low       float64  `json:"low_usd"`    // 安値（USD）
	Close     float64  `json:"close_usd"`  // 終値（USD）
	Rate      float64  `json:"fx_rate"`    // 為替レート
	ConvOpen  float64  `json:"open_conv"`  // 始値（対象通貨）
	ConvHigh  float64  `json:"high_conv"`  // 高値（対象通貨）
	ConvLow   float64  `json:"low_conv"`   // 安値（対象通貨）
	ConvClose float64  `json:"close_conv"` // 終値（対象通貨）
	MA20      *float64 `json:"ma_20,omitempty"`
	MA50      *float64 `json:"ma_50,omitempty"`
}

// QuoteResponse は最新価格サマリーのレスポンスDTOです。
type QuoteResponse struct {
	Price float64  `json:"price"`         // 最新の換算終値
	Delta float64  `json:"delta"`         // 直前バーとの差分
	Pct   *float64 `json:"pct,omitempty"` // 変化率（%）。直前終値が0の場合は省略
}

// ChartResponse はチャートデータ一式のレスポンスDTOです。
// Columns はCSVエクスポートと同じパラメトリックな列名
// （例: close_eur）の一覧で、対象通貨を事前に知らないクライアントが
// 列を特定するために使います。
type ChartResponse struct {
	Index    string         `json:"index"`
	Name     string         `json:"name"`
	Base     string         `json:"base_currency"`
	Currency string         `json:"target_currency"`
	Interval string         `json:"interval"`
	Style    string         `json:"style"`
	Columns  []string       `json:"columns"`
	Quote    *QuoteResponse `json:"quote,omitempty"`
	Warnings []string       `json:"warnings,omitempty"`
	Records  []ChartRecord  `json:"records"`
}

// ErrorResponse はエラー時の共通レスポンスDTOです。
type ErrorResponse struct {
	Error string `json:"error"`
}
