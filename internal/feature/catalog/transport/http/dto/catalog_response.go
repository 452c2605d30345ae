package dto

// IndexItem は指数一覧の1要素です。
type IndexItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CurrencyItem は通貨一覧の1要素です。
type CurrencyItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// IntervalItem はサンプリング間隔一覧の1要素です。
type IntervalItem struct {
	Code     string `json:"code"`
	Intraday bool   `json:"intraday"`
}
