// Package adapters はカタログ（指数・通貨セット）のデータソース実装を提供します。
package adapters

import (
	"context"
	"fmt"
	"os"

	"github.com/Rhymond/go-money"
	"gopkg.in/yaml.v3"

	"forex_backend/internal/feature/catalog/domain/entity"
)

// defaultIndices は組み込みの指数セットです。
var defaultIndices = []entity.Index{
	{Code: "DJI", Name: "Dow Jones Industrial Average", Ticker: "^DJI"},
	{Code: "GSPC", Name: "S&P 500", Ticker: "^GSPC"},
	{Code: "IXIC", Name: "NASDAQ Composite", Ticker: "^IXIC"},
	{Code: "FTSE", Name: "FTSE 100", Ticker: "^FTSE"},
	{Code: "GDAXI", Name: "DAX", Ticker: "^GDAXI"},
}

// defaultCurrencies は組み込みの換算先通貨セットです。
var defaultCurrencies = []string{"EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "CNY"}

// catalogFile はYAMLカタログファイルの構造です。
type catalogFile struct {
	Indices []struct {
		Code   string `yaml:"code"`
		Name   string `yaml:"name"`
		Ticker string `yaml:"ticker"`
	} `yaml:"indices"`
	Currencies []string `yaml:"currencies"`
}

// YAMLCatalog はCatalogRepositoryの実装で、組み込みデフォルトを
// YAMLファイルで上書きできます。読み込みは起動時の1回だけです。
type YAMLCatalog struct {
	indices    []entity.Index
	currencies []entity.Currency
}

// NewYAMLCatalog はカタログを構築します。pathが空、またはファイルが
// 存在しない場合は組み込みデフォルトを使用します。通貨コードは
// ISO 4217として妥当かを検証します。
func NewYAMLCatalog(path string) (*YAMLCatalog, error) {
	indices := defaultIndices
	codes := defaultCurrencies

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		if len(data) > 0 {
			var f catalogFile
			if err := yaml.Unmarshal(data, &f); err != nil {
				return nil, fmt.Errorf("parse catalog: %w", err)
			}
			if len(f.Indices) > 0 {
				indices = indices[:0:0]
				for _, in := range f.Indices {
					if in.Code == "" || in.Ticker == "" {
						return nil, fmt.Errorf("catalog index entry missing code or ticker: %+v", in)
					}
					indices = append(indices, entity.Index{Code: in.Code, Name: in.Name, Ticker: in.Ticker})
				}
			}
			if len(f.Currencies) > 0 {
				codes = f.Currencies
			}
		}
	}

	currencies := make([]entity.Currency, 0, len(codes))
	for _, code := range codes {
		cur := money.GetCurrency(code)
		if cur == nil {
			return nil, fmt.Errorf("catalog currency %q is not a valid ISO 4217 code", code)
		}
		currencies = append(currencies, entity.Currency{Code: cur.Code, Name: currencyName(cur.Code)})
	}

	return &YAMLCatalog{indices: indices, currencies: currencies}, nil
}

// ListIndices returns the configured index set.
func (c *YAMLCatalog) ListIndices(ctx context.Context) ([]entity.Index, error) {
	out := make([]entity.Index, len(c.indices))
	copy(out, c.indices)
	return out, nil
}

// ListCurrencies returns the configured currency set.
func (c *YAMLCatalog) ListCurrencies(ctx context.Context) ([]entity.Currency, error) {
	out := make([]entity.Currency, len(c.currencies))
	copy(out, c.currencies)
	return out, nil
}

// currencyName は表示名を返します。go-moneyは表示名を持たないため、
// 主要通貨のみ名前を持ち、それ以外はコードをそのまま使います。
func currencyName(code string) string {
	names := map[string]string{
		"EUR": "Euro",
		"GBP": "British Pound",
		"JPY": "Japanese Yen",
		"AUD": "Australian Dollar",
		"CAD": "Canadian Dollar",
		"CHF": "Swiss Franc",
		"CNY": "Chinese Yuan",
	}
	if n, ok := names[code]; ok {
		return n
	}
	return code
}
