// Package usecase implements the business logic for catalog lookups:
// the fixed sets of indices, target currencies, and sampling intervals.
package usecase

import (
	"context"
	"fmt"
	"time"

	"forex_backend/internal/feature/catalog/domain/entity"
)

const (
	// BaseCurrency は基準通貨です。主要指数はUSD建てのため固定です。
	BaseCurrency = "USD"

	// intradayLookback はイントラデイ時間足のルックバック幅です。
	// プロバイダーがイントラデイ粒度で返す最大期間（約59日）に合わせています。
	intradayLookback = 59 * 24 * time.Hour

	// dailyLookback は日足のルックバック幅（1年）です。
	dailyLookback = 365 * 24 * time.Hour
)

// intervals はサポートするサンプリング間隔の固定セットです。
var intervals = []entity.Interval{
	{Code: "1m", Intraday: true},
	{Code: "5m", Intraday: true},
	{Code: "15m", Intraday: true},
	{Code: "30m", Intraday: true},
	{Code: "1h", Intraday: true},
	{Code: "1d", Intraday: false},
}

// CatalogRepository abstracts the source of the index and currency sets.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CatalogRepository interface {
	ListIndices(ctx context.Context) ([]entity.Index, error)
	ListCurrencies(ctx context.Context) ([]entity.Currency, error)
}

// CatalogUsecase provides lookups over the fixed configuration sets.
type CatalogUsecase struct {
	repo CatalogRepository
}

// NewCatalogUsecase creates a new CatalogUsecase with the given repository.
func NewCatalogUsecase(r CatalogRepository) *CatalogUsecase {
	return &CatalogUsecase{repo: r}
}

// ListIndices returns the fixed set of selectable market indices.
func (u *CatalogUsecase) ListIndices(ctx context.Context) ([]entity.Index, error) {
	return u.repo.ListIndices(ctx)
}

// ListCurrencies returns the fixed set of selectable target currencies.
func (u *CatalogUsecase) ListCurrencies(ctx context.Context) ([]entity.Currency, error) {
	return u.repo.ListCurrencies(ctx)
}

// ListIntervals returns the supported sampling intervals.
func (u *CatalogUsecase) ListIntervals(ctx context.Context) ([]entity.Interval, error) {
	out := make([]entity.Interval, len(intervals))
	copy(out, intervals)
	return out, nil
}

// ResolveIndex は指数コードをプロバイダーティッカー付きのエンティティに解決します。
func (u *CatalogUsecase) ResolveIndex(ctx context.Context, code string) (entity.Index, error) {
	indices, err := u.repo.ListIndices(ctx)
	if err != nil {
		return entity.Index{}, err
	}
	for _, idx := range indices {
		if idx.Code == code {
			return idx, nil
		}
	}
	return entity.Index{}, fmt.Errorf("%w: %q", ErrUnknownIndex, code)
}

// ResolveCurrency は通貨コードを固定セットの中から解決します。
func (u *CatalogUsecase) ResolveCurrency(ctx context.Context, code string) (entity.Currency, error) {
	currencies, err := u.repo.ListCurrencies(ctx)
	if err != nil {
		return entity.Currency{}, err
	}
	for _, cur := range currencies {
		if cur.Code == code {
			return cur, nil
		}
	}
	return entity.Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
}

// LookbackFor は時間足からルックバック幅を導出します。イントラデイは
// プロバイダー上限の約59日、日足は1年です。
func (u *CatalogUsecase) LookbackFor(interval string) (time.Duration, error) {
	for _, iv := range intervals {
		if iv.Code == interval {
			if iv.Intraday {
				return intradayLookback, nil
			}
			return dailyLookback, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownInterval, interval)
}
