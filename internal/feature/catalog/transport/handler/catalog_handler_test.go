package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"forex_backend/internal/feature/catalog/domain/entity"
	"forex_backend/internal/feature/catalog/transport/handler"
	"forex_backend/internal/feature/catalog/transport/http/dto"
)

// mockCatalogUsecase はCatalogUsecaseインターフェースのモック実装です。
type mockCatalogUsecase struct {
	ListIndicesFunc    func(ctx context.Context) ([]entity.Index, error)
	ListCurrenciesFunc func(ctx context.Context) ([]entity.Currency, error)
	ListIntervalsFunc  func(ctx context.Context) ([]entity.Interval, error)
}

func (m *mockCatalogUsecase) ListIndices(ctx context.Context) ([]entity.Index, error) {
	if m.ListIndicesFunc != nil {
		return m.ListIndicesFunc(ctx)
	}
	return nil, errors.New("ListIndicesFunc is not implemented")
}

func (m *mockCatalogUsecase) ListCurrencies(ctx context.Context) ([]entity.Currency, error) {
	if m.ListCurrenciesFunc != nil {
		return m.ListCurrenciesFunc(ctx)
	}
	return nil, errors.New("ListCurrenciesFunc is not implemented")
}

func (m *mockCatalogUsecase) ListIntervals(ctx context.Context) ([]entity.Interval, error) {
	if m.ListIntervalsFunc != nil {
		return m.ListIntervalsFunc(ctx)
	}
	return nil, errors.New("ListIntervalsFunc is not implemented")
}

func setupCatalogRouter(uc handler.CatalogUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewCatalogHandler(uc)
	r := gin.New()
	r.GET("/catalog/indices", h.ListIndices)
	r.GET("/catalog/currencies", h.ListCurrencies)
	r.GET("/catalog/intervals", h.ListIntervals)
	return r
}

func TestListIndices(t *testing.T) {
	router := setupCatalogRouter(&mockCatalogUsecase{
		ListIndicesFunc: func(ctx context.Context) ([]entity.Index, error) {
			return []entity.Index{
				{Code: "DJI", Name: "Dow Jones Industrial Average", Ticker: "^DJI"},
				{Code: "GSPC", Name: "S&P 500", Ticker: "^GSPC"},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/catalog/indices", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var items []dto.IndexItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 2)
	assert.Equal(t, "DJI", items[0].Code)
	assert.Equal(t, "S&P 500", items[1].Name)
	// プロバイダーティッカーは外部に漏らさない
	assert.NotContains(t, w.Body.String(), "^GSPC")
}

func TestListCurrencies(t *testing.T) {
	router := setupCatalogRouter(&mockCatalogUsecase{
		ListCurrenciesFunc: func(ctx context.Context) ([]entity.Currency, error) {
			return []entity.Currency{{Code: "EUR", Name: "Euro"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/catalog/currencies", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var items []dto.CurrencyItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 1)
	assert.Equal(t, "EUR", items[0].Code)
	assert.Equal(t, "Euro", items[0].Name)
}

func TestListIntervals(t *testing.T) {
	router := setupCatalogRouter(&mockCatalogUsecase{
		ListIntervalsFunc: func(ctx context.Context) ([]entity.Interval, error) {
			return []entity.Interval{
				{Code: "1h", Intraday: true},
				{Code: "1d", Intraday: false},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/catalog/intervals", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var items []dto.IntervalItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 2)
	assert.True(t, items[0].Intraday)
	assert.False(t, items[1].Intraday)
}

func TestCatalogHandlers_UsecaseError(t *testing.T) {
	router := setupCatalogRouter(&mockCatalogUsecase{
		ListIndicesFunc: func(ctx context.Context) ([]entity.Index, error) {
			return nil, errors.New("catalog unavailable")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/catalog/indices", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
