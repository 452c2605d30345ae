// Package handler はcatalogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"forex_backend/internal/feature/catalog/domain/entity"
	"forex_backend/internal/feature/catalog/transport/http/dto"
)

// CatalogUsecase はカタログ参照のユースケースインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CatalogUsecase interface {
	ListIndices(ctx context.Context) ([]entity.Index, error)
	ListCurrencies(ctx context.Context) ([]entity.Currency, error)
	ListIntervals(ctx context.Context) ([]entity.Interval, error)
}

// CatalogHandler は選択可能な指数・通貨・時間足のHTTPリクエストを処理します。
type CatalogHandler struct {
	uc CatalogUsecase
}

// NewCatalogHandler は新しい CatalogHandler を作成します。
func NewCatalogHandler(uc CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListIndices は選択可能な指数の一覧を返します。
//
// エンドポイント例: GET /catalog/indices
func (h *CatalogHandler) ListIndices(c *gin.Context) {
	indices, err := h.uc.ListIndices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.IndexItem, 0, len(indices))
	for _, idx := range indices {
		out = append(out, dto.IndexItem{Code: idx.Code, Name: idx.Name})
	}
	c.JSON(http.StatusOK, out)
}

// ListCurrencies は選択可能な換算先通貨の一覧を返します。
//
// エンドポイント例: GET /catalog/currencies
func (h *CatalogHandler) ListCurrencies(c *gin.Context) {
	currencies, err := h.uc.ListCurrencies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.CurrencyItem, 0, len(currencies))
	for _, cur := range currencies {
		out = append(out, dto.CurrencyItem{Code: cur.Code, Name: cur.Name})
	}
	c.JSON(http.StatusOK, out)
}

// ListIntervals はサポートするサンプリング間隔の一覧を返します。
//
// エンドポイント例: GET /catalog/intervals
func (h *CatalogHandler) ListIntervals(c *gin.Context) {
	ivs, err := h.uc.ListIntervals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.IntervalItem, 0, len(ivs))
	for _, iv := range ivs {
		out = append(out, dto.IntervalItem{Code: iv.Code, Intraday: iv.Intraday})
	}
	c.JSON(http.StatusOK, out)
}
