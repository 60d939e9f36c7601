// Package handler はstocksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stockmarket_backend/internal/api"
	"stockmarket_backend/internal/feature/stocks/domain/entity"
	"stockmarket_backend/internal/feature/stocks/transport/http/dto"
	"stockmarket_backend/internal/feature/stocks/usecase"
)

// StockUsecase は株式・セクター操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type StockUsecase interface {
	ListSectors(ctx context.Context) ([]entity.Sector, error)
	ListTop(ctx context.Context, onlyBluetip bool) ([]entity.Stock, error)
	GetByID(ctx context.Context, id uint) (*entity.Stock, error)
	Save(ctx context.Context, stock *entity.Stock) (uint, bool, error)
}

// StockHandler は株式・セクターのHTTPリクエストを処理します。
type StockHandler struct {
	uc StockUsecase
}

// NewStockHandler は指定されたusecaseでStockHandlerの新しいインスタンスを生成します。
func NewStockHandler(uc StockUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// ListSectors はすべてのセクターを取得するAPIです。
//
// GET /api/stocks/sectors
func (h *StockHandler) ListSectors(c *gin.Context) {
	sectors, err := h.uc.ListSectors(c.Request.Context())
	if err != nil {
		slog.Error("list sectors failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "internal server error"})
		return
	}
	out := make([]dto.SectorItem, 0, len(sectors))
	for _, s := range sectors {
		out = append(out, dto.SectorItem{ID: s.ID, Name: s.Name})
	}
	c.JSON(http.StatusOK, dto.SectorsRes{Sectors: out})
}

// ListStocks はセクターを結合した株式を最大16件返すAPIです。
//
// GET /api/stocks/stocks?bluetip=true
func (h *StockHandler) ListStocks(c *gin.Context) {
	// 未指定または解釈不能な値はfalse扱い
	bluetip, _ := strconv.ParseBool(c.DefaultQuery("bluetip", "false"))

	stocks, err := h.uc.ListTop(c.Request.Context(), bluetip)
	if err != nil {
		slog.Error("list stocks failed", "error", err, "bluetip", bluetip)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "internal server error"})
		return
	}
	out := make([]dto.StockItem, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, toStockItem(&s))
	}
	c.JSON(http.StatusOK, dto.StocksRes{Stocks: out})
}

// GetStock は株式をIDで取得するAPIです。
// IDが数値として解釈できない場合も、該当行が存在しない場合も404を返します。
//
// GET /api/stocks/stocks/:id
func (h *StockHandler) GetStock(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		// 不正な形式のIDは「存在しない」と同じ扱い
		c.JSON(http.StatusNotFound, api.MessageResponse{Message: "the stock isn't found"})
		return
	}
	stock, err := h.uc.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, api.MessageResponse{Message: "the stock isn't found"})
			return
		}
		slog.Error("get stock failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.StockRes{Stock: toStockItem(stock)})
}

// SaveStock は株式を登録または更新するAPIです。
// ペイロードにIDがあれば更新して200、なければ新規作成して201を返します。
// 更新時、一致する行が存在しなくても成功扱いです。
//
// POST /api/stocks/savestock
func (h *StockHandler) SaveStock(c *gin.Context) {
	var req dto.SaveStockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("savestock validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: "invalid request body"})
		return
	}

	stock := &entity.Stock{
		ID:        req.Stock.ID,
		Ticker:    req.Stock.Ticker,
		ShortName: req.Stock.ShortName,
		Price:     req.Stock.Price,
		Bluetip:   req.Stock.Bluetip,
		SectorID:  req.Stock.Sector.ID,
	}
	id, created, err := h.uc.Save(c.Request.Context(), stock)
	if err != nil {
		slog.Error("savestock failed", "error", err, "ticker", req.Stock.Ticker)
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: "internal server error"})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.SaveStockRes{ID: id})
}

// toStockItem はエンティティをセクター結合済みのレスポンス形式に変換します。
func toStockItem(s *entity.Stock) dto.StockItem {
	return dto.StockItem{
		ID:        s.ID,
		Ticker:    s.Ticker,
		ShortName: s.ShortName,
		Price:     s.Price,
		Sector:    dto.SectorItem{ID: s.Sector.ID, Name: s.Sector.Name},
		Bluetip:   s.Bluetip,
	}
}
