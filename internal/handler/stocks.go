package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"signalboard/internal/repository"
)

type StockHandler struct {
	Repo   repository.Repository
	Logger *zap.Logger
}

func (h *StockHandler) Register(r *gin.Engine) {
	r.GET("/api/stocks/:symbol", h.getStock)
}

// @Summary Get stock metadata by symbol
// @Tags stocks
// @Param symbol path string true "stock symbol, e.g. SZ.000001"
// @Success 200 {object} apiResponse
// @Failure 404 {object} apiResponse
// @Router /api/stocks/{symbol} [get]
func (h *StockHandler) getStock(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "service unavailable")
		return
	}
	symbol := strings.TrimSpace(c.Param("symbol"))
	if symbol == "" {
		Error(c, http.StatusBadRequest, "symbol required")
		return
	}
	stock, err := h.Repo.GetStockBySymbol(c.Request.Context(), symbol)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("get stock failed", zap.String("symbol", symbol), zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, "internal error")
		return
	}
	if stock == nil {
		Error(c, http.StatusNotFound, "stock not found")
		return
	}
	Ok(c, stock)
}
