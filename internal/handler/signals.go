package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"signalboard/internal/catalog"
	"signalboard/internal/compat"
	"signalboard/internal/service"
)

type SignalHandler struct {
	Query  *service.SignalQueryService
	Stats  *service.SignalStatsService
	Logger *zap.Logger
}

func (h *SignalHandler) Register(r *gin.Engine) {
	group := r.Group("/api/signals")
	group.GET("", h.listSignals)
	group.GET("/stats", h.signalStats)
	group.GET("/search", h.searchSignals)
	group.GET("/types", h.listTypes)
	group.GET("/:id", h.getSignal)
}

// @Summary List signals
// @Tags signals
// @Param level query string false "candle level (intraday|1D)"
// @Param category query string false "legacy category (intraday|daily), used when level is absent"
// @Param signalName query string false "signal type id, name or url slug"
// @Param direction query string false "1|-1|bullish|bearish"
// @Param symbol query string false "stock symbol"
// @Param limit query int false "page size"
// @Param offset query int false "offset"
// @Success 200 {object} apiResponse
// @Router /api/signals [get]
func (h *SignalHandler) listSignals(c *gin.Context) {
	if h.Query == nil {
		Error(c, http.StatusInternalServerError, "service unavailable")
		return
	}
	opts := service.SignalQueryOptions{
		Level:      strings.TrimSpace(c.Query("level")),
		Category:   strings.TrimSpace(c.Query("category")),
		SignalType: strings.TrimSpace(c.Query("signalName")),
		Direction:  directionQueryPtr(c),
		Symbol:     strings.TrimSpace(c.Query("symbol")),
		Limit:      intQuery(c, "limit", 0),
		Offset:     intQuery(c, "offset", 0),
	}

	items, err := h.Query.ListSignals(c.Request.Context(), opts)
	if err != nil {
		h.respondError(c, "list signals", err)
		return
	}
	total, err := h.Query.CountSignals(c.Request.Context(), opts)
	if err != nil {
		h.respondError(c, "count signals", err)
		return
	}
	OkTotal(c, items, total)
}

// @Summary Get one signal with its stock context
// @Tags signals
// @Param id path string true "signal id"
// @Success 200 {object} apiResponse
// @Failure 404 {object} apiResponse
// @Router /api/signals/{id} [get]
func (h *SignalHandler) getSignal(c *gin.Context) {
	if h.Query == nil {
		Error(c, http.StatusInternalServerError, "service unavailable")
		return
	}
	signal, err := h.Query.GetSignalByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "get signal", err)
		return
	}
	Ok(c, signal)
}

// @Summary Search signals by id, symbol or type fragment
// @Tags signals
// @Param q query string true "search term"
// @Param category query string false "intraday|daily"
// @Success 200 {object} apiResponse
// @Router /api/signals/search [get]
func (h *SignalHandler) searchSignals(c *gin.Context) {
	if h.Query == nil {
		Error(c, http.StatusInternalServerError, "service unavailable")
		return
	}
	items, err := h.Query.SearchSignals(c.Request.Context(), c.Query("q"), c.Query("category"))
	if err != nil {
		h.respondError(c, "search signals", err)
		return
	}
	OkTotal(c, items, int64(len(items)))
}

// @Summary Per-type signal counters for one category
// @Tags signals
// @Param category query string false "intraday|daily (defaults intraday)"
// @Success 200 {object} apiResponse
// @Router /api/signals/stats [get]
func (h *SignalHandler) signalStats(c *gin.Context) {
	if h.Stats == nil {
		Error(c, http.StatusInternalServerError, "service unavailable")
		return
	}
	stats, err := h.Stats.StatsFor(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.respondError(c, "signal stats", err)
		return
	}
	Ok(c, stats)
}

type typeListing struct {
	Category   string                     `json:"category"`
	Types      []catalog.SignalTypeConfig `json:"types"`
	RiskLevels map[string]int             `json:"riskLevels"`
	Directions map[string]int             `json:"directions"`
}

// @Summary Catalog listing for navigation
// @Tags signals
// @Param category query string false "intraday|daily (defaults intraday)"
// @Success 200 {object} apiResponse
// @Router /api/signals/types [get]
func (h *SignalHandler) listTypes(c *gin.Context) {
	category := catalog.NormalizeCategory(c.Query("category"))
	Ok(c, typeListing{
		Category:   category,
		Types:      catalog.ListByCategory(category),
		RiskLevels: catalog.RiskLevelStats(),
		Directions: catalog.DirectionStats(),
	})
}

// directionQueryPtr accepts both the numeric wire form and the legacy
// word forms; anything else is treated as no filter.
func directionQueryPtr(c *gin.Context) *int {
	val := strings.TrimSpace(c.Query("direction"))
	if val == "" {
		return nil
	}
	if i, err := strconv.Atoi(val); err == nil {
		return &i
	}
	switch compat.DirectionLabel(val) {
	case compat.DirectionBullish:
		i := 1
		return &i
	case compat.DirectionBearish:
		i := -1
		return &i
	}
	return nil
}

func (h *SignalHandler) respondError(c *gin.Context, op string, err error) {
	if service.IsValidation(err) {
		Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if errors.Is(err, service.ErrNotFound) {
		Error(c, http.StatusNotFound, "signal not found")
		return
	}
	if h.Logger != nil {
		h.Logger.Warn(op+" failed", zap.Error(err))
	}
	Error(c, http.StatusInternalServerError, "internal error")
}
