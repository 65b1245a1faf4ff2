package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"signalboard/internal/service"
)

type SearchHandler struct {
	Service *service.UniversalSearchService
}

func (h *SearchHandler) Register(r *gin.Engine) {
	r.GET("/api/search", h.search)
}

// @Summary Universal search across stocks and signals
// @Tags search
// @Param q query string true "stock name, stock code, signal id or symbol"
// @Success 200 {object} apiResponse
// @Router /api/search [get]
func (h *SearchHandler) search(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable")
		return
	}
	Ok(c, h.Service.Search(c.Request.Context(), c.Query("q")))
}
