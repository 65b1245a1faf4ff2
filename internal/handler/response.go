package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
	Total   *int64 `json:"total,omitempty"`
}

func Ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, apiResponse{
		Success: true,
		Data:    data,
	})
}

// OkTotal is Ok with a top-level total, for paginated listings where the
// page size and the full result count differ.
func OkTotal(c *gin.Context, data any, total int64) {
	c.JSON(http.StatusOK, apiResponse{
		Success: true,
		Data:    data,
		Total:   &total,
	})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, apiResponse{
		Success: false,
		Error:   message,
	})
}

// ErrorDetails adds a caller-facing hint alongside the error message.
func ErrorDetails(c *gin.Context, status int, message, details string) {
	c.JSON(status, apiResponse{
		Success: false,
		Error:   message,
		Details: details,
	})
}

func intQuery(c *gin.Context, key string, def int) int {
	if val := c.Query(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return def
}

func strQueryPtr(c *gin.Context, key string) *string {
	if val := strings.TrimSpace(c.Query(key)); val != "" {
		return &val
	}
	return nil
}
