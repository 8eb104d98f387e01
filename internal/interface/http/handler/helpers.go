package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam читает положительный числовой id из пути.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseInt64Query возвращает 0, если параметр пуст или не число.
func parseInt64Query(c *gin.Context, key string) int64 {
	value, err := strconv.ParseInt(c.Query(key), 10, 64)
	if err != nil {
		return 0
	}
	return value
}
