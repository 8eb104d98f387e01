package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/creative-marketplace/internal/interface/http/response"
)

// pathID читает :id из пути. Нечисловой id отдаёт 404 с notFound сообщением,
// как несуществующая запись.
func pathID(c *gin.Context, notFound error) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, notFound)
		return 0, false
	}
	return id, true
}

// queryInt64 возвращает 0 для пустого или нечислового параметра: фильтр не применяется.
func queryInt64(c *gin.Context, key string) int64 {
	value, err := strconv.ParseInt(c.Query(key), 10, 64)
	if err != nil {
		return 0
	}
	return value
}

// bindJSON пишет 400 и возвращает false при невалидном теле.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return false
	}
	return true
}
