package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/creative-marketplace/internal/interface/http/response"
	"github.com/ignatzorin/creative-marketplace/internal/logger"
)

// Recovery превращает панику обработчика в 500 с общим сообщением.
// Детали паники остаются в логе.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.WithComponent("http").WithFields(logrus.Fields{
			"panic":      recovered,
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(ContextRequestIDKey),
		}).Error("паника при обработке запроса")

		c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorBody{Error: "Internal server error"})
	})
}
