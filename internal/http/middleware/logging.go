package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/creative-marketplace/internal/logger"
	"github.com/ignatzorin/creative-marketplace/internal/metrics"
)

// RequestLogger пишет одну запись на запрос и учитывает его в метриках.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		metrics.RecordHTTPRequest(c.Request.Method, c.FullPath(), status, latency)

		entry := logger.WithComponent("http").WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"latency_ms": latency.Milliseconds(),
			"client_ip":  c.ClientIP(),
			"request_id": c.GetString(ContextRequestIDKey),
		})

		switch {
		case status >= 500:
			entry.Error("запрос завершился ошибкой")
		case status >= 400:
			entry.Warn("запрос отклонён")
		default:
			entry.Info("запрос обработан")
		}
	}
}
