package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/ignatzorin/creative-marketplace/internal/interface/http/response"
	"github.com/ignatzorin/creative-marketplace/internal/logger"
)

// RateLimitMiddleware ограничивает число запросов с одного IP.
// По умолчанию: 10 запросов в минуту.
func RateLimitMiddleware(limit int64, period time.Duration) gin.HandlerFunc {
	if limit <= 0 {
		limit = 10
	}
	if period <= 0 {
		period = time.Minute
	}

	instance := limiter.New(memory.NewStore(), limiter.Rate{
		Period: period,
		Limit:  limit,
	})

	return func(c *gin.Context) {
		state, err := instance.Get(c.Request.Context(), c.ClientIP())
		if err != nil {
			// При сбое лимитера запрос пропускается.
			logger.WithComponent("http").WithError(err).Warn("rate limiter недоступен")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(state.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(state.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(state.Reset, 10))

		if state.Reached {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.ErrorBody{Error: "Too many requests, try again later"})
			return
		}

		c.Next()
	}
}
