package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger проверяет соединение с базой, его реализует *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler предоставляет endpoint для проверки здоровья сервиса.
type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// Health обрабатывает GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]string{"database": "healthy"}
	status, code := "healthy", http.StatusOK
	if err := h.db.PingContext(ctx); err != nil {
		checks["database"] = "unhealthy"
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	c.JSON(code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Checks:    checks,
	})
}
