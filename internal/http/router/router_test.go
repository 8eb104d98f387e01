package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/creative-marketplace/internal/config"
	"github.com/ignatzorin/creative-marketplace/internal/http/handlers"
)

type stubPinger struct {
	err error
}

func (p stubPinger) PingContext(ctx context.Context) error {
	return p.err
}

func testConfig() *config.Config {
	return &config.Config{Env: "test", AllowedOrigins: []string{"http://localhost:3000"}, RateLimitLimit: 5}
}

func TestSetupRouter_RegistersAPI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(testConfig(), Handlers{Health: handlers.NewHealthHandler(stubPinger{})}, t.TempDir())

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"POST /api/save-interests/",
		"GET /api/creatives/recommended/",
		"GET /api/contract/booking/:booking_id/",
		"POST /api/contract/sign/:contract_id/",
		"POST /api/register/",
		"POST /api/login/",
		"GET /api/industries/",
		"GET /api/subcategories/",
		"GET /api/creatives/",
		"POST /api/create-profile/",
		"GET /api/creative-profile/",
		"PATCH /api/bookings/:id/",
		"POST /api/products/:id/image/",
		"POST /api/orders/",
		"GET /api/service-packages/",
		"POST /api/admin/manage-creative/:id/",
		"POST /api/chat/:booking_id/send/",
		"GET /api/ws/chat/:booking_id/",
		"GET /metrics",
	} {
		assert.True(t, registered[want], want)
	}
}

func TestSetupRouter_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := SetupRouter(testConfig(), Handlers{Health: handlers.NewHealthHandler(stubPinger{})}, t.TempDir())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	r = SetupRouter(testConfig(), Handlers{Health: handlers.NewHealthHandler(stubPinger{err: errors.New("down")})}, t.TempDir())
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"unhealthy"`)
}
