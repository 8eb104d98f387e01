package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/creative-marketplace/internal/metrics"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString(ContextRequestIDKey)})
	})
	r.GET("/panic/", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	r := newEngine(RequestID())

	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping/", nil))
	generated := w.Header().Get(RequestIDHeader)
	require.Len(t, generated, 36)
	assert.Contains(t, w.Body.String(), generated)

	req := httptest.NewRequest(http.MethodGet, "/ping/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestCORSMiddleware(t *testing.T) {
	r := newEngine(CORSMiddleware([]string{"http://localhost:3000"}))

	req := httptest.NewRequest(http.MethodGet, "/ping/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := serve(r, req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping/", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = serve(r, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/ping/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w = serve(r, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	r := newEngine(RateLimitMiddleware(2, time.Minute))

	for i := 0; i < 2; i++ {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/ping/", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Too many requests, try again later"}`, w.Body.String())
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRecovery_ReturnsGenericError(t *testing.T) {
	r := newEngine(RequestID(), Recovery())

	w := serve(r, httptest.NewRequest(http.MethodGet, "/panic/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestRequestLogger_RecordsRouteMetric(t *testing.T) {
	r := newEngine(RequestLogger())
	counter := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/ping/", "200")
	before := testutil.ToFloat64(counter)

	serve(r, httptest.NewRequest(http.MethodGet, "/ping/", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
