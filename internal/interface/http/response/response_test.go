package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/creative-marketplace/internal/pkg/apperror"
)

func render(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestError_AppError(t *testing.T) {
	w := render(func(c *gin.Context) { Error(c, apperror.ErrBookingNotFound) })

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, map[string]any{"error": "Booking not found"}, decode(t, w))
}

func TestError_HidesDatabaseCause(t *testing.T) {
	cause := errors.New(`pq: relation "contracts" does not exist`)
	w := render(func(c *gin.Context) { Error(c, apperror.Database(cause, "failed to load contract")) })

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "failed to load contract", decode(t, w)["error"])
	assert.NotContains(t, w.Body.String(), "relation")
}

func TestError_UnknownError(t *testing.T) {
	w := render(func(c *gin.Context) { Error(c, errors.New("boom")) })

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decode(t, w)["error"])
}

func TestMessage(t *testing.T) {
	w := render(func(c *gin.Context) { Message(c, "Contract signed successfully") })

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"message": "Contract signed successfully"}, decode(t, w))
}
