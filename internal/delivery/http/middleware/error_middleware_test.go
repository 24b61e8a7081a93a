package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-screening-backend/internal/delivery/http/response"
	"go-screening-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorRouter(exposeDetails bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(exposeDetails))
	r.Use(ErrorHandler(exposeDetails))

	r.GET("/panic", func(c *gin.Context) {
		panic("nil map write")
	})
	r.GET("/missing", func(c *gin.Context) {
		c.Error(apperror.NotFound("Question not found"))
	})
	r.GET("/plain", func(c *gin.Context) {
		c.Error(errors.New("connection reset"))
	})
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.MessageResponse {
	t.Helper()
	var body response.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRecovery(t *testing.T) {
	t.Run("Should render a panic as a JSON server error", func(t *testing.T) {
		w := httptest.NewRecorder()
		newErrorRouter(true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decode(t, w)
		assert.Equal(t, "Server error", body.Message)
		assert.Contains(t, body.Error, "nil map write")
	})

	t.Run("Should hide panic details when disabled", func(t *testing.T) {
		w := httptest.NewRecorder()
		newErrorRouter(false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decode(t, w)
		assert.Equal(t, "Server error", body.Message)
		assert.Empty(t, body.Error)
	})
}

func TestErrorHandler(t *testing.T) {
	r := newErrorRouter(true)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, response.MessageResponse{Message: "Question not found"}, decode(t, w))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plain", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, response.MessageResponse{Message: "Server error", Error: "connection reset"}, decode(t, w))
}
