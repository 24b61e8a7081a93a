package middleware

import (
	"net/http"

	"go-screening-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

// BodySizeLimiter caps the request body at maxBytes. Reads past the limit fail,
// which binding surfaces as a 400.
func BodySizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Fast reject for legit requests
		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusBadRequest, "Request body size exceeds limit", "")
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
