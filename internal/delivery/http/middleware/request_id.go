package middleware

import (
	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = domain.KeyRequestID
	maxRequestIDLen = 128
)

// RequestID accepts a client supplied X-Request-ID or generates one, echoes
// it back and makes it available to handlers and audit logging.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" || len(reqID) > maxRequestIDLen {
			reqID = uuid.NewString()
		}

		c.Header(RequestIDHeader, reqID)
		c.Set(string(requestIDKey), reqID)
		c.Request = c.Request.WithContext(security.WithRequestID(c.Request.Context(), reqID))

		c.Next()
	}
}
