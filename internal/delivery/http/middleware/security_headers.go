package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware adds baseline security headers to all responses.
// HSTS is only sent when strictTransport is set (production behind TLS).
func SecurityHeadersMiddleware(strictTransport bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strictTransport {
			c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}

		// Stored CVs are served from the same origin, never let browsers guess their type
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		if c.GetHeader("Authorization") != "" {
			c.Header("Cache-Control", "no-store")
		}

		c.Next()
	}
}
