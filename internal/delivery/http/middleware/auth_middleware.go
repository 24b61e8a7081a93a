package middleware

import (
	"context"
	"strings"

	"go-screening-backend/internal/domain"
	"go-screening-backend/pkg/apperror"
	"go-screening-backend/pkg/auth"
	"go-screening-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// TokenParser verifies session tokens.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// AuthMiddleware verifies a bearer token (or the auth_token cookie) and puts
// the caller's id, email and role on the request. When enabled is false every
// request passes through unauthenticated.
func AuthMiddleware(parser TokenParser, audit security.Auditor, enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}

		var tokenString string
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		} else if cookie, err := c.Cookie("auth_token"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			c.Error(apperror.Unauthorized("Authorization header or auth_token cookie required"))
			c.Abort()
			return
		}

		claims, err := parser.Parse(tokenString)
		if err != nil {
			audit.Log(c.Request.Context(), security.SecurityEvent{
				Event:   security.EventTokenRejected,
				Details: map[string]interface{}{"path": c.FullPath()},
			})
			c.Error(apperror.Unauthorized("Invalid token"))
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.ID)
		c.Set(string(domain.KeyUserEmail), claims.Email)
		c.Set(string(domain.KeyUserRole), claims.Role)

		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, claims.ID)
		ctx = context.WithValue(ctx, domain.KeyUserRole, claims.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole rejects callers whose token role is not one of roles. It is a
// no-op when token verification is disabled.
func RequireRole(enabled bool, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}

		role := c.GetString(string(domain.KeyUserRole))
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		c.Error(apperror.Forbidden("Insufficient permissions"))
		c.Abort()
	}
}
