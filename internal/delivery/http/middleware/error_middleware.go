package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"go-screening-backend/internal/delivery/http/response"
	"go-screening-backend/pkg/apperror"
	"go-screening-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error pushed with c.Error. When exposeDetails
// is set, 500 responses carry the underlying failure text in "error".
func ErrorHandler(exposeDetails bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		renderError(c, c.Errors.Last().Err, exposeDetails)
	}
}

// Recovery turns a panicking handler into the same JSON 500 body as any
// other internal failure.
func Recovery(exposeDetails bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		c.Abort()
		if c.Writer.Written() {
			return
		}
		renderError(c, apperror.Internal(fmt.Errorf("panic: %v", recovered)), exposeDetails)
	})
}

func renderError(c *gin.Context, err error, exposeDetails bool) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.Internal(err)
	}

	if appErr.Code < http.StatusInternalServerError {
		response.Error(c, appErr.Code, appErr.Message, "")
		return
	}

	logger.Log.Error("Internal Server Error",
		"request_id", c.GetString(string(requestIDKey)),
		"path", c.FullPath(),
		"error", appErr.Detail(),
	)

	detail := ""
	if exposeDetails {
		detail = appErr.Detail()
	}
	response.Error(c, appErr.Code, appErr.Message, detail)
}
