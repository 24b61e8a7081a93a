package v1

import (
	"errors"
	"net/http"

	"go-screening-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into dst and reports a 400 on failure.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(apperror.BadRequest("Request body size exceeds limit"))
			return false
		}
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return false
	}
	return true
}
