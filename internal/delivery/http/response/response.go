package response

import (
	"github.com/gin-gonic/gin"
)

// MessageResponse is the body of acknowledgements and failures.
type MessageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// JSON sends the resource itself as the response body
func JSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Message sends a {"message": ...} acknowledgement
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

// Error sends an error response. detail is omitted when empty.
func Error(c *gin.Context, code int, message string, detail string) {
	c.JSON(code, MessageResponse{
		Message: message,
		Error:   detail,
	})
}
