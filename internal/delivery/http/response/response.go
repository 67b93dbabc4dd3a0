package response

import (
	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key set by the RequestID middleware.
const RequestIDKey = "RequestID"

// Response standardizes the API JSON response
type Response struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Data      interface{}       `json:"data,omitempty"`
	Error     interface{}       `json:"error,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: c.GetString(RequestIDKey),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: c.GetString(RequestIDKey),
	})
}

// FieldError sends a 4xx response carrying one message per rejected field.
func FieldError(c *gin.Context, code int, message string, fields map[string]string) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Fields:    fields,
		RequestID: c.GetString(RequestIDKey),
	})
}
