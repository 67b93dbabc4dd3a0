package middleware

import (
	"strings"

	"go-booking-backend/internal/delivery/http/response"
	"go-booking-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// RequestID propagates an incoming request id or generates one when absent.
// A logger carrying "request_id" is stored in the request context so the
// usecases and the notification dispatcher log with it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)
		c.Set(response.RequestIDKey, requestID)

		ctx := logger.WithContext(c.Request.Context(), logger.Log.With("request_id", requestID))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
