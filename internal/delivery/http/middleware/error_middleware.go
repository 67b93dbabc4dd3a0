package middleware

import (
	"errors"
	"net/http"

	"go-booking-backend/internal/delivery/http/response"
	"go-booking-backend/pkg/apperror"
	"go-booking-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log := logger.FromContext(c.Request.Context())

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				log.Error("Request failed", "status", appErr.Code, "error", appErr)
			}
			if len(appErr.Fields) > 0 {
				response.FieldError(c, appErr.Code, appErr.Message, appErr.Fields)
				return
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// Never expose internal error details to clients
		log.Error("Internal server error", "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
