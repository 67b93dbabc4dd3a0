package middleware

import (
	"net/http"
	"strings"

	"go-booking-backend/pkg/auth"
	"go-booking-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ProjectKeyMiddleware admits requests that carry a token signed for this
// project, either as a bearer token or in the apikey header. Failures reply
// with {"error": "..."} so function-style callers see their own shape.
func ProjectKeyMiddleware(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if tokenString == "" {
			tokenString = strings.TrimSpace(c.GetHeader("apikey"))
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing authorization header"})
			return
		}

		if _, err := verifier.ParseProjectKey(tokenString); err != nil {
			logger.FromContext(c.Request.Context()).Warn("Project key rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid JWT"})
			return
		}
		c.Next()
	}
}
