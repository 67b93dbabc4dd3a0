package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const corsAllowHeaders = "authorization, x-client-info, apikey, content-type"

// CORSMiddleware allows any origin. The public forms and the notification
// function are called straight from the browser with the anon key.
// Preflight requests end here with an empty 200.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}
