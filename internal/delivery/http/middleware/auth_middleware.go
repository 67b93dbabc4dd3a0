package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-booking-backend/internal/delivery/http/response"
	"go-booking-backend/internal/domain"
	"go-booking-backend/pkg/auth"
	"go-booking-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and resolves the caller's role
// from user_roles. The JWT role claim is never trusted.
func AuthMiddleware(verifier *auth.Verifier, roles domain.RoleRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		log := logger.FromContext(c.Request.Context())
		claims, err := verifier.Parse(tokenString)
		if err != nil {
			log.Warn("Token validation failed", "error", err)
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		role := domain.RoleUser
		isAdmin, err := roles.HasRole(c.Request.Context(), claims.Subject, domain.RoleAdmin)
		if err != nil {
			log.Error("Role lookup failed", "user_id", claims.Subject, "error", err)
			response.Error(c, http.StatusInternalServerError, "Failed to verify access", nil)
			c.Abort()
			return
		}
		if isAdmin {
			role = domain.RoleAdmin
		}

		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, claims.Subject)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, domain.KeyUserRole, role)
		ctx = logger.WithContext(ctx, log.With("user_id", claims.Subject))
		c.Request = c.Request.WithContext(ctx)

		c.Set(string(domain.KeyUserID), claims.Subject)
		c.Set(string(domain.KeyUserRole), role)

		c.Next()
	}
}
