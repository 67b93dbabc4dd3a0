package v1

import (
	"net/http"

	"go-booking-backend/internal/delivery/http/response"
	"go-booking-backend/internal/domain"
	"go-booking-backend/pkg/apperror"
	"go-booking-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	validator *validation.Validator
}

// NewAuthHandler registers the account routes. Sign-in itself happens against
// Supabase; the API only checks the sign-up form and reports the caller.
func NewAuthHandler(public, protected *gin.RouterGroup, validator *validation.Validator) {
	handler := &AuthHandler{validator: validator}

	public.POST("/auth/signup/validate", handler.ValidateSignup)
	protected.GET("/auth/me", handler.Me)
}

// ValidateSignup godoc
// @Summary      Validate a sign-up form
// @Description  Applies the sign-up rules (including matching passwords) without creating an account.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        signup  body      domain.SignupRequest  true  "Sign-up form"
// @Success      200     {object}  response.Response{data=domain.SignupForm}
// @Failure      400     {object}  response.Response
// @Router       /auth/signup/validate [post]
func (h *AuthHandler) ValidateSignup(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	form, fieldErrs := h.validator.ValidateSignup(raw)
	if len(fieldErrs) > 0 {
		c.Error(apperror.Validation(fieldErrs, domain.ErrInvalid))
		return
	}

	response.Success(c, http.StatusOK, "Sign-up form is valid", form)
}

// Me godoc
// @Summary      Current user
// @Description  Returns the authenticated caller and the role resolved from user_roles.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := domain.UserFromContext(c.Request.Context())
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}
	response.Success(c, http.StatusOK, "Current user", user)
}
