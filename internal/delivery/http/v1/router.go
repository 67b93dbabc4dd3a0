package v1

import (
	"net/http"

	"go-booking-backend/internal/delivery/http/middleware"
	"go-booking-backend/internal/delivery/http/response"
	"go-booking-backend/internal/domain"
	"go-booking-backend/internal/usecase"
	"go-booking-backend/pkg/auth"
	"go-booking-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	SubmissionUC domain.SubmissionUsecase
	ReviewUC     domain.ReviewUsecase
	HealthUC     usecase.HealthUsecase
	Notifier     domain.Notifier
	Roles        domain.RoleRepository
	Verifier     *auth.Verifier
	Validator    *validation.Validator
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(validation.JSONTagName)
		validation.RegisterValidators(v)
	}

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware("/v1/swagger"))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		status := deps.HealthUC.Check(c.Request.Context())
		if status["status"] != "ok" {
			response.Error(c, http.StatusServiceUnavailable, "System degraded", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	NewAppointmentHandler(v1, deps.SubmissionUC)
	NewContactHandler(v1, deps.SubmissionUC)
	NewNotificationHandler(v1, deps.Verifier, deps.Notifier)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Verifier, deps.Roles))
	{
		NewAuthHandler(v1, protected, deps.Validator)
		NewAdminHandler(protected, deps.ReviewUC)
	}

	return r
}
