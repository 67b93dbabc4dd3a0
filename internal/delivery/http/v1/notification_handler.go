package v1

import (
	"errors"
	"net/http"

	"go-booking-backend/internal/delivery/http/middleware"
	"go-booking-backend/internal/domain"
	"go-booking-backend/pkg/auth"
	"go-booking-backend/pkg/email"
	"go-booking-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifier domain.Notifier
}

// NotificationResult is the reply of the notification function. It keeps its
// own shape instead of response.Response: {"success":true} or {"error":"..."}.
type NotificationResult struct {
	Success bool   `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewNotificationHandler registers the send-notification function. Callers
// must present a project key; CORS preflight is answered by the CORS middleware.
func NewNotificationHandler(public *gin.RouterGroup, verifier *auth.Verifier, notifier domain.Notifier) {
	handler := &NotificationHandler{notifier: notifier}

	public.POST("/notifications/send", middleware.ProjectKeyMiddleware(verifier), handler.Send)
	public.OPTIONS("/notifications/send", func(c *gin.Context) { c.Status(http.StatusOK) })
}

// Send godoc
// @Summary      Send notification emails
// @Description  Sends the customer confirmation and the business alert for one submission.
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        notification  body      domain.Notification  true  "Submission kind and fields"
// @Success      200           {object}  NotificationResult
// @Failure      400           {object}  NotificationResult
// @Failure      401           {object}  NotificationResult
// @Failure      500           {object}  NotificationResult
// @Router       /notifications/send [post]
func (h *NotificationHandler) Send(c *gin.Context) {
	var note domain.Notification
	if err := c.ShouldBindJSON(&note); err != nil {
		c.JSON(http.StatusBadRequest, NotificationResult{Error: "Invalid request body"})
		return
	}

	err := h.notifier.Notify(c.Request.Context(), note)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, NotificationResult{Success: true})
	case errors.Is(err, email.ErrUnconfigured):
		logger.FromContext(c.Request.Context()).Error("Notification requested without email credential")
		c.JSON(http.StatusInternalServerError, NotificationResult{Error: "Email service not configured"})
	case errors.Is(err, domain.ErrUnknownKind):
		c.JSON(http.StatusBadRequest, NotificationResult{Error: "Invalid email type"})
	default:
		logger.FromContext(c.Request.Context()).Error("Notification delivery failed", "type", note.Kind, "error", err)
		c.JSON(http.StatusInternalServerError, NotificationResult{Error: "Failed to send email"})
	}
}
