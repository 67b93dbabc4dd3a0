package v1

import (
	"net/http"

	"go-booking-backend/internal/delivery/http/response"
	"go-booking-backend/internal/domain"
	"go-booking-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	submissionUC domain.SubmissionUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, submissionUC domain.SubmissionUsecase) {
	handler := &ContactHandler{submissionUC: submissionUC}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the contact form. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      201      {object}  response.Response{data=domain.SubmissionCreated}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	id, err := h.submissionUC.SubmitContact(c.Request.Context(), raw)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Your message has been sent successfully!", domain.SubmissionCreated{ID: id})
}
