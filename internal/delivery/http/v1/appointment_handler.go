package v1

import (
	"net/http"

	"go-booking-backend/internal/delivery/http/response"
	"go-booking-backend/internal/domain"
	"go-booking-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	submissionUC domain.SubmissionUsecase
}

// NewAppointmentHandler registers the public booking routes
func NewAppointmentHandler(public *gin.RouterGroup, submissionUC domain.SubmissionUsecase) {
	handler := &AppointmentHandler{submissionUC: submissionUC}

	public.POST("/appointments", handler.BookAppointment)
	public.GET("/appointments/options", handler.GetOptions)
}

// BookAppointment godoc
// @Summary      Book an appointment
// @Description  Validates and stores a booking, then notifies the customer and the business by email.
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        appointment  body      domain.AppointmentRequest  true  "Booking"
// @Success      201          {object}  response.Response{data=domain.SubmissionCreated}
// @Failure      400          {object}  response.Response
// @Failure      500          {object}  response.Response
// @Router       /appointments [post]
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	id, err := h.submissionUC.SubmitAppointment(c.Request.Context(), raw)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Appointment booked successfully! We will contact you shortly to confirm.", domain.SubmissionCreated{ID: id})
}

// GetOptions godoc
// @Summary      Booking form options
// @Description  Returns the service catalogue and the bookable time slots.
// @Tags         appointments
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.BookingOptions}
// @Router       /appointments/options [get]
func (h *AppointmentHandler) GetOptions(c *gin.Context) {
	response.Success(c, http.StatusOK, "Booking options", domain.BookingOptions{
		Services:  domain.Services,
		TimeSlots: domain.TimeSlots,
	})
}
