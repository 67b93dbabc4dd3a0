package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go-booking-backend/internal/delivery/http/response"
	"go-booking-backend/internal/domain"
	"go-booking-backend/pkg/apperror"
	"go-booking-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	reviewUC domain.ReviewUsecase
}

type listQuery struct {
	Status string `form:"status" json:"status"`
	Limit  int    `form:"limit" json:"limit" binding:"omitempty,min=1,max=500"`
	Offset int    `form:"offset" json:"offset" binding:"omitempty,min=0"`
}

func (q listQuery) options() domain.ListOptions {
	return domain.ListOptions{Status: q.Status, Limit: q.Limit, Offset: q.Offset}
}

// bindListQuery reports non-numeric paging values per field before gin's
// binder turns them into bare strconv errors.
func bindListQuery(c *gin.Context) (listQuery, error) {
	var q listQuery
	fields := map[string]string{}
	for _, name := range []string{"limit", "offset"} {
		raw, ok := c.GetQuery(name)
		if !ok {
			continue
		}
		if _, err := strconv.Atoi(raw); err != nil {
			fields[name] = fmt.Sprintf("%s must be a number", validation.FieldLabel(name))
		}
	}
	if len(fields) > 0 {
		return q, apperror.Validation(fields, errors.New("non-numeric paging parameter"))
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		return q, apperror.Validation(validation.FormatValidationErrors(err), err)
	}
	return q, nil
}

func NewAdminHandler(protected *gin.RouterGroup, reviewUC domain.ReviewUsecase) {
	handler := &AdminHandler{reviewUC: reviewUC}

	admin := protected.Group("/admin")
	{
		admin.GET("/overview", handler.GetOverview)

		admin.GET("/appointments", handler.ListAppointments)
		admin.PATCH("/appointments/:id/status", handler.UpdateAppointmentStatus)

		admin.GET("/contacts", handler.ListContacts)
		admin.PATCH("/contacts/:id/status", handler.UpdateContactStatus)
	}
}

// GetOverview godoc
// @Summary      Get dashboard overview
// @Description  Returns recent appointments and contact messages with counts per status
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=domain.Overview}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/overview [get]
func (h *AdminHandler) GetOverview(c *gin.Context) {
	overview, err := h.reviewUC.Overview(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard overview", overview)
}

// ListAppointments godoc
// @Summary      List appointments
// @Description  Returns appointments newest first, optionally filtered by status
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "pending, confirmed, completed or cancelled"
// @Param        limit   query     int     false  "Max rows (default 50)"
// @Param        offset  query     int     false  "Rows to skip"
// @Success      200     {object}  response.Response{data=[]domain.Appointment}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Router       /admin/appointments [get]
func (h *AdminHandler) ListAppointments(c *gin.Context) {
	q, err := bindListQuery(c)
	if err != nil {
		c.Error(err)
		return
	}

	items, err := h.reviewUC.ListAppointments(c.Request.Context(), q.options())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Appointments retrieved", items)
}

// ListContacts godoc
// @Summary      List contact messages
// @Description  Returns contact messages newest first, optionally filtered by status
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "new, replied or archived"
// @Param        limit   query     int     false  "Max rows (default 50)"
// @Param        offset  query     int     false  "Rows to skip"
// @Success      200     {object}  response.Response{data=[]domain.ContactSubmission}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Router       /admin/contacts [get]
func (h *AdminHandler) ListContacts(c *gin.Context) {
	q, err := bindListQuery(c)
	if err != nil {
		c.Error(err)
		return
	}

	items, err := h.reviewUC.ListContacts(c.Request.Context(), q.options())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact messages retrieved", items)
}

// UpdateAppointmentStatus godoc
// @Summary      Update appointment status
// @Description  Sets any status label; transitions are unrestricted
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Appointment ID"
// @Param        body  body      domain.StatusUpdateRequest  true  "New status"
// @Success      200   {object}  response.Response{data=domain.Appointment}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /admin/appointments/{id}/status [patch]
func (h *AdminHandler) UpdateAppointmentStatus(c *gin.Context) {
	var req domain.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err), err))
		return
	}

	appt, err := h.reviewUC.UpdateAppointmentStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Appointment status updated", appt)
}

// UpdateContactStatus godoc
// @Summary      Update contact message status
// @Description  Sets any status label; transitions are unrestricted
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Contact message ID"
// @Param        body  body      domain.StatusUpdateRequest  true  "New status"
// @Success      200   {object}  response.Response{data=domain.ContactSubmission}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /admin/contacts/{id}/status [patch]
func (h *AdminHandler) UpdateContactStatus(c *gin.Context) {
	var req domain.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err), err))
		return
	}

	msg, err := h.reviewUC.UpdateContactStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact status updated", msg)
}
