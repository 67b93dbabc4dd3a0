package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go-booking-backend/internal/domain"
	"go-booking-backend/pkg/apperror"

	"golang.org/x/sync/errgroup"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

type reviewUsecase struct {
	appointments domain.AppointmentRepository
	contacts     domain.ContactRepository
}

func NewReviewUsecase(appointments domain.AppointmentRepository, contacts domain.ContactRepository) domain.ReviewUsecase {
	return &reviewUsecase{appointments: appointments, contacts: contacts}
}

// ListAppointments returns appointments newest first
func (u *reviewUsecase) ListAppointments(ctx context.Context, opts domain.ListOptions) ([]domain.Appointment, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}
	if opts.Status != "" && !domain.AppointmentStatus(opts.Status).Valid() {
		return nil, invalidStatus(opts.Status, appointmentLabels())
	}

	items, err := u.appointments.ListRecent(ctx, normalize(opts))
	if err != nil {
		return nil, storeFailure("Failed to fetch appointments", err)
	}
	return items, nil
}

// ListContacts returns contact messages newest first
func (u *reviewUsecase) ListContacts(ctx context.Context, opts domain.ListOptions) ([]domain.ContactSubmission, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}
	if opts.Status != "" && !domain.ContactStatus(opts.Status).Valid() {
		return nil, invalidStatus(opts.Status, contactLabels())
	}

	items, err := u.contacts.ListRecent(ctx, normalize(opts))
	if err != nil {
		return nil, storeFailure("Failed to fetch contact messages", err)
	}
	return items, nil
}

// UpdateAppointmentStatus sets any label from the closed set, regardless of the current one.
func (u *reviewUsecase) UpdateAppointmentStatus(ctx context.Context, id string, status string) (*domain.Appointment, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, apperror.BadRequest("Appointment ID is required")
	}
	next := domain.AppointmentStatus(strings.TrimSpace(status))
	if !next.Valid() {
		return nil, invalidStatus(status, appointmentLabels())
	}

	appt, err := u.appointments.UpdateStatus(ctx, id, next)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Appointment not found", err)
		}
		return nil, storeFailure("Failed to update appointment", err)
	}
	return appt, nil
}

func (u *reviewUsecase) UpdateContactStatus(ctx context.Context, id string, status string) (*domain.ContactSubmission, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, apperror.BadRequest("Contact ID is required")
	}
	next := domain.ContactStatus(strings.TrimSpace(status))
	if !next.Valid() {
		return nil, invalidStatus(status, contactLabels())
	}

	msg, err := u.contacts.UpdateStatus(ctx, id, next)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Contact message not found", err)
		}
		return nil, storeFailure("Failed to update contact message", err)
	}
	return msg, nil
}

// Overview loads both tables in parallel and tallies them by status.
func (u *reviewUsecase) Overview(ctx context.Context) (*domain.Overview, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}

	var (
		appts    []domain.Appointment
		contacts []domain.ContactSubmission
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		appts, err = u.appointments.ListRecent(gctx, domain.ListOptions{Limit: maxListLimit})
		return err
	})
	g.Go(func() error {
		var err error
		contacts, err = u.contacts.ListRecent(gctx, domain.ListOptions{Limit: maxListLimit})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storeFailure("Failed to load dashboard", err)
	}

	overview := &domain.Overview{
		Appointments:         appts,
		Contacts:             contacts,
		AppointmentsByStatus: domain.StatusCounts{},
		ContactsByStatus:     domain.StatusCounts{},
	}
	for _, s := range domain.AppointmentStatuses {
		overview.AppointmentsByStatus[string(s)] = 0
	}
	for _, s := range domain.ContactStatuses {
		overview.ContactsByStatus[string(s)] = 0
	}
	for _, a := range appts {
		overview.AppointmentsByStatus[string(a.Status)]++
	}
	for _, c := range contacts {
		overview.ContactsByStatus[string(c.Status)]++
	}
	return overview, nil
}

// requireAdmin checks if the current user has admin role
func (u *reviewUsecase) requireAdmin(ctx context.Context) error {
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	if role != domain.RoleAdmin {
		return apperror.New(http.StatusForbidden, "Admin access required", domain.ErrNotAdmin)
	}
	return nil
}

func normalize(opts domain.ListOptions) domain.ListOptions {
	if opts.Limit < 1 {
		opts.Limit = defaultListLimit
	}
	if opts.Limit > maxListLimit {
		opts.Limit = maxListLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	return opts
}

func storeFailure(message string, err error) *apperror.AppError {
	return apperror.New(http.StatusInternalServerError, message, fmt.Errorf("%w: %v", domain.ErrStoreFailure, err))
}

func invalidStatus(got string, allowed []string) *apperror.AppError {
	return apperror.New(http.StatusBadRequest,
		fmt.Sprintf("Invalid status %q, must be one of: %s", got, strings.Join(allowed, ", ")),
		domain.ErrInvalidStatus)
}

func appointmentLabels() []string {
	out := make([]string, len(domain.AppointmentStatuses))
	for i, s := range domain.AppointmentStatuses {
		out[i] = string(s)
	}
	return out
}

func contactLabels() []string {
	out := make([]string, len(domain.ContactStatuses))
	for i, s := range domain.ContactStatuses {
		out[i] = string(s)
	}
	return out
}
