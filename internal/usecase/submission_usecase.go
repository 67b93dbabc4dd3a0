package usecase

import (
	"context"
	"fmt"
	"net/http"

	"go-booking-backend/internal/domain"
	"go-booking-backend/pkg/apperror"
	"go-booking-backend/pkg/logger"
	"go-booking-backend/pkg/validation"
)

type submissionUsecase struct {
	appointments domain.AppointmentRepository
	contacts     domain.ContactRepository
	validator    *validation.Validator
	dispatcher   domain.NotificationDispatcher
}

// NewSubmissionUsecase creates the validate → store → notify pipeline
func NewSubmissionUsecase(
	appointments domain.AppointmentRepository,
	contacts domain.ContactRepository,
	validator *validation.Validator,
	dispatcher domain.NotificationDispatcher,
) domain.SubmissionUsecase {
	return &submissionUsecase{
		appointments: appointments,
		contacts:     contacts,
		validator:    validator,
		dispatcher:   dispatcher,
	}
}

func (uc *submissionUsecase) Submit(ctx context.Context, kind domain.Kind, raw map[string]any) (string, error) {
	switch kind {
	case domain.KindAppointment:
		return uc.SubmitAppointment(ctx, raw)
	case domain.KindContact:
		return uc.SubmitContact(ctx, raw)
	default:
		return "", apperror.New(http.StatusBadRequest, "Unknown submission type", domain.ErrUnknownKind)
	}
}

// SubmitAppointment stores a booking and fires its notification. The id is
// returned as soon as the insert succeeds; the email outcome is never reported here.
func (uc *submissionUsecase) SubmitAppointment(ctx context.Context, raw map[string]any) (string, error) {
	appt, fieldErrs := uc.validator.ValidateAppointment(raw)
	if len(fieldErrs) > 0 {
		return "", apperror.Validation(fieldErrs, domain.ErrInvalid)
	}

	if err := uc.appointments.Create(ctx, &appt); err != nil {
		logger.FromContext(ctx).Error("Failed to store appointment", "error", err)
		return "", apperror.New(http.StatusInternalServerError,
			"Failed to book appointment. Please try again.",
			fmt.Errorf("%w: %v", domain.ErrStoreFailure, err))
	}

	uc.dispatcher.Dispatch(ctx, appt.Notification())
	return appt.ID, nil
}

// SubmitContact stores a contact message and fires its notification.
func (uc *submissionUsecase) SubmitContact(ctx context.Context, raw map[string]any) (string, error) {
	msg, fieldErrs := uc.validator.ValidateContact(raw)
	if len(fieldErrs) > 0 {
		return "", apperror.Validation(fieldErrs, domain.ErrInvalid)
	}

	if err := uc.contacts.Create(ctx, &msg); err != nil {
		logger.FromContext(ctx).Error("Failed to store contact message", "error", err)
		return "", apperror.New(http.StatusInternalServerError,
			"Failed to send message. Please try again later.",
			fmt.Errorf("%w: %v", domain.ErrStoreFailure, err))
	}

	uc.dispatcher.Dispatch(ctx, msg.Notification())
	return msg.ID, nil
}
