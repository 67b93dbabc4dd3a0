package domain

import "context"

// Kind discriminates the two submission shapes.
type Kind string

const (
	KindAppointment Kind = "appointment"
	KindContact     Kind = "contact"
)

func (k Kind) Valid() bool {
	return k == KindAppointment || k == KindContact
}

// ListOptions filters and pages a newest-first listing. Empty Status returns all
// rows; a non-positive Limit leaves the listing unbounded.
type ListOptions struct {
	Status string
	Limit  int
	Offset int
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required" example:"confirmed"`
}

// SubmissionCreated is returned to the submitter once the record is stored.
type SubmissionCreated struct {
	ID string `json:"id"`
}

// StatusCounts tallies records by status label.
type StatusCounts map[string]int

type Overview struct {
	Appointments         []Appointment       `json:"appointments"`
	Contacts             []ContactSubmission `json:"contacts"`
	AppointmentsByStatus StatusCounts        `json:"appointmentsByStatus"`
	ContactsByStatus     StatusCounts        `json:"contactsByStatus"`
}

// SubmissionUsecase is the public submission pipeline.
type SubmissionUsecase interface {
	Submit(ctx context.Context, kind Kind, raw map[string]any) (string, error)
	SubmitAppointment(ctx context.Context, raw map[string]any) (string, error)
	SubmitContact(ctx context.Context, raw map[string]any) (string, error)
}

// ReviewUsecase backs the authenticated dashboard. Every method requires the admin role.
type ReviewUsecase interface {
	ListAppointments(ctx context.Context, opts ListOptions) ([]Appointment, error)
	ListContacts(ctx context.Context, opts ListOptions) ([]ContactSubmission, error)
	UpdateAppointmentStatus(ctx context.Context, id string, status string) (*Appointment, error)
	UpdateContactStatus(ctx context.Context, id string, status string) (*ContactSubmission, error)
	Overview(ctx context.Context) (*Overview, error)
}
