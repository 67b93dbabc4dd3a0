package domain

import (
	"context"
	"time"
)

type ContactStatus string

const (
	ContactNew      ContactStatus = "new"
	ContactReplied  ContactStatus = "replied"
	ContactArchived ContactStatus = "archived"
)

var ContactStatuses = []ContactStatus{ContactNew, ContactReplied, ContactArchived}

func (s ContactStatus) Valid() bool {
	for _, v := range ContactStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ContactSubmission is a validated contact-form message.
type ContactSubmission struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     *string       `json:"phone,omitempty"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" example:"Asha Patel"`
	Email   string `json:"email" example:"asha@example.com"`
	Phone   string `json:"phone,omitempty" example:"9825014775"`
	Subject string `json:"subject" example:"Quotation"`
	Message string `json:"message" example:"Please share a quote for cable laying."`
}

// ContactRepository is the contact_submissions table. Create fills ID, Status and CreatedAt.
type ContactRepository interface {
	Create(ctx context.Context, c *ContactSubmission) error
	ListRecent(ctx context.Context, opts ListOptions) ([]ContactSubmission, error)
	UpdateStatus(ctx context.Context, id string, status ContactStatus) (*ContactSubmission, error)
}
