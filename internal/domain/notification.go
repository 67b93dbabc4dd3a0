package domain

import "context"

// NotificationData is the union of fields the email templates may render.
// Empty strings are treated as absent.
type NotificationData struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Company       string `json:"company,omitempty"`
	Service       string `json:"service,omitempty"`
	PreferredDate string `json:"preferred_date,omitempty"`
	PreferredTime string `json:"preferred_time,omitempty"`
	Description   string `json:"description,omitempty"`
	Subject       string `json:"subject,omitempty"`
	Message       string `json:"message,omitempty"`
}

// Notification is one fire-and-forget request to email the submitter and the admin.
type Notification struct {
	Kind Kind             `json:"type"`
	Data NotificationData `json:"data"`
}

// Notifier sends the customer confirmation and the admin alert for one submission.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

func (a Appointment) Notification() Notification {
	return Notification{
		Kind: KindAppointment,
		Data: NotificationData{
			Name:          a.Name,
			Email:         a.Email,
			Phone:         a.Phone,
			Company:       deref(a.Company),
			Service:       a.Service,
			PreferredDate: a.PreferredDate,
			PreferredTime: a.PreferredTime,
			Description:   deref(a.Description),
		},
	}
}

func (c ContactSubmission) Notification() Notification {
	return Notification{
		Kind: KindContact,
		Data: NotificationData{
			Name:    c.Name,
			Email:   c.Email,
			Phone:   deref(c.Phone),
			Subject: c.Subject,
			Message: c.Message,
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NotificationDispatcher starts a notification without waiting for its outcome.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, n Notification)
}
