package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"go-booking-backend/config"
	"go-booking-backend/internal/domain"
	"go-booking-backend/pkg/logger"
)

// Branding is the business identity rendered into every email.
type Branding struct {
	Name      string
	ShortName string
	Phone     string
	Tagline   string
}

// Notifier renders and sends the customer confirmation and the admin alert
// for one submission. It keeps no state between calls.
type Notifier struct {
	client     *ResendClient
	fromEmail  string
	adminEmail string
	brand      Branding
	tmpl       *template.Template
}

type templateData struct {
	domain.NotificationData
	Brand Branding
}

// NewNotifier creates a Resend-backed notifier from configuration
func NewNotifier(cfg *config.Config) (*Notifier, error) {
	client, err := NewResendClient(cfg.ResendAPIKey, cfg.ResendBaseURL, cfg.NotifyTimeout)
	if err != nil {
		return nil, err
	}
	return &Notifier{
		client:     client,
		fromEmail:  cfg.EmailFrom,
		adminEmail: cfg.AdminEmail,
		brand: Branding{
			Name:      cfg.BusinessName,
			ShortName: cfg.BusinessShort,
			Phone:     cfg.BusinessPhone,
			Tagline:   cfg.BusinessTag,
		},
		tmpl: template.Must(template.New("email").Parse(emailTemplates)),
	}, nil
}

// IsConfigured checks if the email credential is present
func (n *Notifier) IsConfigured() bool {
	return n.client.IsConfigured()
}

// Notify sends both messages for n. The credential is checked before anything
// is rendered, so an unconfigured notifier makes no HTTP calls. The customer
// and admin sends are independent attempts; their failures are joined.
func (n *Notifier) Notify(ctx context.Context, note domain.Notification) error {
	if !n.IsConfigured() {
		return ErrUnconfigured
	}

	msgs, err := n.Render(note)
	if err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	var errs []error
	for _, m := range msgs {
		if err := n.client.Send(ctx, m.Message); err != nil {
			errs = append(errs, fmt.Errorf("%s email: %w", m.Audience, err))
			continue
		}
		log.Info("Notification email sent", "type", note.Kind, "audience", m.Audience)
	}
	return errors.Join(errs...)
}

// Rendered is a message ready to send, tagged with who it is for.
type Rendered struct {
	Audience string
	Message  Message
}

// Render builds the customer and admin messages for note without sending them.
func (n *Notifier) Render(note domain.Notification) ([]Rendered, error) {
	var customerTmpl, adminTmpl, customerSubject, adminSubject string
	d := note.Data

	switch note.Kind {
	case domain.KindAppointment:
		customerTmpl, adminTmpl = "appointment_customer", "appointment_admin"
		customerSubject = fmt.Sprintf("Appointment Booking Confirmation - %s", n.brand.ShortName)
		adminSubject = fmt.Sprintf("New Appointment: %s - %s", d.Name, d.Service)
	case domain.KindContact:
		customerTmpl, adminTmpl = "contact_customer", "contact_admin"
		customerSubject = fmt.Sprintf("Message Received - %s", n.brand.ShortName)
		adminSubject = fmt.Sprintf("New Contact: %s - %s", d.Name, d.Subject)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownKind, note.Kind)
	}

	data := templateData{NotificationData: d, Brand: n.brand}
	customerHTML, err := n.execute(customerTmpl, data)
	if err != nil {
		return nil, err
	}
	adminHTML, err := n.execute(adminTmpl, data)
	if err != nil {
		return nil, err
	}

	return []Rendered{
		{Audience: "customer", Message: Message{From: n.fromEmail, To: []string{d.Email}, Subject: customerSubject, HTML: customerHTML}},
		{Audience: "admin", Message: Message{From: n.fromEmail, To: []string{n.adminEmail}, Subject: adminSubject, HTML: adminHTML}},
	}, nil
}

func (n *Notifier) execute(name string, data templateData) (string, error) {
	var body bytes.Buffer
	if err := n.tmpl.ExecuteTemplate(&body, name, data); err != nil {
		return "", fmt.Errorf("failed to execute email template %s: %w", name, err)
	}
	return body.String(), nil
}
