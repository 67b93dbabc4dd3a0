package email

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

var (
	ErrUnconfigured   = errors.New("email service is not configured")
	ErrDeliveryFailed = errors.New("email delivery failed")
)

// DeliveryError describes one rejected or failed send.
type DeliveryError struct {
	To  []string
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("send to %s: %v", strings.Join(e.To, ","), e.Err)
}

func (e *DeliveryError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrDeliveryFailed, e.Err}
	}
	return []error{ErrDeliveryFailed}
}

// Message is the Resend /emails request body.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// ResendClient sends transactional email through the Resend SDK.
type ResendClient struct {
	apiKey string
	client *resend.Client
}

// NewResendClient bounds every call by timeout. An empty baseURL keeps the
// SDK default.
func NewResendClient(apiKey, baseURL string, timeout time.Duration) (*ResendClient, error) {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	client := resend.NewCustomClient(&http.Client{Timeout: timeout}, apiKey)
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid resend base url: %w", err)
		}
		client.BaseURL = u
	}
	return &ResendClient{apiKey: apiKey, client: client}, nil
}

// IsConfigured reports whether an API key is present
func (c *ResendClient) IsConfigured() bool {
	return c.apiKey != ""
}

// Send performs exactly one POST /emails. Transport failures and rejected
// requests become a *DeliveryError.
func (c *ResendClient) Send(ctx context.Context, msg Message) error {
	if !c.IsConfigured() {
		return ErrUnconfigured
	}

	_, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return &DeliveryError{To: msg.To, Err: err}
	}
	return nil
}
