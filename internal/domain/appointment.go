package domain

import (
	"context"
	"time"
)

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// AppointmentStatuses is the closed label set; any label may follow any other.
var AppointmentStatuses = []AppointmentStatus{
	AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled,
}

func (s AppointmentStatus) Valid() bool {
	for _, v := range AppointmentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Services lists the bookable service labels shown on the booking form.
// Storage does not enforce them.
var Services = []string{
	"Industrial Electrical Works",
	"HT/LT Installation",
	"Panel Manufacturing",
	"Generators & Transformers",
	"Cable Laying & Termination",
	"Metering & Protection",
	"Industrial Lighting",
	"Maintenance Services",
	"Other",
}

// TimeSlots lists the accepted preferred_time labels.
var TimeSlots = []string{
	"09:00 AM - 10:00 AM",
	"10:00 AM - 11:00 AM",
	"11:00 AM - 12:00 PM",
	"12:00 PM - 01:00 PM",
	"02:00 PM - 03:00 PM",
	"03:00 PM - 04:00 PM",
	"04:00 PM - 05:00 PM",
}

// Appointment is a validated booking request. ID, Status and CreatedAt are store-owned.
type Appointment struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Company       *string           `json:"company,omitempty"`
	Service       string            `json:"service"`
	PreferredDate string            `json:"preferred_date"`
	PreferredTime string            `json:"preferred_time"`
	Description   *string           `json:"description,omitempty"`
	Status        AppointmentStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
}

// AppointmentRequest documents the public booking payload.
type AppointmentRequest struct {
	Name          string `json:"name" example:"Asha Patel"`
	Email         string `json:"email" example:"asha@example.com"`
	Phone         string `json:"phone" example:"9825014775"`
	Company       string `json:"company,omitempty" example:"Patel Industries"`
	Service       string `json:"service" example:"HT/LT Installation"`
	PreferredDate string `json:"preferred_date" example:"2025-01-10"`
	PreferredTime string `json:"preferred_time" example:"09:00 AM - 10:00 AM"`
	Description   string `json:"description,omitempty" example:"New 11kV panel"`
}

type BookingOptions struct {
	Services  []string `json:"services"`
	TimeSlots []string `json:"timeSlots"`
}

// AppointmentRepository is the appointments table. Create fills ID, Status and CreatedAt.
type AppointmentRepository interface {
	Create(ctx context.Context, a *Appointment) error
	ListRecent(ctx context.Context, opts ListOptions) ([]Appointment, error)
	UpdateStatus(ctx context.Context, id string, status AppointmentStatus) (*Appointment, error)
}
