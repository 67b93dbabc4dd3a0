package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"go-booking-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a json field name to one human-readable message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	return fmt.Sprintf("%d invalid field(s)", len(fe))
}

// Validator checks raw form records against the appointment, contact and signup schemas.
// It holds no per-call state and is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

type appointmentForm struct {
	Name          string `json:"name" validate:"required,max=100"`
	Email         string `json:"email" validate:"required,email,max=255"`
	Phone         string `json:"phone" validate:"required,min=10,max=15"`
	Company       string `json:"company" validate:"max=100"`
	Service       string `json:"service" validate:"required"`
	PreferredDate string `json:"preferred_date" validate:"required,datetime=2006-01-02"`
	PreferredTime string `json:"preferred_time" validate:"required,time_slot"`
	Description   string `json:"description" validate:"max=1000"`
}

type contactForm struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"max=15"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=1000"`
}

type signupForm struct {
	FullName        string `json:"full_name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"eqfield=Password"`
}

func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(JSONTagName)
	RegisterValidators(v)
	return &Validator{v: v}
}

// JSONTagName reports json names so errors line up with the submitted keys.
func JSONTagName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("time_slot", ValidTimeSlot)
}

// ValidTimeSlot accepts only the labels in domain.TimeSlots
func ValidTimeSlot(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, slot := range domain.TimeSlots {
		if val == slot {
			return true
		}
	}
	return false
}

// ValidateAppointment normalizes a raw booking record. The form's short keys
// "date" and "time" are accepted for preferred_date and preferred_time.
func (val *Validator) ValidateAppointment(raw map[string]any) (domain.Appointment, FieldErrors) {
	errs := FieldErrors{}
	form := appointmentForm{
		Name:          text(raw, errs, "name"),
		Email:         text(raw, errs, "email"),
		Phone:         text(raw, errs, "phone"),
		Company:       text(raw, errs, "company"),
		Service:       text(raw, errs, "service"),
		PreferredDate: text(raw, errs, "preferred_date", "date"),
		PreferredTime: text(raw, errs, "preferred_time", "time"),
		Description:   text(raw, errs, "description"),
	}
	val.check(&form, errs)
	if len(errs) > 0 {
		return domain.Appointment{}, errs
	}
	return domain.Appointment{
		Name:          form.Name,
		Email:         form.Email,
		Phone:         form.Phone,
		Company:       optional(form.Company),
		Service:       form.Service,
		PreferredDate: form.PreferredDate,
		PreferredTime: form.PreferredTime,
		Description:   optional(form.Description),
	}, nil
}

// ValidateContact normalizes a raw contact-form record.
func (val *Validator) ValidateContact(raw map[string]any) (domain.ContactSubmission, FieldErrors) {
	errs := FieldErrors{}
	form := contactForm{
		Name:    text(raw, errs, "name"),
		Email:   text(raw, errs, "email"),
		Phone:   text(raw, errs, "phone"),
		Subject: text(raw, errs, "subject"),
		Message: text(raw, errs, "message"),
	}
	val.check(&form, errs)
	if len(errs) > 0 {
		return domain.ContactSubmission{}, errs
	}
	return domain.ContactSubmission{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   optional(form.Phone),
		Subject: form.Subject,
		Message: form.Message,
	}, nil
}

// ValidateSignup checks the account sign-up form. A mismatched confirmation is
// reported on confirm_password only. Passwords are not trimmed.
func (val *Validator) ValidateSignup(raw map[string]any) (domain.SignupForm, FieldErrors) {
	errs := FieldErrors{}
	form := signupForm{
		FullName:        text(raw, errs, "full_name", "fullName"),
		Email:           text(raw, errs, "email"),
		Password:        rawText(raw, errs, "password"),
		ConfirmPassword: rawText(raw, errs, "confirm_password", "confirmPassword"),
	}
	val.check(&form, errs)
	if len(errs) > 0 {
		return domain.SignupForm{}, errs
	}
	return domain.SignupForm{FullName: form.FullName, Email: form.Email, Password: form.Password}, nil
}

// check runs struct validation, keeping any type error already recorded for a field.
func (val *Validator) check(form any, errs FieldErrors) {
	err := val.v.Struct(form)
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["_"] = "Invalid submission"
		return
	}
	for _, e := range verrs {
		if _, seen := errs[e.Field()]; seen {
			continue
		}
		errs[e.Field()] = formatSingleError(e)
	}
}

// text reads key (or its first present alias) as a trimmed string.
func text(raw map[string]any, errs FieldErrors, key string, aliases ...string) string {
	return strings.TrimSpace(rawText(raw, errs, key, aliases...))
}

func rawText(raw map[string]any, errs FieldErrors, key string, aliases ...string) string {
	v, ok := lookup(raw, key, aliases...)
	if !ok || v == nil {
		return ""
	}
	s, isString := v.(string)
	if !isString {
		errs[key] = fmt.Sprintf("%s must be text", getFieldLabel(key))
		return ""
	}
	return s
}

func lookup(raw map[string]any, key string, aliases ...string) (any, bool) {
	if raw == nil {
		return nil, false
	}
	if v, ok := raw[key]; ok {
		return v, true
	}
	for _, alias := range aliases {
		if v, ok := raw[alias]; ok {
			return v, true
		}
	}
	return nil, false
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
