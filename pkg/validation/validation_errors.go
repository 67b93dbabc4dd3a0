package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps json field names to user-friendly labels
var FieldLabels = map[string]string{
	"name":             "Name",
	"full_name":        "Name",
	"email":            "Email",
	"phone":            "Phone number",
	"company":          "Company name",
	"service":          "Service",
	"preferred_date":   "Date",
	"preferred_time":   "Time slot",
	"description":      "Description",
	"subject":          "Subject",
	"message":          "Message",
	"limit":            "Limit",
	"offset":           "Offset",
	"password":         "Password",
	"confirm_password": "Password confirmation",
}

// fieldMessages overrides the generic wording for specific field/tag pairs,
// keeping the booking form's original messages.
var fieldMessages = map[string]string{
	"email.email":               "Invalid email address",
	"phone.min":                 "Phone number must be at least 10 digits",
	"phone.max":                 "Phone number is too long",
	"service.required":          "Please select a service",
	"preferred_date.required":   "Please select a date",
	"preferred_date.datetime":   "Please select a valid date",
	"preferred_time.required":   "Please select a time slot",
	"preferred_time.time_slot":  "Please select one of the available time slots",
	"confirm_password.eqfield":  "Passwords don't match",
	"confirm_password.required": "Please confirm your password",
}

// FormatValidationErrors converts validator.ValidationErrors to a field-keyed map
func FormatValidationErrors(err error) FieldErrors {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"_": "Invalid request"}
	}

	out := FieldErrors{}
	for _, e := range validationErrors {
		if _, seen := out[e.Field()]; !seen {
			out[e.Field()] = formatSingleError(e)
		}
	}
	return out
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	fieldName := e.Field()
	tag := e.Tag()
	param := e.Param()

	if msg, ok := fieldMessages[fieldName+"."+tag]; ok {
		return msg
	}

	label := getFieldLabel(fieldName)
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, param)

	case "max":
		return fmt.Sprintf("%s must be less than %s characters", label, param)

	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)

	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", label)

	case "eqfield":
		return fmt.Sprintf("%s must match %s", label, getFieldLabel(strings.ToLower(param)))

	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// getFieldLabel returns the user-friendly label for a field
// FieldLabel returns the user-facing label for a json field name.
func FieldLabel(fieldName string) string {
	return getFieldLabel(fieldName)
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatSnakeCase(fieldName)
}

// formatSnakeCase converts snake_case to a capitalized phrase
func formatSnakeCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	if len(words) == 0 {
		return s
	}
	words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	return strings.Join(words, " ")
}
