package apperror

import "net/http"

type AppError struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Err     error             `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation carries per-field messages back to the submitter.
func Validation(fields map[string]string, err error) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Please correct the highlighted fields",
		Fields:  fields,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func NotFound(message string, err error) *AppError {
	return New(http.StatusNotFound, message, err)
}
