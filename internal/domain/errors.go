package domain

import "errors"

var (
	// ErrInvalid marks a submission rejected by validation before any write.
	ErrInvalid = errors.New("submission is invalid")
	// ErrStoreFailure marks an insert or update the store could not complete.
	ErrStoreFailure = errors.New("submission store failure")
	// ErrNotFound is returned when a status update targets a missing record.
	ErrNotFound      = errors.New("record not found")
	ErrUnknownKind   = errors.New("unknown submission kind")
	ErrInvalidStatus = errors.New("invalid status")
	ErrNotAdmin      = errors.New("admin role required")
)
