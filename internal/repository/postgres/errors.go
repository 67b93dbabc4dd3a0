package postgres

import (
	"errors"

	"go-booking-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgInvalidTextRepresentation = "22P02"
	pgCheckViolation            = "23514"
)

// notFound maps a missing row, or an id that cannot be a UUID, to domain.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepresentation {
		return domain.ErrNotFound
	}
	return err
}

// statusRejected reports whether the table's status CHECK refused the label.
func statusRejected(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation
}
