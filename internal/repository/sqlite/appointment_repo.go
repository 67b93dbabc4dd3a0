package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-booking-backend/internal/domain"

	"github.com/google/uuid"
)

const appointmentColumns = `id, name, email, phone, company, service,
	preferred_date, preferred_time, description, status, created_at`

type appointmentRepo struct {
	db *sql.DB
}

func (r *appointmentRepo) Create(ctx context.Context, a *domain.Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id := uuid.NewString()
	createdAt := time.Now().UTC()

	var status string
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO appointments
		   (id, name, email, phone, company, service, preferred_date, preferred_time, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING status`,
		id, a.Name, a.Email, a.Phone, nullable(a.Company), a.Service,
		a.PreferredDate, a.PreferredTime, nullable(a.Description), toMillis(createdAt),
	).Scan(&status)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}

	a.ID = id
	a.Status = domain.AppointmentStatus(status)
	a.CreatedAt = fromMillis(toMillis(createdAt))
	return nil
}

func (r *appointmentRepo) ListRecent(ctx context.Context, opts domain.ListOptions) ([]domain.Appointment, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+appointmentColumns+`
		   FROM appointments
		  WHERE (? = '' OR status = ?)
		  ORDER BY created_at DESC, rowid DESC
		  LIMIT ? OFFSET ?`,
		opts.Status, opts.Status, limit, opts.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	items := []domain.Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

func (r *appointmentRepo) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	a, err := scanAppointment(r.db.QueryRowContext(ctx,
		`UPDATE appointments SET status = ? WHERE id = ? RETURNING `+appointmentColumns,
		string(status), id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if isCheckViolation(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, status)
		}
		return nil, fmt.Errorf("update appointment status: %w", err)
	}
	return a, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row scanner) (*domain.Appointment, error) {
	var (
		a           domain.Appointment
		company     sql.NullString
		description sql.NullString
		status      string
		createdAt   int64
	)
	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &company, &a.Service,
		&a.PreferredDate, &a.PreferredTime, &description, &status, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	a.Company = fromNullable(company)
	a.Description = fromNullable(description)
	a.Status = domain.AppointmentStatus(status)
	a.CreatedAt = fromMillis(createdAt)
	return &a, nil
}
