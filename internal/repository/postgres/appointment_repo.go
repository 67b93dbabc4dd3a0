package postgres

import (
	"context"
	"fmt"

	"go-booking-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const appointmentColumns = `id, name, email, phone, company, service,
	preferred_date::text, preferred_time, description, status, created_at`

type appointmentRepo struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) domain.AppointmentRepository {
	return &appointmentRepo{db: db}
}

// Create inserts the booking and reads back the store-assigned id, status and created_at.
func (r *appointmentRepo) Create(ctx context.Context, a *domain.Appointment) error {
	query := `INSERT INTO appointments
		(name, email, phone, company, service, preferred_date, preferred_time, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, status, created_at`

	err := r.db.QueryRow(ctx, query,
		a.Name, a.Email, a.Phone, a.Company, a.Service, a.PreferredDate, a.PreferredTime, a.Description,
	).Scan(&a.ID, &a.Status, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepo) ListRecent(ctx context.Context, opts domain.ListOptions) ([]domain.Appointment, error) {
	statuses := make([]string, 0, len(domain.AppointmentStatuses))
	if opts.Status != "" {
		statuses = append(statuses, opts.Status)
	} else {
		for _, s := range domain.AppointmentStatuses {
			statuses = append(statuses, string(s))
		}
	}

	query := `SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE status = ANY($1::text[])
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	limit, offset := pageArgs(opts)
	rows, err := r.db.Query(ctx, query, pq.Array(statuses), limit, offset)
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
	query := `UPDATE appointments SET status = $2 WHERE id = $1 RETURNING ` + appointmentColumns

	a, err := scanAppointment(r.db.QueryRow(ctx, query, id, string(status)))
	if err != nil {
		if statusRejected(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, status)
		}
		return nil, notFound(err)
	}
	return a, nil
}

func scanAppointment(row pgx.Row) (*domain.Appointment, error) {
	var a domain.Appointment
	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &a.Company, &a.Service,
		&a.PreferredDate, &a.PreferredTime, &a.Description, &a.Status, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
