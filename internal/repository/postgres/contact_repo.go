package postgres

import (
	"context"
	"fmt"

	"go-booking-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const contactColumns = `id, name, email, phone, subject, message, status, created_at`

type contactRepo struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) domain.ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(ctx context.Context, c *domain.ContactSubmission) error {
	query := `INSERT INTO contact_submissions (name, email, phone, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, created_at`

	err := r.db.QueryRow(ctx, query, c.Name, c.Email, c.Phone, c.Subject, c.Message).
		Scan(&c.ID, &c.Status, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}

func (r *contactRepo) ListRecent(ctx context.Context, opts domain.ListOptions) ([]domain.ContactSubmission, error) {
	statuses := make([]string, 0, len(domain.ContactStatuses))
	if opts.Status != "" {
		statuses = append(statuses, opts.Status)
	} else {
		for _, s := range domain.ContactStatuses {
			statuses = append(statuses, string(s))
		}
	}

	query := `SELECT ` + contactColumns + `
		FROM contact_submissions
		WHERE status = ANY($1::text[])
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	limit, offset := pageArgs(opts)
	rows, err := r.db.Query(ctx, query, pq.Array(statuses), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	defer rows.Close()

	items := []domain.ContactSubmission{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

func (r *contactRepo) UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) (*domain.ContactSubmission, error) {
	query := `UPDATE contact_submissions SET status = $2 WHERE id = $1 RETURNING ` + contactColumns

	c, err := scanContact(r.db.QueryRow(ctx, query, id, string(status)))
	if err != nil {
		if statusRejected(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, status)
		}
		return nil, notFound(err)
	}
	return c, nil
}

func scanContact(row pgx.Row) (*domain.ContactSubmission, error) {
	var c domain.ContactSubmission
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message, &c.Status, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
