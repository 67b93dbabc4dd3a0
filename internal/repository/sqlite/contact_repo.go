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

const contactColumns = `id, name, email, phone, subject, message, status, created_at`

type contactRepo struct {
	db *sql.DB
}

func (r *contactRepo) Create(ctx context.Context, c *domain.ContactSubmission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id := uuid.NewString()
	createdAt := time.Now().UTC()

	var status string
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO contact_submissions (id, name, email, phone, subject, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 RETURNING status`,
		id, c.Name, c.Email, nullable(c.Phone), c.Subject, c.Message, toMillis(createdAt),
	).Scan(&status)
	if err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}

	c.ID = id
	c.Status = domain.ContactStatus(status)
	c.CreatedAt = fromMillis(toMillis(createdAt))
	return nil
}

func (r *contactRepo) ListRecent(ctx context.Context, opts domain.ListOptions) ([]domain.ContactSubmission, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+contactColumns+`
		   FROM contact_submissions
		  WHERE (? = '' OR status = ?)
		  ORDER BY created_at DESC, rowid DESC
		  LIMIT ? OFFSET ?`,
		opts.Status, opts.Status, limit, opts.Offset,
	)
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
	c, err := scanContact(r.db.QueryRowContext(ctx,
		`UPDATE contact_submissions SET status = ? WHERE id = ? RETURNING `+contactColumns,
		string(status), id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if isCheckViolation(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, status)
		}
		return nil, fmt.Errorf("update contact status: %w", err)
	}
	return c, nil
}

func scanContact(row scanner) (*domain.ContactSubmission, error) {
	var (
		c         domain.ContactSubmission
		phone     sql.NullString
		status    string
		createdAt int64
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &phone, &c.Subject, &c.Message, &status, &createdAt); err != nil {
		return nil, err
	}
	c.Phone = fromNullable(phone)
	c.Status = domain.ContactStatus(status)
	c.CreatedAt = fromMillis(createdAt)
	return &c, nil
}
