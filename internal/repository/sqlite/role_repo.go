package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type roleRepo struct {
	db *sql.DB
}

func (r *roleRepo) HasRole(ctx context.Context, userID, role string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id = ? AND role = ?)`,
		userID, role,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check role: %w", err)
	}
	return ok, nil
}

// GrantRole is idempotent.
func (r *roleRepo) GrantRole(ctx context.Context, userID, role string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO user_roles (user_id, role, created_at) VALUES (?, ?, ?)`,
		userID, role, toMillis(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("grant role: %w", err)
	}
	return nil
}
