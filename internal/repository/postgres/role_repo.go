package postgres

import (
	"context"
	"fmt"

	"go-booking-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type roleRepo struct {
	db *pgxpool.Pool
}

func NewRoleRepository(db *pgxpool.Pool) domain.RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) HasRole(ctx context.Context, userID, role string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2)`
	var ok bool
	if err := r.db.QueryRow(ctx, query, userID, role).Scan(&ok); err != nil {
		return false, fmt.Errorf("check role: %w", err)
	}
	return ok, nil
}

// GrantRole is idempotent.
func (r *roleRepo) GrantRole(ctx context.Context, userID, role string) error {
	query := `INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT (user_id, role) DO NOTHING`
	if _, err := r.db.Exec(ctx, query, userID, role); err != nil {
		return fmt.Errorf("grant role: %w", err)
	}
	return nil
}
