package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"relic-gallery-service/internal/core/domain"
	ports "relic-gallery-service/internal/core/ports/output"
)

type adminRepo struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) ports.AdminRepository {
	return &adminRepo{pool: pool}
}

func (r *adminRepo) Create(ctx context.Context, admin *domain.Admin) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO admin (username, password_hash) VALUES ($1, $2) RETURNING id
	`, admin.Username, admin.PasswordHash).Scan(&admin.ID)
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

func (r *adminRepo) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	admin := &domain.Admin{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, username, password_hash FROM admin WHERE username = $1
	`, username).Scan(&admin.ID, &admin.Username, &admin.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("get admin by username: %w", err)
	}
	return admin, nil
}

func (r *adminRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM admin").Scan(&count); err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return count, nil
}
