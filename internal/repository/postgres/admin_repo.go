package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

type adminRepo struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) domain.AdminRepository {
	return &adminRepo{db: db}
}

// GetStats fetches the dashboard counters.
func (r *adminRepo) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	stats := &domain.AdminStats{}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&stats.TotalUsers); err != nil {
		return nil, apperror.Storage(err)
	}
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&stats.TotalJobs); err != nil {
		return nil, apperror.Storage(err)
	}
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications`).Scan(&stats.TotalApplications); err != nil {
		return nil, apperror.Storage(err)
	}

	return stats, nil
}
