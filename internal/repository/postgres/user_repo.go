package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (fullname, email, password_hash, is_employer, is_admin, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		user.FullName, user.Email, user.PasswordHash, user.IsEmployer, user.IsAdmin, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return apperror.Duplicate("email_taken", "Email already registered")
		}
		return apperror.Storage(err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, fullname, email, password_hash, is_employer, is_admin, created_at
	          FROM users WHERE id = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.FullName, &user.Email, &user.PasswordHash,
		&user.IsEmployer, &user.IsAdmin, &user.CreatedAt,
	)
	if err != nil {
		return nil, translate(err, "user")
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	// Emails are stored lowercased, but compare case-insensitively anyway so
	// rows predating normalization still resolve.
	query := `SELECT id, fullname, email, password_hash, is_employer, is_admin, created_at
	          FROM users WHERE lower(email) = lower($1)`
	var user domain.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.FullName, &user.Email, &user.PasswordHash,
		&user.IsEmployer, &user.IsAdmin, &user.CreatedAt,
	)
	if err != nil {
		return nil, translate(err, "user")
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET fullname = $2, is_employer = $3, is_admin = $4 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, user.ID, user.FullName, user.IsEmployer, user.IsAdmin)
	if err != nil {
		return apperror.Storage(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("user", "User not found")
	}
	return nil
}

// DeleteCascade removes the user, the jobs they own (with those jobs'
// applications) and the applications they submitted, in one transaction.
func (r *userRepo) DeleteCascade(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Storage(err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM applications WHERE applicant_id = $1`, id); err != nil {
		return apperror.Storage(err)
	}
	if _, err := tx.Exec(ctx,
		`DELETE FROM applications WHERE job_id IN (SELECT id FROM jobs WHERE owner_id = $1)`, id); err != nil {
		return apperror.Storage(err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM jobs WHERE owner_id = $1`, id); err != nil {
		return apperror.Storage(err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperror.Storage(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("user", "User not found")
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Storage(err)
	}
	return nil
}

func (r *userRepo) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	query := `SELECT id, fullname, email, password_hash, is_employer, is_admin, created_at
	          FROM users ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, apperror.Storage(err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID, &user.FullName, &user.Email, &user.PasswordHash,
			&user.IsEmployer, &user.IsAdmin, &user.CreatedAt,
		); err != nil {
			return nil, 0, apperror.Storage(err)
		}
		users = append(users, user)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, apperror.Storage(err)
	}

	return users, total, nil
}
