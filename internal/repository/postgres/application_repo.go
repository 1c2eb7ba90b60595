package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts the application. The (applicant_id, job_id) unique constraint
// is the duplicate check: no pre-read, so two concurrent identical requests
// cannot both succeed.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (applicant_id, job_id, cover_letter, resume_ref, created_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		app.ApplicantID, app.JobID, app.CoverLetter, app.ResumeRef, app.CreatedAt,
	).Scan(&app.ID)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return apperror.Duplicate("already_applied", "You have already applied to this job")
		}
		return apperror.Storage(err)
	}
	return nil
}

// GetByJobID returns a job's applications oldest-first, with applicant names
// joined for the employer's view.
func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.applicant_id, a.job_id, a.cover_letter, a.resume_ref, a.created_at,
		       u.fullname
		FROM applications a
		JOIN users u ON a.applicant_id = u.id
		WHERE a.job_id = $1
		ORDER BY a.created_at ASC, a.id ASC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.ApplicantID, &app.JobID, &app.CoverLetter, &app.ResumeRef, &app.CreatedAt,
			&app.ApplicantName,
		); err != nil {
			return nil, apperror.Storage(err)
		}
		applications = append(applications, app)
	}
	return applications, nil
}

// GetByApplicantID returns a seeker's own applications, newest-first, with job
// titles joined for the dashboard.
func (r *applicationRepo) GetByApplicantID(ctx context.Context, applicantID int64) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.applicant_id, a.job_id, a.cover_letter, a.resume_ref, a.created_at,
		       j.title
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		WHERE a.applicant_id = $1
		ORDER BY a.created_at DESC, a.id DESC`

	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.ApplicantID, &app.JobID, &app.CoverLetter, &app.ResumeRef, &app.CreatedAt,
			&app.JobTitle,
		); err != nil {
			return nil, apperror.Storage(err)
		}
		applications = append(applications, app)
	}
	return applications, nil
}

func (r *applicationRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return apperror.Storage(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("application", "Application not found")
	}
	return nil
}

func (r *applicationRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications`).Scan(&total); err != nil {
		return 0, apperror.Storage(err)
	}
	return total, nil
}
