package postgres

import (
	"context"
	"fmt"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, title, company, salary, description, location, job_type, owner_id, created_at`

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (title, company, salary, description, location, job_type, owner_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		job.Title, job.Company, job.Salary, job.Description, job.Location,
		job.JobType, job.OwnerID, job.CreatedAt,
	).Scan(&job.ID)
	if err != nil {
		return apperror.Storage(err)
	}
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Company, &job.Salary, &job.Description,
		&job.Location, &job.JobType, &job.OwnerID, &job.CreatedAt,
	)
	if err != nil {
		return nil, translate(err, "job")
	}
	return &job, nil
}

// searchClause builds the WHERE clause for a JobFilter. Query, company and
// location match as case-insensitive substrings; job_type matches the enum
// exactly; conditions compose with AND.
func searchClause(filter domain.JobFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	if filter.Company != "" {
		args = append(args, "%"+filter.Company+"%")
		conds = append(conds, fmt.Sprintf("company ILIKE $%d", len(args)))
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		conds = append(conds, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if filter.JobType != "" {
		args = append(args, string(filter.JobType))
		conds = append(conds, fmt.Sprintf("job_type = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Search orders newest-first with an id-descending tie-break so paginating the
// same filter over an unchanged table is deterministic.
func (r *jobRepo) Search(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.Job, int64, error) {
	where, args := searchClause(filter)

	query := fmt.Sprintf(`SELECT `+jobColumns+` FROM jobs%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, apperror.Storage(err)
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Company, &job.Salary, &job.Description,
			&job.Location, &job.JobType, &job.OwnerID, &job.CreatedAt,
		); err != nil {
			return nil, 0, apperror.Storage(err)
		}
		jobs = append(jobs, job)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`+where, args...).Scan(&total); err != nil {
		return nil, 0, apperror.Storage(err)
	}

	return jobs, total, nil
}

func (r *jobRepo) Facets(ctx context.Context) (*domain.JobFacets, error) {
	facets := &domain.JobFacets{}

	rows, err := r.db.Query(ctx, `SELECT DISTINCT company FROM jobs WHERE company <> '' ORDER BY company`)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	defer rows.Close()
	for rows.Next() {
		var company string
		if err := rows.Scan(&company); err != nil {
			return nil, apperror.Storage(err)
		}
		facets.Companies = append(facets.Companies, company)
	}

	typeRows, err := r.db.Query(ctx, `SELECT DISTINCT job_type FROM jobs ORDER BY job_type`)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	defer typeRows.Close()
	for typeRows.Next() {
		var jobType string
		if err := typeRows.Scan(&jobType); err != nil {
			return nil, apperror.Storage(err)
		}
		facets.JobTypes = append(facets.JobTypes, jobType)
	}

	return facets, nil
}

// Update never touches owner_id: the owner reference is immutable after
// creation, enforced here as well as in the usecase.
func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET title = $2, company = $3, salary = $4, description = $5, location = $6, job_type = $7
	          WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Company, job.Salary, job.Description, job.Location, job.JobType,
	)
	if err != nil {
		return apperror.Storage(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("job", "Job not found")
	}
	return nil
}

// DeleteCascade removes the job and its applications in one transaction.
func (r *jobRepo) DeleteCascade(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Storage(err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM applications WHERE job_id = $1`, id); err != nil {
		return apperror.Storage(err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return apperror.Storage(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("job", "Job not found")
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Storage(err)
	}
	return nil
}

func (r *jobRepo) List(ctx context.Context, limit, offset int) ([]domain.Job, int64, error) {
	return r.Search(ctx, domain.JobFilter{}, limit, offset)
}
