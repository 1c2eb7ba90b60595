package usecase

import (
	"context"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	validate *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:  jobRepo,
		validate: validate,
	}
}

// CreateJob validates, then authorizes, then persists; a failing request never
// mutates state.
func (u *jobUsecase) CreateJob(ctx context.Context, actor *domain.User, input domain.JobInput) (*domain.Job, error) {
	if err := validation.Struct(u.validate, input); err != nil {
		return nil, err
	}

	if d := domain.Authorize(actor, domain.ActionCreateJob, nil); !d.Allowed {
		return nil, apperror.Authorization(d.Reason, "Only employers or admins can create jobs")
	}

	job := &domain.Job{
		Title:       strings.TrimSpace(input.Title),
		Company:     strings.TrimSpace(input.Company),
		Salary:      input.Salary,
		Description: input.Description,
		Location:    strings.TrimSpace(input.Location),
		JobType:     domain.JobType(input.JobType),
		OwnerID:     actor.ID,
		CreatedAt:   time.Now(),
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.Job, error) {
	return u.jobRepo.GetByID(ctx, id)
}

// SearchJobs is public: job postings are visible to any caller, including
// unauthenticated ones, so no authorization applies on the read path.
func (u *jobUsecase) SearchJobs(ctx context.Context, filter domain.JobFilter, page, pageSize int) ([]domain.Job, int64, error) {
	if filter.JobType != "" && !filter.JobType.Valid() {
		return nil, 0, apperror.Validation("job_type", "oneof", "Unknown job type: "+string(filter.JobType))
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.Search(ctx, filter, pageSize, offset)
}

func (u *jobUsecase) JobFacets(ctx context.Context) (*domain.JobFacets, error) {
	return u.jobRepo.Facets(ctx)
}

// UpdateJob keeps the owner reference of the stored row: only the content
// fields are replaced, so ownership cannot be reassigned through an edit.
func (u *jobUsecase) UpdateJob(ctx context.Context, actor *domain.User, id int64, input domain.JobInput) (*domain.Job, error) {
	if err := validation.Struct(u.validate, input); err != nil {
		return nil, err
	}

	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if d := domain.Authorize(actor, domain.ActionEditJob, job); !d.Allowed {
		return nil, apperror.Authorization(d.Reason, "You are not allowed to edit this job")
	}

	job.Title = strings.TrimSpace(input.Title)
	job.Company = strings.TrimSpace(input.Company)
	job.Salary = input.Salary
	job.Description = input.Description
	job.Location = strings.TrimSpace(input.Location)
	job.JobType = domain.JobType(input.JobType)

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, actor *domain.User, id int64) error {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if d := domain.Authorize(actor, domain.ActionDeleteJob, job); !d.Allowed {
		return apperror.Authorization(d.Reason, "You are not allowed to delete this job")
	}

	return u.jobRepo.DeleteCascade(ctx, id)
}
