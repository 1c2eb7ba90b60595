package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/storage"
)

type applicationUsecase struct {
	appRepo domain.ApplicationRepository
	jobRepo domain.JobRepository
	resumes storage.ResumeStore
}

func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	resumes storage.ResumeStore,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo: appRepo,
		jobRepo: jobRepo,
		resumes: resumes,
	}
}

// Apply runs validation, then job resolution, then authorization, then the
// atomic insert. The uniqueness invariant lives in the store's constraint, so
// concurrent identical requests yield exactly one application.
func (uc *applicationUsecase) Apply(ctx context.Context, actor *domain.User, jobID int64, coverLetter string, resume domain.ResumeUpload) (*domain.Application, error) {
	if resume.Filename == "" || len(resume.Data) == 0 {
		return nil, apperror.Validation("resume", "required", "A resume is required to submit an application")
	}
	var invalid storage.ErrInvalidResume
	if err := storage.ValidateResume(resume.Filename, resume.Data); err != nil {
		if errors.As(err, &invalid) {
			return nil, apperror.Validation("resume", "filetype", invalid.Reason)
		}
		return nil, apperror.Storage(err)
	}

	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if d := domain.Authorize(actor, domain.ActionApply, job); !d.Allowed {
		return nil, apperror.Authorization(d.Reason, "You cannot apply to your own job posting")
	}

	ref, err := uc.resumes.Store(ctx, resume.Filename, resume.Data)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	var coverLetterPtr *string
	if coverLetter != "" {
		coverLetterPtr = &coverLetter
	}

	app := &domain.Application{
		ApplicantID: actor.ID,
		JobID:       jobID,
		CoverLetter: coverLetterPtr,
		ResumeRef:   ref,
		CreatedAt:   time.Now(),
	}

	if err := uc.appRepo.Create(ctx, app); err != nil {
		// The insert lost; don't leave the stored resume orphaned.
		if rmErr := uc.resumes.Remove(ctx, ref); rmErr != nil {
			logger.Log.Warn("Failed to clean up resume after rejected application", "ref", ref, "error", rmErr)
		}
		return nil, err
	}

	return app, nil
}

// ListApplicantsFor returns a job's applications oldest-first; only the job's
// owner (or an admin) may see them.
func (uc *applicationUsecase) ListApplicantsFor(ctx context.Context, actor *domain.User, jobID int64) ([]domain.Application, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if d := domain.Authorize(actor, domain.ActionViewApplicants, job); !d.Allowed {
		return nil, apperror.Authorization(d.Reason, "Only the job's owner can view its applicants")
	}

	return uc.appRepo.GetByJobID(ctx, jobID)
}

// ListApplicationsOf is scoped to the actor's own records; no separate deny
// path exists.
func (uc *applicationUsecase) ListApplicationsOf(ctx context.Context, actor *domain.User) ([]domain.Application, error) {
	return uc.appRepo.GetByApplicantID(ctx, actor.ID)
}

func (uc *applicationUsecase) DeleteApplication(ctx context.Context, actor *domain.User, id int64) error {
	if d := domain.Authorize(actor, domain.ActionDeleteApplication, nil); !d.Allowed {
		return apperror.Authorization(d.Reason, "Only admins can delete applications")
	}
	return uc.appRepo.Delete(ctx, id)
}
