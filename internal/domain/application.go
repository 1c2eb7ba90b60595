package domain

import (
	"context"
	"time"
)

// Application records a seeker's submission to a job. It is never mutated
// after creation; there is no review workflow.
type Application struct {
	ID          int64     `json:"id"`
	ApplicantID int64     `json:"applicant_id"`
	JobID       int64     `json:"job_id"`
	CoverLetter *string   `json:"cover_letter,omitempty"`
	ResumeRef   string    `json:"resume_ref"`
	CreatedAt   time.Time `json:"created_at"`

	// Joined fields for listings
	JobTitle      string `json:"job_title,omitempty"`
	ApplicantName string `json:"applicant_name,omitempty"`
}

// ResumeUpload is the raw upload as received; the workflow validates and
// stores it, keeping only the opaque reference.
type ResumeUpload struct {
	Filename string
	Data     []byte
}

type ApplicationRepository interface {
	// Create inserts under the (applicant_id, job_id) unique constraint; a
	// violation surfaces as DuplicateError("already_applied"). There is no
	// separate pre-check, so two concurrent identical requests cannot both
	// succeed.
	Create(ctx context.Context, app *Application) error
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	GetByApplicantID(ctx context.Context, applicantID int64) ([]Application, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, actor *User, jobID int64, coverLetter string, resume ResumeUpload) (*Application, error)
	// ListApplicantsFor returns a job's applications oldest-first, gated on
	// ownership of the job.
	ListApplicantsFor(ctx context.Context, actor *User, jobID int64) ([]Application, error)
	// ListApplicationsOf is the seeker's own dashboard; the query is scoped to
	// the actor, so no authorization applies.
	ListApplicationsOf(ctx context.Context, actor *User) ([]Application, error)
	DeleteApplication(ctx context.Context, actor *User, id int64) error
}
