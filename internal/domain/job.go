package domain

import (
	"context"
	"time"
)

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeInternship JobType = "internship"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeInternship:
		return true
	}
	return false
}

// Job is a public posting. OwnerID references the user that posted it and is
// immutable after creation.
type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Salary      float64   `json:"salary"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	JobType     JobType   `json:"job_type"`
	OwnerID     int64     `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type JobInput struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Company     string  `json:"company" validate:"required,max=100"`
	Salary      float64 `json:"salary" validate:"gte=0"`
	Description string  `json:"description" validate:"required"`
	Location    string  `json:"location" validate:"max=100"`
	JobType     string  `json:"job_type" validate:"required,oneof=full-time part-time internship"`
}

// JobFilter composes with logical AND. Query, Company and Location are
// case-insensitive substring matches; JobType is an exact enum match.
// Zero-valued fields impose no constraint.
type JobFilter struct {
	Query    string
	Company  string
	Location string
	JobType  JobType
}

// JobFacets are the distinct values offered as filter dropdowns.
type JobFacets struct {
	Companies []string `json:"companies"`
	JobTypes  []string `json:"job_types"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	// Search returns matches newest-first with an id-descending tie-break, so
	// re-running the same filter against an unchanged store yields the same
	// sequence.
	Search(ctx context.Context, filter JobFilter, limit, offset int) ([]Job, int64, error)
	Facets(ctx context.Context) (*JobFacets, error)
	Update(ctx context.Context, job *Job) error
	// DeleteCascade removes the job and its applications as one transaction.
	DeleteCascade(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]Job, int64, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, actor *User, input JobInput) (*Job, error)
	GetJobDetails(ctx context.Context, id int64) (*Job, error)
	SearchJobs(ctx context.Context, filter JobFilter, page, pageSize int) ([]Job, int64, error)
	JobFacets(ctx context.Context) (*JobFacets, error)
	UpdateJob(ctx context.Context, actor *User, id int64, input JobInput) (*Job, error)
	DeleteJob(ctx context.Context, actor *User, id int64) error
}
