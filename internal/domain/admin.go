package domain

import "context"

// AdminStats are the dashboard counters.
type AdminStats struct {
	TotalUsers        int64 `json:"total_users"`
	TotalJobs         int64 `json:"total_jobs"`
	TotalApplications int64 `json:"total_applications"`
}

type AdminRepository interface {
	GetStats(ctx context.Context) (*AdminStats, error)
}

type AdminUsecase interface {
	GetStats(ctx context.Context, actor *User) (*AdminStats, error)
	ListUsers(ctx context.Context, actor *User, page, pageSize int) ([]User, int64, error)
	ListJobs(ctx context.Context, actor *User, page, pageSize int) ([]Job, int64, error)
	// DeleteUser cascades to the target's jobs and applications. Admins cannot
	// delete their own account.
	DeleteUser(ctx context.Context, actor *User, userID int64) error
	DeleteJob(ctx context.Context, actor *User, jobID int64) error
}
