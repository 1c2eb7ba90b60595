package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
)

type adminUsecase struct {
	adminRepo domain.AdminRepository
	userRepo  domain.UserRepository
	jobRepo   domain.JobRepository
}

func NewAdminUsecase(adminRepo domain.AdminRepository, userRepo domain.UserRepository, jobRepo domain.JobRepository) domain.AdminUsecase {
	return &adminUsecase{
		adminRepo: adminRepo,
		userRepo:  userRepo,
		jobRepo:   jobRepo,
	}
}

func (u *adminUsecase) GetStats(ctx context.Context, actor *domain.User) (*domain.AdminStats, error) {
	if d := domain.Authorize(actor, domain.ActionViewAll, nil); !d.Allowed {
		return nil, apperror.Authorization(d.Reason, "Admin access required")
	}
	return u.adminRepo.GetStats(ctx)
}

func (u *adminUsecase) ListUsers(ctx context.Context, actor *domain.User, page, pageSize int) ([]domain.User, int64, error) {
	if d := domain.Authorize(actor, domain.ActionViewAll, nil); !d.Allowed {
		return nil, 0, apperror.Authorization(d.Reason, "Admin access required")
	}

	limit, offset := paginate(page, pageSize)
	return u.userRepo.List(ctx, limit, offset)
}

func (u *adminUsecase) ListJobs(ctx context.Context, actor *domain.User, page, pageSize int) ([]domain.Job, int64, error) {
	if d := domain.Authorize(actor, domain.ActionViewAll, nil); !d.Allowed {
		return nil, 0, apperror.Authorization(d.Reason, "Admin access required")
	}

	limit, offset := paginate(page, pageSize)
	return u.jobRepo.List(ctx, limit, offset)
}

// DeleteUser cascades to the target's jobs and submitted applications. The
// self-delete guard keeps an admin from locking everyone out.
func (u *adminUsecase) DeleteUser(ctx context.Context, actor *domain.User, userID int64) error {
	if d := domain.Authorize(actor, domain.ActionDeleteUser, nil); !d.Allowed {
		return apperror.Authorization(d.Reason, "Only admins can delete users")
	}
	if actor.ID == userID {
		return apperror.Validation("user_id", "self_delete", "You cannot delete your own admin account")
	}

	if err := u.userRepo.DeleteCascade(ctx, userID); err != nil {
		return err
	}
	logger.Log.Info("User deleted by admin", "user_id", userID, "admin_id", actor.ID)
	return nil
}

func (u *adminUsecase) DeleteJob(ctx context.Context, actor *domain.User, jobID int64) error {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}

	if d := domain.Authorize(actor, domain.ActionDeleteJob, job); !d.Allowed {
		return apperror.Authorization(d.Reason, "You are not allowed to delete this job")
	}

	if err := u.jobRepo.DeleteCascade(ctx, jobID); err != nil {
		return err
	}
	logger.Log.Info("Job deleted by admin", "job_id", jobID, "admin_id", actor.ID)
	return nil
}

func paginate(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return pageSize, (page - 1) * pageSize
}
