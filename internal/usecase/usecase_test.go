package usecase_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) DeleteCascade(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockUserRepo) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Search(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) Facets(ctx context.Context) (*domain.JobFacets, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobFacets), args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) DeleteCascade(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockJobRepo) List(ctx context.Context, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByApplicantID(ctx context.Context, applicantID int64) ([]domain.Application, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockApplicationRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminStats), args.Error(1)
}

type MockResumeStore struct {
	mock.Mock
}

func (m *MockResumeStore) Store(ctx context.Context, filename string, data []byte) (string, error) {
	args := m.Called(ctx, filename, data)
	return args.String(0), args.Error(1)
}
func (m *MockResumeStore) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
func (m *MockResumeStore) Remove(ctx context.Context, ref string) error {
	return m.Called(ctx, ref).Error(0)
}

var pdfBytes = []byte("%PDF-1.4 test resume content")

func kindOf(t *testing.T, err error) apperror.Kind {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	return appErr.Kind
}

func reasonOf(t *testing.T, err error) string {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	return appErr.Reason
}

func TestSignup(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Minute)
	validate := validator.New()

	t.Run("Should normalize email to lowercase before storing", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens, validate)

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			u.ID = 1
			assert.Equal(t, "alice@example.com", u.Email)
			assert.NotEqual(t, "secret-password", u.PasswordHash)
		})

		user, token, err := uc.Signup(context.Background(), domain.SignupInput{
			FullName: "Alice",
			Email:    "  Alice@Example.COM ",
			Password: "secret-password",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, int64(1), user.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should surface duplicate email from the store", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens, validate)

		mockRepo.On("Create", mock.Anything, mock.Anything).
			Return(apperror.Duplicate("email_taken", "Email is already registered"))

		_, _, err := uc.Signup(context.Background(), domain.SignupInput{
			FullName: "Alice",
			Email:    "alice@example.com",
			Password: "secret-password",
		})
		assert.Error(t, err)
		assert.Equal(t, apperror.KindDuplicate, kindOf(t, err))
		assert.Equal(t, "email_taken", reasonOf(t, err))
	})

	t.Run("Should reject a short password before touching the store", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens, validate)

		_, _, err := uc.Signup(context.Background(), domain.SignupInput{
			FullName: "Alice",
			Email:    "alice@example.com",
			Password: "short",
		})
		assert.Error(t, err)
		assert.Equal(t, apperror.KindValidation, kindOf(t, err))
		assert.Equal(t, "password:min", reasonOf(t, err))
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestLogin(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Minute)
	validate := validator.New()

	t.Run("Unknown email and wrong password are indistinguishable", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens, validate)

		mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").
			Return(nil, apperror.NotFound("user", "User not found"))

		_, _, err := uc.Login(context.Background(), "ghost@example.com", "whatever-pass")
		assert.Error(t, err)
		assert.Equal(t, apperror.KindAuthentication, kindOf(t, err))
		assert.Equal(t, "invalid_credentials", reasonOf(t, err))
	})

	t.Run("Wrong password yields the same authentication error", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens, validate)

		// Stored hash matches neither the presented password nor anything else.
		mockRepo.On("GetByEmail", mock.Anything, "alice@example.com").
			Return(&domain.User{ID: 1, Email: "alice@example.com", PasswordHash: "$2a$10$invalidhashinvalidhashinvalidhashinvalidhashinvalidha"}, nil)

		_, _, loginErr := uc.Login(context.Background(), "alice@example.com", "not-the-password")
		assert.Error(t, loginErr)
		assert.Equal(t, apperror.KindAuthentication, kindOf(t, loginErr))
		assert.Equal(t, "invalid_credentials", reasonOf(t, loginErr))
	})
}

func TestCreateJobAuthorization(t *testing.T) {
	validate := validator.New()

	input := domain.JobInput{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Salary:      90000,
		Description: "Build services",
		Location:    "Pune",
		JobType:     "full-time",
	}

	t.Run("Seeker without employer capability is denied", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, validate)

		seeker := &domain.User{ID: 7}
		_, err := uc.CreateJob(context.Background(), seeker, input)
		assert.Error(t, err)
		assert.Equal(t, apperror.KindAuthorization, kindOf(t, err))
		assert.Equal(t, domain.ReasonEmployerRequired, reasonOf(t, err))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Employer creates a job owned by themselves", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, validate)

		employer := &domain.User{ID: 7, IsEmployer: true}
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil).Run(func(args mock.Arguments) {
			j := args.Get(1).(*domain.Job)
			assert.Equal(t, int64(7), j.OwnerID)
		})

		job, err := uc.CreateJob(context.Background(), employer, input)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), job.OwnerID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Admin without employer flag may still create", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, validate)

		admin := &domain.User{ID: 2, IsAdmin: true}
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.CreateJob(context.Background(), admin, input)
		assert.NoError(t, err)
	})

	t.Run("Invalid job type is rejected before authorization", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, validate)

		bad := input
		bad.JobType = "contract"
		_, err := uc.CreateJob(context.Background(), &domain.User{ID: 7, IsEmployer: true}, bad)
		assert.Error(t, err)
		assert.Equal(t, apperror.KindValidation, kindOf(t, err))
		assert.Equal(t, "job_type:oneof", reasonOf(t, err))
	})
}

func TestUpdateJobOwnership(t *testing.T) {
	validate := validator.New()

	stored := &domain.Job{ID: 10, Title: "Old", Company: "Acme", Description: "d", JobType: domain.JobTypeFullTime, OwnerID: 7}
	input := domain.JobInput{Title: "New Title", Company: "Acme", Salary: 1000, Description: "d", JobType: "part-time"}

	t.Run("Non-owner employer cannot edit", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, validate)

		mockRepo.On("GetByID", mock.Anything, int64(10)).Return(stored, nil)

		_, err := uc.UpdateJob(context.Background(), &domain.User{ID: 8, IsEmployer: true}, 10, input)
		assert.Error(t, err)
		assert.Equal(t, domain.ReasonNotOwner, reasonOf(t, err))
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Owner edit replaces content but not ownership", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, validate)

		copy := *stored
		mockRepo.On("GetByID", mock.Anything, int64(10)).Return(&copy, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil).Run(func(args mock.Arguments) {
			j := args.Get(1).(*domain.Job)
			assert.Equal(t, "New Title", j.Title)
			assert.Equal(t, int64(7), j.OwnerID)
		})

		job, err := uc.UpdateJob(context.Background(), &domain.User{ID: 7, IsEmployer: true}, 10, input)
		assert.NoError(t, err)
		assert.Equal(t, domain.JobTypePartTime, job.JobType)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Admin may edit any job", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, validate)

		copy := *stored
		mockRepo.On("GetByID", mock.Anything, int64(10)).Return(&copy, nil)
		mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.UpdateJob(context.Background(), &domain.User{ID: 99, IsAdmin: true}, 10, input)
		assert.NoError(t, err)
	})
}

func TestSearchJobs(t *testing.T) {
	validate := validator.New()

	t.Run("Unknown job type filter is a validation error", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, validate)

		_, _, err := uc.SearchJobs(context.Background(), domain.JobFilter{JobType: "freelance"}, 1, 10)
		assert.Error(t, err)
		assert.Equal(t, apperror.KindValidation, kindOf(t, err))
		mockRepo.AssertNotCalled(t, "Search")
	})

	t.Run("Page defaults are normalized", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, validate)

		mockRepo.On("Search", mock.Anything, domain.JobFilter{}, 10, 0).Return([]domain.Job{}, int64(0), nil)

		_, _, err := uc.SearchJobs(context.Background(), domain.JobFilter{}, 0, 0)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestApply(t *testing.T) {
	job := &domain.Job{ID: 5, Title: "Backend Engineer", OwnerID: 7}
	seeker := &domain.User{ID: 3}

	upload := domain.ResumeUpload{Filename: "resume.pdf", Data: pdfBytes}

	t.Run("Successful application stores resume then inserts", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		mockStore := new(MockResumeStore)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, mockStore)

		mockJobs.On("GetByID", mock.Anything, int64(5)).Return(job, nil)
		mockStore.On("Store", mock.Anything, "resume.pdf", pdfBytes).Return("abc123.pdf", nil)
		mockApps.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil).Run(func(args mock.Arguments) {
			a := args.Get(1).(*domain.Application)
			assert.Equal(t, int64(3), a.ApplicantID)
			assert.Equal(t, "abc123.pdf", a.ResumeRef)
		})

		app, err := uc.Apply(context.Background(), seeker, 5, "Hi there", upload)
		assert.NoError(t, err)
		assert.NotNil(t, app.CoverLetter)
		assert.Equal(t, "Hi there", *app.CoverLetter)
		mockApps.AssertExpectations(t)
	})

	t.Run("Owner cannot apply to their own job, even as admin", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		mockStore := new(MockResumeStore)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, mockStore)

		mockJobs.On("GetByID", mock.Anything, int64(5)).Return(job, nil)

		ownerAdmin := &domain.User{ID: 7, IsEmployer: true, IsAdmin: true}
		_, err := uc.Apply(context.Background(), ownerAdmin, 5, "", upload)
		assert.Error(t, err)
		assert.Equal(t, apperror.KindAuthorization, kindOf(t, err))
		assert.Equal(t, domain.ReasonOwnJob, reasonOf(t, err))
		mockStore.AssertNotCalled(t, "Store")
		mockApps.AssertNotCalled(t, "Create")
	})

	t.Run("Duplicate application removes the stored resume", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		mockStore := new(MockResumeStore)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, mockStore)

		mockJobs.On("GetByID", mock.Anything, int64(5)).Return(job, nil)
		mockStore.On("Store", mock.Anything, "resume.pdf", pdfBytes).Return("dup.pdf", nil)
		mockApps.On("Create", mock.Anything, mock.Anything).
			Return(apperror.Duplicate("already_applied", "You have already applied to this job"))
		mockStore.On("Remove", mock.Anything, "dup.pdf").Return(nil)

		_, err := uc.Apply(context.Background(), seeker, 5, "", upload)
		assert.Error(t, err)
		assert.Equal(t, apperror.KindDuplicate, kindOf(t, err))
		mockStore.AssertCalled(t, "Remove", mock.Anything, "dup.pdf")
	})

	t.Run("Missing job fails before any storage write", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		mockStore := new(MockResumeStore)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, mockStore)

		mockJobs.On("GetByID", mock.Anything, int64(404)).Return(nil, apperror.NotFound("job", "Job not found"))

		_, err := uc.Apply(context.Background(), seeker, 404, "", upload)
		assert.Error(t, err)
		assert.Equal(t, apperror.KindNotFound, kindOf(t, err))
		mockStore.AssertNotCalled(t, "Store")
	})

	t.Run("Spoofed resume content is rejected", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		mockStore := new(MockResumeStore)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, mockStore)

		bad := domain.ResumeUpload{Filename: "resume.pdf", Data: []byte("MZ\x90\x00 not a pdf")}
		_, err := uc.Apply(context.Background(), seeker, 5, "", bad)
		assert.Error(t, err)
		assert.Equal(t, apperror.KindValidation, kindOf(t, err))
		mockJobs.AssertNotCalled(t, "GetByID")
	})

	t.Run("Empty upload is rejected", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		mockStore := new(MockResumeStore)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, mockStore)

		_, err := uc.Apply(context.Background(), seeker, 5, "", domain.ResumeUpload{})
		assert.Error(t, err)
		assert.Equal(t, apperror.KindValidation, kindOf(t, err))
	})
}

func TestListApplicants(t *testing.T) {
	job := &domain.Job{ID: 5, OwnerID: 7}

	t.Run("Only the owner or an admin may list applicants", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, new(MockResumeStore))

		mockJobs.On("GetByID", mock.Anything, int64(5)).Return(job, nil)

		_, err := uc.ListApplicantsFor(context.Background(), &domain.User{ID: 8, IsEmployer: true}, 5)
		assert.Error(t, err)
		assert.Equal(t, domain.ReasonNotOwner, reasonOf(t, err))
		mockApps.AssertNotCalled(t, "GetByJobID")
	})

	t.Run("Owner sees the applicant list", func(t *testing.T) {
		mockApps := new(MockApplicationRepo)
		mockJobs := new(MockJobRepo)
		uc := usecase.NewApplicationUsecase(mockApps, mockJobs, new(MockResumeStore))

		mockJobs.On("GetByID", mock.Anything, int64(5)).Return(job, nil)
		mockApps.On("GetByJobID", mock.Anything, int64(5)).Return([]domain.Application{{ID: 1, JobID: 5}}, nil)

		apps, err := uc.ListApplicantsFor(context.Background(), &domain.User{ID: 7, IsEmployer: true}, 5)
		assert.NoError(t, err)
		assert.Len(t, apps, 1)
	})
}

func TestAdminDeleteUser(t *testing.T) {
	t.Run("Non-admin is denied", func(t *testing.T) {
		mockUsers := new(MockUserRepo)
		uc := usecase.NewAdminUsecase(new(MockAdminRepo), mockUsers, new(MockJobRepo))

		err := uc.DeleteUser(context.Background(), &domain.User{ID: 1, IsEmployer: true}, 2)
		assert.Error(t, err)
		assert.Equal(t, domain.ReasonAdminRequired, reasonOf(t, err))
		mockUsers.AssertNotCalled(t, "DeleteCascade")
	})

	t.Run("Admin cannot delete their own account", func(t *testing.T) {
		mockUsers := new(MockUserRepo)
		uc := usecase.NewAdminUsecase(new(MockAdminRepo), mockUsers, new(MockJobRepo))

		err := uc.DeleteUser(context.Background(), &domain.User{ID: 1, IsAdmin: true}, 1)
		assert.Error(t, err)
		assert.Equal(t, apperror.KindValidation, kindOf(t, err))
		assert.Equal(t, "user_id:self_delete", reasonOf(t, err))
		mockUsers.AssertNotCalled(t, "DeleteCascade")
	})

	t.Run("Admin cascades another user's records", func(t *testing.T) {
		mockUsers := new(MockUserRepo)
		uc := usecase.NewAdminUsecase(new(MockAdminRepo), mockUsers, new(MockJobRepo))

		mockUsers.On("DeleteCascade", mock.Anything, int64(2)).Return(nil)

		err := uc.DeleteUser(context.Background(), &domain.User{ID: 1, IsAdmin: true}, 2)
		assert.NoError(t, err)
		mockUsers.AssertExpectations(t)
	})
}

func TestAdminStats(t *testing.T) {
	t.Run("Stats gated on admin capability", func(t *testing.T) {
		mockAdmin := new(MockAdminRepo)
		uc := usecase.NewAdminUsecase(mockAdmin, new(MockUserRepo), new(MockJobRepo))

		_, err := uc.GetStats(context.Background(), &domain.User{ID: 1, IsEmployer: true})
		assert.Error(t, err)
		mockAdmin.AssertNotCalled(t, "GetStats")
	})

	t.Run("Admin reads the counters", func(t *testing.T) {
		mockAdmin := new(MockAdminRepo)
		uc := usecase.NewAdminUsecase(mockAdmin, new(MockUserRepo), new(MockJobRepo))

		mockAdmin.On("GetStats", mock.Anything).Return(&domain.AdminStats{TotalUsers: 3, TotalJobs: 2, TotalApplications: 5}, nil)

		stats, err := uc.GetStats(context.Background(), &domain.User{ID: 1, IsAdmin: true})
		assert.NoError(t, err)
		assert.Equal(t, int64(5), stats.TotalApplications)
	})
}

func TestEnsureAdmin(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Minute)
	validate := validator.New()

	t.Run("No-op when credentials are not configured", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens, validate)

		assert.NoError(t, uc.EnsureAdmin(context.Background(), "", ""))
		mockRepo.AssertNotCalled(t, "GetByEmail")
	})

	t.Run("Creates the admin when missing", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens, validate)

		mockRepo.On("GetByEmail", mock.Anything, "admin@example.com").
			Return(nil, apperror.NotFound("user", "User not found"))
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.True(t, u.IsAdmin)
			assert.True(t, u.IsEmployer)
		})

		assert.NoError(t, uc.EnsureAdmin(context.Background(), "Admin@Example.com", "admin-password"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repairs flags on an existing account", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens, validate)

		mockRepo.On("GetByEmail", mock.Anything, "admin@example.com").
			Return(&domain.User{ID: 1, Email: "admin@example.com"}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.True(t, u.IsAdmin)
			assert.True(t, u.IsEmployer)
		})

		assert.NoError(t, uc.EnsureAdmin(context.Background(), "admin@example.com", "admin-password"))
		mockRepo.AssertExpectations(t)
	})
}
