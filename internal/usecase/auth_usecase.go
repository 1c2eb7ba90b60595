package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/hash"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
	validate *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		validate: validate,
	}
}

// Signup creates a user and logs them in. Email uniqueness is enforced by the
// store's constraint; a second signup with the same email (any case) fails
// with DuplicateError("email_taken").
func (u *authUsecase) Signup(ctx context.Context, input domain.SignupInput) (*domain.User, string, error) {
	if err := validation.Struct(u.validate, input); err != nil {
		return nil, "", err
	}

	credential, err := hash.Password(input.Password)
	if err != nil {
		return nil, "", apperror.Storage(err)
	}

	user := &domain.User{
		FullName:     strings.TrimSpace(input.FullName),
		Email:        normalizeEmail(input.Email),
		PasswordHash: credential,
		IsEmployer:   input.IsEmployer,
		CreatedAt:    time.Now(),
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.Mint(user.ID, user.Email)
	if err != nil {
		return nil, "", apperror.Storage(err)
	}
	return user, token, nil
}

// Login verifies the presented secret against the stored credential. Unknown
// email and wrong password are indistinguishable to the caller.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := u.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Kind == apperror.KindNotFound {
			return nil, "", apperror.Authentication("invalid_credentials", "Invalid email or password")
		}
		return nil, "", err
	}

	if !hash.Verify(user.PasswordHash, password) {
		return nil, "", apperror.Authentication("invalid_credentials", "Invalid email or password")
	}

	token, err := u.tokens.Mint(user.ID, user.Email)
	if err != nil {
		return nil, "", apperror.Storage(err)
	}
	return user, token, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// EnsureAdmin seeds the admin account at startup, or repairs its capability
// flags if the row already exists.
func (u *authUsecase) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	existing, err := u.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err == nil {
		if existing.IsAdmin && existing.IsEmployer {
			return nil
		}
		existing.IsAdmin = true
		existing.IsEmployer = true
		return u.userRepo.Update(ctx, existing)
	}

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Kind != apperror.KindNotFound {
		return err
	}

	credential, err := hash.Password(password)
	if err != nil {
		return apperror.Storage(err)
	}

	admin := &domain.User{
		FullName:     "Site Admin",
		Email:        normalizeEmail(email),
		PasswordHash: credential,
		IsEmployer:   true,
		IsAdmin:      true,
		CreatedAt:    time.Now(),
	}
	if err := u.userRepo.Create(ctx, admin); err != nil {
		return err
	}
	logger.Log.Info("Seeded admin account", "email", admin.Email)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
