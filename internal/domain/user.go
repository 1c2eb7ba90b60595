package domain

import (
	"context"
	"time"
)

// User is an actor identity. Capabilities are independent flags, not a role
// enum: a single user may be both employer and admin. Everyone is implicitly
// a seeker.
type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"fullname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsEmployer   bool      `json:"is_employer"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// SignupInput is the validated signup payload. Email uniqueness is enforced
// case-insensitively at creation.
type SignupInput struct {
	FullName   string `json:"fullname" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email,max=100"`
	Password   string `json:"password" validate:"required,min=8,max=72"`
	IsEmployer bool   `json:"is_employer"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	// DeleteCascade removes the user together with all jobs they own and all
	// applications they submitted, as one transaction.
	DeleteCascade(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]User, int64, error)
}

type AuthUsecase interface {
	Signup(ctx context.Context, input SignupInput) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
	// EnsureAdmin creates the seeded admin account, or repairs its capability
	// flags if it already exists.
	EnsureAdmin(ctx context.Context, email, password string) error
}
