package ports

import (
	"context"

	"github.com/castingdesk/casting-api/internal/core/domain"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	AccountType     string
	Newsletter      bool
}

// AuthResult pairs a signed session token with the authenticated user.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService drives the account lifecycle: registration, email verification
// via one-time codes, password and Google login, and password reset.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	VerifyOTP(ctx context.Context, userID, code string) (*AuthResult, error)
	ResendOTP(ctx context.Context, email string) error
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GoogleLogin(ctx context.Context, assertion string) (*AuthResult, error)
	ResetPassword(ctx context.Context, email, password, confirmPassword string) error
	SendPasswordResetLink(ctx context.Context, email string) error
}
