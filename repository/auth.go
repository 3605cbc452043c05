package repository

import (
	"context"

	"github.com/nutritrack/cli/domain"
)

// SignupInput carries the profile fields collected at registration.
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (domain.Credential, *domain.UserProfile, error)
	Signup(ctx context.Context, input SignupInput) (domain.Credential, *domain.UserProfile, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, password string) (string, error)
}
