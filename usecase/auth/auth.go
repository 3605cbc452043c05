package auth

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/nutritrack/cli/domain"
	"github.com/nutritrack/cli/repository"
)

const minPasswordLength = 6

type UseCase struct {
	api    repository.AuthAPI
	creds  repository.CredentialStore
	logger *zap.Logger
}

func New(api repository.AuthAPI, creds repository.CredentialStore, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		api:    api,
		creds:  creds,
		logger: logger,
	}
}

// Login authenticates against the backend and persists the returned pair
// so it survives restarts.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*domain.UserProfile, error) {
	credential, profile, err := uc.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := uc.creds.Save(credential, profile); err != nil {
		return nil, err
	}
	uc.logger.Info("logged in", zap.String("user_id", profile.ID), zap.String("role", string(profile.Role)))
	return profile, nil
}

// Signup registers a new account; on success the session is persisted the
// same way a login would be.
func (uc *UseCase) Signup(ctx context.Context, input repository.SignupInput) (*domain.UserProfile, error) {
	if len(input.Password) < minPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}
	credential, profile, err := uc.api.Signup(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := uc.creds.Save(credential, profile); err != nil {
		return nil, err
	}
	uc.logger.Info("signed up", zap.String("user_id", profile.ID))
	return profile, nil
}

// Logout clears the persisted session. Local only; it has no failure mode
// visible to the caller.
func (uc *UseCase) Logout() {
	if err := uc.creds.Clear(); err != nil {
		uc.logger.Warn("failed to clear persisted session", zap.Error(err))
	}
}

// ForgotPassword requests a reset link for the given email and returns the
// confirmation message to display.
func (uc *UseCase) ForgotPassword(ctx context.Context, email string) (string, error) {
	message, err := uc.api.ForgotPassword(ctx, email)
	if err != nil {
		return "", domain.NewError(domain.ErrCodeServer,
			domain.UserMessage(err, "An error occurred. Please try again."))
	}
	if message == "" {
		message = "Password reset link has been sent to your email. Please check your inbox."
	}
	return message, nil
}

// ResetPassword validates the pair locally before issuing the request; a
// mismatch or short password never reaches the network.
func (uc *UseCase) ResetPassword(ctx context.Context, token, password, confirm string) (string, error) {
	if password != confirm {
		return "", domain.ErrPasswordMismatch
	}
	if len(password) < minPasswordLength {
		return "", domain.ErrPasswordTooShort
	}
	if strings.TrimSpace(token) == "" {
		return "", domain.NewError(domain.ErrCodeValidation, "reset token must not be empty")
	}
	message, err := uc.api.ResetPassword(ctx, token, password)
	if err != nil {
		return "", domain.NewError(domain.ErrCodeServer,
			domain.UserMessage(err, "An error occurred. Please try again."))
	}
	return message, nil
}
