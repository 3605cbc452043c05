package repository

import (
	"context"

	"github.com/nutritrack/cli/domain"
)

type AdminAPI interface {
	ListUsers(ctx context.Context, limit int) ([]domain.UserProfile, error)
	UpdateStatus(ctx context.Context, userID string, status domain.Status) (*domain.UserProfile, error)
	ChangeRole(ctx context.Context, userID string, role domain.Role) (*domain.UserProfile, error)
}
