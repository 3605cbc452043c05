package admin

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/nutritrack/cli/domain"
	"github.com/nutritrack/cli/repository"
)

const userListLimit = 50

type UseCase struct {
	api      repository.AdminAPI
	logger   *zap.Logger
	mutating atomic.Bool
}

func New(api repository.AdminAPI, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		api:    api,
		logger: logger,
	}
}

// ListUsers fetches the managed user rows.
func (uc *UseCase) ListUsers(ctx context.Context) ([]domain.UserProfile, error) {
	rows, err := uc.api.ListUsers(ctx, userListLimit)
	if err != nil {
		return nil, domain.NewError(domain.ErrCodeServer,
			domain.UserMessage(err, "Failed to fetch users"))
	}
	return rows, nil
}

// ToggleStatus flips the target's account status, then re-fetches the full
// list rather than mutating locally, so cascading server-side effects are
// always reflected.
func (uc *UseCase) ToggleStatus(ctx context.Context, target domain.UserProfile) ([]domain.UserProfile, error) {
	if !uc.mutating.CompareAndSwap(false, true) {
		return nil, domain.ErrBusy
	}
	defer uc.mutating.Store(false)

	next := target.Status.Toggled()
	if _, err := uc.api.UpdateStatus(ctx, target.ID, next); err != nil {
		return nil, domain.NewError(domain.ErrCodeServer,
			domain.UserMessage(err, "Failed to update status"))
	}
	uc.logger.Info("status updated",
		zap.String("user_id", target.ID),
		zap.String("status", string(next)))
	return uc.ListUsers(ctx)
}

// ToggleRole flips the target's role. An admin demoting themself is
// refused before any request is issued, so they cannot lock themselves out
// of the panel they are using. Demoting other admins proceeds
// unconditionally.
func (uc *UseCase) ToggleRole(ctx context.Context, actorID string, target domain.UserProfile) ([]domain.UserProfile, error) {
	next := target.Role.Toggled()
	if target.ID == actorID && next == domain.RoleUser {
		return nil, domain.ErrSelfDemotion
	}

	if !uc.mutating.CompareAndSwap(false, true) {
		return nil, domain.ErrBusy
	}
	defer uc.mutating.Store(false)

	if _, err := uc.api.ChangeRole(ctx, target.ID, next); err != nil {
		return nil, domain.NewError(domain.ErrCodeServer,
			domain.UserMessage(err, "Failed to update role"))
	}
	uc.logger.Info("role updated",
		zap.String("user_id", target.ID),
		zap.String("role", string(next)))
	return uc.ListUsers(ctx)
}
