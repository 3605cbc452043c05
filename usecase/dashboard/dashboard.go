package dashboard

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/nutritrack/cli/domain"
	"github.com/nutritrack/cli/repository"
)

const historyLimit = 10

// Snapshot is the dashboard's current data. Either half may be empty when
// its fetch failed; a failed fetch never blocks the other.
type Snapshot struct {
	Entries []domain.FoodLogEntry
	Stats   domain.WeeklyStats
}

type UseCase struct {
	food       repository.FoodAPI
	logger     *zap.Logger
	submitting atomic.Bool
}

func New(food repository.FoodAPI, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		food:   food,
		logger: logger,
	}
}

// Refresh fetches food history and weekly stats concurrently. The two
// requests are independent: a failure on either side is logged and
// swallowed, leaving that half of the snapshot empty.
func (uc *UseCase) Refresh(ctx context.Context) Snapshot {
	var snapshot Snapshot
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		entries, err := uc.food.History(ctx, historyLimit)
		if err != nil {
			uc.logger.Warn("failed to fetch history", zap.Error(err))
			return
		}
		snapshot.Entries = entries
	}()
	go func() {
		defer wg.Done()
		stats, err := uc.food.WeeklyStats(ctx)
		if err != nil {
			uc.logger.Warn("failed to fetch weekly stats", zap.Error(err))
			return
		}
		snapshot.Stats = *stats
	}()
	wg.Wait()

	return snapshot
}

// LogFood submits a free-text meal description and, on success, re-fetches
// both history and stats so the new entry and updated score appear without
// a reload. Empty or whitespace-only text is rejected locally with no
// network call, and only one submission may be in flight at a time.
func (uc *UseCase) LogFood(ctx context.Context, text string) (*domain.FoodLogEntry, Snapshot, error) {
	if strings.TrimSpace(text) == "" {
		return nil, Snapshot{}, domain.ErrEmptyMessage
	}
	if !uc.submitting.CompareAndSwap(false, true) {
		return nil, Snapshot{}, domain.ErrBusy
	}
	defer uc.submitting.Store(false)

	entry, err := uc.food.LogFood(ctx, text)
	if err != nil {
		return nil, Snapshot{}, domain.NewError(domain.ErrCodeServer,
			domain.UserMessage(err, "Failed to log food"))
	}

	return entry, uc.Refresh(ctx), nil
}
