package repository

import (
	"context"

	"github.com/nutritrack/cli/domain"
)

type FoodAPI interface {
	LogFood(ctx context.Context, messageText string) (*domain.FoodLogEntry, error)
	History(ctx context.Context, limit int) ([]domain.FoodLogEntry, error)
	WeeklyStats(ctx context.Context) (*domain.WeeklyStats, error)
}
