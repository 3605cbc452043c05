package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/nutritrack/cli/domain"
	"github.com/nutritrack/cli/repository"
)

var _ repository.FoodAPI = (*Client)(nil)

func (c *Client) LogFood(ctx context.Context, messageText string) (*domain.FoodLogEntry, error) {
	var out domain.FoodLogEntry
	err := c.do(ctx, http.MethodPost, "/food", logFoodRequest{MessageText: messageText}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) History(ctx context.Context, limit int) ([]domain.FoodLogEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	var out historyResponse
	err := c.do(ctx, http.MethodGet, "/food?limit="+strconv.Itoa(limit), nil, &out)
	if err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) WeeklyStats(ctx context.Context) (*domain.WeeklyStats, error) {
	var out domain.WeeklyStats
	err := c.do(ctx, http.MethodGet, "/food/weekly-stats", nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
