package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutritrack/cli/domain"
)

type fakeFoodAPI struct {
	logCalls     int
	historyCalls int
	statsCalls   int

	logErr     error
	historyErr error
	statsErr   error

	entry   domain.FoodLogEntry
	history []domain.FoodLogEntry
	stats   domain.WeeklyStats
}

func (f *fakeFoodAPI) LogFood(ctx context.Context, text string) (*domain.FoodLogEntry, error) {
	f.logCalls++
	if f.logErr != nil {
		return nil, f.logErr
	}
	entry := f.entry
	return &entry, nil
}

func (f *fakeFoodAPI) History(ctx context.Context, limit int) ([]domain.FoodLogEntry, error) {
	f.historyCalls++
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	return f.history, nil
}

func (f *fakeFoodAPI) WeeklyStats(ctx context.Context) (*domain.WeeklyStats, error) {
	f.statsCalls++
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	stats := f.stats
	return &stats, nil
}

func TestLogFood_RejectsEmptyMessageWithoutNetwork(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		api := &fakeFoodAPI{}
		uc := New(api, nil)

		_, _, err := uc.LogFood(context.Background(), text)

		require.ErrorIs(t, err, domain.ErrEmptyMessage, "text %q", text)
		assert.Zero(t, api.logCalls)
		assert.Zero(t, api.historyCalls)
		assert.Zero(t, api.statsCalls)
	}
}

func TestLogFood_SuccessRefreshesBoth(t *testing.T) {
	api := &fakeFoodAPI{
		entry:   domain.FoodLogEntry{ID: "f1", Calories: 350, Rating: 8},
		history: []domain.FoodLogEntry{{ID: "f1"}},
		stats:   domain.WeeklyStats{WeeklyScorePercentage: 72},
	}
	uc := New(api, nil)

	entry, snapshot, err := uc.LogFood(context.Background(), "2 idlis with sambar")

	require.NoError(t, err)
	assert.Equal(t, "f1", entry.ID)
	assert.Equal(t, 1, api.logCalls)
	assert.Equal(t, 1, api.historyCalls)
	assert.Equal(t, 1, api.statsCalls)
	assert.Len(t, snapshot.Entries, 1)
	assert.Equal(t, 72.0, snapshot.Stats.WeeklyScorePercentage)
}

func TestLogFood_ServerMessageSurfaced(t *testing.T) {
	api := &fakeFoodAPI{logErr: domain.NewError(domain.ErrCodeValidation, "Could not analyze that meal")}
	uc := New(api, nil)

	_, _, err := uc.LogFood(context.Background(), "mystery stew")

	require.Error(t, err)
	assert.Equal(t, "Could not analyze that meal", domain.UserMessage(err, "Failed to log food"))
	assert.Zero(t, api.historyCalls, "no refresh after a failed submission")
}

func TestLogFood_FallbackMessage(t *testing.T) {
	api := &fakeFoodAPI{logErr: domain.WrapError(domain.ErrCodeTransport, "", context.DeadlineExceeded)}
	uc := New(api, nil)

	_, _, err := uc.LogFood(context.Background(), "toast")

	require.Error(t, err)
	assert.Equal(t, "Failed to log food", domain.UserMessage(err, "unused"))
}

func TestRefresh_PartialFailureKeepsOtherHalf(t *testing.T) {
	api := &fakeFoodAPI{
		historyErr: domain.WrapError(domain.ErrCodeTransport, "", context.DeadlineExceeded),
		stats: domain.WeeklyStats{
			WeeklyScorePercentage: 64,
			GraphData:             []domain.DailySample{{Day: "Mon", Calories: 1800}},
		},
	}
	uc := New(api, nil)

	snapshot := uc.Refresh(context.Background())

	assert.Empty(t, snapshot.Entries)
	assert.Equal(t, 64.0, snapshot.Stats.WeeklyScorePercentage)
	assert.Len(t, snapshot.Stats.GraphData, 1)
}

func TestRefresh_BothFail(t *testing.T) {
	api := &fakeFoodAPI{
		historyErr: domain.WrapError(domain.ErrCodeTransport, "", context.DeadlineExceeded),
		statsErr:   domain.WrapError(domain.ErrCodeTransport, "", context.DeadlineExceeded),
	}
	uc := New(api, nil)

	snapshot := uc.Refresh(context.Background())

	assert.Empty(t, snapshot.Entries)
	assert.Zero(t, snapshot.Stats.WeeklyScorePercentage)
}
