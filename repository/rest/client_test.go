package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutritrack/cli/domain"
	"github.com/nutritrack/cli/repository/memstore"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, session *domain.Session) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := memstore.New()
	if session != nil {
		require.NoError(t, store.Save(session.Credential, session.Profile))
	}
	return NewClient(Config{BaseURL: server.URL}, store, nil)
}

func authedSession() *domain.Session {
	return &domain.Session{
		Credential: "token-123",
		Profile:    &domain.UserProfile{ID: "u1", Role: domain.RoleUser},
	}
}

func TestBearerHeaderFromStore(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(historyResponse{})
	}, authedSession())

	_, err := client.History(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-123", gotAuth)
}

func TestAnonymousRequestHasNoBearer(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(historyResponse{})
	}, nil)

	_, err := client.History(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestHistory_DecodesEnvelopeAndLimit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/food", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		_ = json.NewEncoder(w).Encode(historyResponse{Data: []domain.FoodLogEntry{
			{ID: "f1", MessageText: "dosa", Calories: 300, Rating: 7},
		}})
	}, authedSession())

	entries, err := client.History(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "dosa", entries[0].MessageText)
}

func TestWeeklyStats_Decodes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/food/weekly-stats", r.URL.Path)
		_ = json.NewEncoder(w).Encode(domain.WeeklyStats{
			WeeklyScorePercentage: 72,
			GraphData:             []domain.DailySample{{Day: "Mon", Calories: 1800, AverageRating: 6}},
		})
	}, authedSession())

	stats, err := client.WeeklyStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 72.0, stats.WeeklyScorePercentage)
	require.Len(t, stats.GraphData, 1)
	assert.Equal(t, "Mon", stats.GraphData[0].Day)
}

func TestLogFood_SendsMessageText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var req logFoodRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2 idlis with sambar", req.MessageText)
		_ = json.NewEncoder(w).Encode(domain.FoodLogEntry{ID: "f1", Calories: 350})
	}, authedSession())

	entry, err := client.LogFood(context.Background(), "2 idlis with sambar")
	require.NoError(t, err)
	assert.Equal(t, "f1", entry.ID)
}

func TestServerErrorMessageSurfaced(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{Message: "Could not analyze that meal"})
	}, authedSession())

	_, err := client.LogFood(context.Background(), "mystery stew")
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeValidation))
	assert.Equal(t, "Could not analyze that meal", domain.UserMessage(err, "Failed to log food"))
}

func TestUnauthorizedMapsToDomainCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, nil)

	_, err := client.History(context.Background(), 10)
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
	// no server message, so callers fall back
	assert.Equal(t, "Failed to fetch history", domain.UserMessage(err, "Failed to fetch history"))
}

func TestLogin_ReturnsPair(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "asha@example.com", req.Email)
		_ = json.NewEncoder(w).Encode(authResponse{
			Token: "token-123",
			User:  &domain.UserProfile{ID: "u1", Name: "Asha", Role: domain.RoleAdmin},
		})
	}, nil)

	credential, profile, err := client.Login(context.Background(), "asha@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, domain.Credential("token-123"), credential)
	assert.Equal(t, domain.RoleAdmin, profile.Role)
}

func TestChangeRole_PathAndBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/admin/users/u2/role", r.URL.Path)
		var req changeRoleRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, domain.RoleAdmin, req.Role)
		_ = json.NewEncoder(w).Encode(domain.UserProfile{ID: "u2", Role: domain.RoleAdmin})
	}, authedSession())

	row, err := client.ChangeRole(context.Background(), "u2", domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, row.Role)
}
