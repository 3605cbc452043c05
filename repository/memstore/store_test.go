package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutritrack/cli/domain"
)

func TestRoundTrip(t *testing.T) {
	store := New()
	assert.Equal(t, domain.Anonymous, store.Current())

	profile := &domain.UserProfile{ID: "u1", Name: "Asha", Role: domain.RoleAdmin}
	require.NoError(t, store.Save("token-123", profile))

	session := store.Current()
	require.True(t, session.IsAuthenticated())
	assert.Equal(t, domain.Credential("token-123"), session.Credential)
	assert.Equal(t, "Asha", session.Profile.Name)

	require.NoError(t, store.Clear())
	assert.Equal(t, domain.Anonymous, store.Current())

	// clearing again is a no-op
	require.NoError(t, store.Clear())
}

func TestSave_RejectsHalfPairs(t *testing.T) {
	store := New()

	assert.Error(t, store.Save("", &domain.UserProfile{ID: "u1"}))
	assert.Error(t, store.Save("token-123", nil))
	assert.Equal(t, domain.Anonymous, store.Current())
}

func TestSave_CopiesProfile(t *testing.T) {
	store := New()
	profile := &domain.UserProfile{ID: "u1", Role: domain.RoleUser}
	require.NoError(t, store.Save("token-123", profile))

	profile.Role = domain.RoleAdmin
	assert.Equal(t, domain.RoleUser, store.Current().Profile.Role)
}
