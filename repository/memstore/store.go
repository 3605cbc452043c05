package memstore

import (
	"sync"

	"github.com/nutritrack/cli/domain"
	"github.com/nutritrack/cli/repository"
)

// Store is an in-memory CredentialStore. It backs tests and the
// --no-persist mode, where the session should not outlive the process.
type Store struct {
	mu      sync.RWMutex
	session domain.Session
}

func New() *Store {
	return &Store{}
}

var _ repository.CredentialStore = (*Store)(nil)

func (s *Store) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.session.IsAuthenticated() {
		return domain.Anonymous
	}
	return s.session
}

func (s *Store) Save(credential domain.Credential, profile *domain.UserProfile) error {
	if credential == "" || profile == nil {
		return domain.NewError(domain.ErrCodeValidation, "credential and profile must both be present")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *profile
	s.session = domain.Session{Credential: credential, Profile: &copied}
	return nil
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = domain.Anonymous
	return nil
}
