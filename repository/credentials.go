package repository

import "github.com/nutritrack/cli/domain"

// CredentialStore owns the persisted credential/profile pair. Current must
// return domain.Anonymous whenever either half is missing or unreadable;
// malformed persisted state is never an error. All operations are
// synchronous from the caller's perspective.
type CredentialStore interface {
	Current() domain.Session
	Save(credential domain.Credential, profile *domain.UserProfile) error
	Clear() error
}
