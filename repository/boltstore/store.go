package boltstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/nutritrack/cli/domain"
	"github.com/nutritrack/cli/repository"
)

var (
	keyCredential = []byte("credential")
	keyProfile    = []byte("profile")
)

// Store persists the credential/profile pair in a local BoltDB file so the
// session survives process restarts until explicitly cleared.
type Store struct {
	db     *bolt.DB
	bucket []byte
}

// Open initializes the BoltDB file and ensures the session bucket exists.
func Open(path string, bucket string) (*Store, error) {
	if bucket == "" {
		bucket = "session"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:     db,
		bucket: []byte(bucket),
	}, nil
}

var _ repository.CredentialStore = (*Store)(nil)

// Current returns the persisted session, or domain.Anonymous when either
// half is missing or the stored profile cannot be decoded.
func (s *Store) Current() domain.Session {
	if s == nil || s.db == nil {
		return domain.Anonymous
	}

	var session domain.Session
	_ = s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return nil
		}
		cred := b.Get(keyCredential)
		raw := b.Get(keyProfile)
		if len(cred) == 0 || len(raw) == 0 {
			return nil
		}
		var profile domain.UserProfile
		if err := json.Unmarshal(raw, &profile); err != nil {
			// treated as no session, not a fatal error
			return nil
		}
		session = domain.Session{
			Credential: domain.Credential(cred),
			Profile:    &profile,
		}
		return nil
	})
	return session
}

// Save persists both halves in a single transaction.
func (s *Store) Save(credential domain.Credential, profile *domain.UserProfile) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	if credential == "" || profile == nil {
		return domain.NewError(domain.ErrCodeValidation, "credential and profile must both be present")
	}

	payload, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if err := b.Put(keyCredential, []byte(credential)); err != nil {
			return err
		}
		return b.Put(keyProfile, payload)
	})
}

// Clear removes both halves. Clearing an empty store is a no-op.
func (s *Store) Clear() error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if err := b.Delete(keyCredential); err != nil {
			return err
		}
		return b.Delete(keyProfile)
	})
}

// Close closes the Bolt database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
