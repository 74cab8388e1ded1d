// Package gocachestore implements session storage on top of
// patrickmn/go-cache. Entries expire after the configured session
// lifetime; the cache's janitor performs the expiration sweep.
package gocachestore

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/storefrontkit/storefront-auth/sessions"
)

type Store struct {
	cache *gocache.Cache
}

var _ sessions.Repo = (*Store)(nil)

// New creates a session store whose entries live for sessionTTL. The
// TTL covers the session record itself, not the access token: a session
// stays retrievable after its token expires so a refresh can still be
// attempted.
func New(sessionTTL, cleanupInterval time.Duration) *Store {
	return &Store{cache: gocache.New(sessionTTL, cleanupInterval)}
}

func (s *Store) Upsert(session *sessions.Session) error {
	if session == nil || session.ID == "" {
		return errors.New("[Store.Upsert] session ID is required")
	}

	// Store a copy to avoid external modifications
	stored := *session
	s.cache.SetDefault(session.ID, &stored)
	return nil
}

func (s *Store) Get(sessionID string) (*sessions.Session, error) {
	if sessionID == "" {
		return nil, errors.New("[Store.Get] session ID is required")
	}

	value, ok := s.cache.Get(sessionID)
	if !ok {
		return nil, sessions.ErrSessionNotFound
	}

	stored := value.(*sessions.Session)
	session := *stored
	return &session, nil
}

func (s *Store) Delete(sessionID string) error {
	s.cache.Delete(sessionID)
	return nil
}
