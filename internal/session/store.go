// Package session owns the authentication lifecycle for a running client
// instance: bootstrap from a persisted token, explicit login and logout,
// and read access for every consumer. One Store exists per process and is
// passed by reference to whatever needs it; the persisted token is the
// write side, the in-memory copy a volatile cache of it.
package session

import (
	"context"
	"sync"

	"github.com/eventcal-io/eventcal/internal/api"
	"github.com/eventcal-io/eventcal/internal/log"
	"github.com/eventcal-io/eventcal/internal/storage"
)

// State is the authentication state of the store.
type State int

const (
	// StateInitializing means Bootstrap has not finished yet; consumers
	// must not make authorization decisions while in it.
	StateInitializing State = iota
	// StateAnonymous means no valid session exists.
	StateAnonymous
	// StateAuthenticated means a token and its user profile are loaded.
	StateAuthenticated
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// UserFetcher is the slice of the API client the store depends on.
type UserFetcher interface {
	GetCurrentUser(ctx context.Context, token string) (*api.User, error)
}

// Store holds the current session. Safe for concurrent readers; mutations
// are serialized by its mutex under a single-writer discipline.
type Store struct {
	mu      sync.RWMutex
	fetcher UserFetcher
	storage storage.Store
	logger  *log.Logger

	user  *api.User
	token string
	state State
}

// NewStore creates a Store in the initializing state. Call Bootstrap once
// before reading authentication status.
func NewStore(fetcher UserFetcher, store storage.Store, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Store{
		fetcher: fetcher,
		storage: store,
		logger:  logger,
		state:   StateInitializing,
	}
}

// Bootstrap rehydrates the session from the persisted token. With no stored
// token it settles in the anonymous state without any network call. With a
// stored token it fetches the profile; a token the backend rejects (or any
// fetch failure) is discarded from storage and the store settles anonymous.
// Failures are absorbed and logged, never returned.
func (s *Store) Bootstrap(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.storage.Get(storage.KeyAccessToken)
	if err != nil {
		if err != storage.ErrNotFound {
			s.logger.WithError(err).Warn("session: reading persisted token failed")
		}
		s.clearLocked()
		return
	}

	token := string(raw)
	s.token = token

	user, err := s.fetcher.GetCurrentUser(ctx, token)
	if err != nil {
		s.logger.WithError(err).Warn("session: persisted token rejected, discarding")
		s.discardTokenLocked()
		return
	}

	s.user = user
	s.state = StateAuthenticated
	s.logger.Debug("session: rehydrated", "username", user.Username)
}

// Login installs the supplied token, persists it, and resolves it to a user
// profile. A token that cannot resolve to a profile is not considered
// valid: the store performs the same cleanup as Logout and returns the
// fetch error for display.
func (s *Store) Login(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	if err := s.storage.Set(storage.KeyAccessToken, []byte(token)); err != nil {
		s.logger.WithError(err).Warn("session: persisting token failed")
	}

	user, err := s.fetcher.GetCurrentUser(ctx, token)
	if err != nil {
		s.logger.WithError(err).Warn("session: login token did not resolve to a profile")
		s.discardTokenLocked()
		return err
	}

	s.user = user
	s.state = StateAuthenticated
	s.logger.Debug("session: logged in", "username", user.Username)
	return nil
}

// Logout clears the session and removes the persisted token. It has no
// failure mode; storage errors are logged only.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discardTokenLocked()
}

// User returns the current user profile, or nil when not authenticated.
func (s *Store) User() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Token returns the current bearer token, or the empty string.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// State returns the current authentication state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Loading reports whether the authentication status is not yet known.
func (s *Store) Loading() bool {
	return s.State() == StateInitializing
}

// discardTokenLocked removes the persisted token and clears the in-memory
// session. Callers must hold mu.
func (s *Store) discardTokenLocked() {
	if err := s.storage.Remove(storage.KeyAccessToken); err != nil {
		s.logger.WithError(err).Warn("session: removing persisted token failed")
	}
	s.clearLocked()
}

// clearLocked resets the in-memory session to anonymous. Callers must hold mu.
func (s *Store) clearLocked() {
	s.user = nil
	s.token = ""
	s.state = StateAnonymous
}
