// Package session implements the client-side session store: the single source
// of truth for "who is logged in", persisted across restarts through a durable
// key-value slot.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/ports"
)

const persistTimeout = 3 * time.Second

// Store holds the active session. All mutations go through the defined
// setters; reads take a snapshot copy so callers never share mutable state.
//
// Exactly one session is active at a time. User, Token and IsAuthenticated
// persist to the slot on Login/Logout; the transient flags do not.
type Store struct {
	mu    sync.RWMutex
	state domain.Session
	slot  ports.SessionSlot
	log   zerolog.Logger
}

// NewStore builds a Store hydrated from the slot. A missing or unreadable
// slot yields the logged-out default; a corrupt slot is not fatal, only
// logged, because the worst outcome is that the user logs in again.
func NewStore(ctx context.Context, slot ports.SessionSlot, log zerolog.Logger) *Store {
	s := &Store{slot: slot, log: log}

	persisted, err := slot.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("session slot unreadable, starting logged out")
		return s
	}
	if persisted != nil && persisted.IsAuthenticated && persisted.User != nil {
		s.state = domain.Session{
			User:            persisted.User,
			Token:           persisted.Token,
			IsAuthenticated: true,
		}
		log.Info().Str("user_id", persisted.User.ID).Str("role", string(persisted.User.Role)).Msg("session restored")
	}
	return s
}

// Login records a verified identity and clears any prior error. Credential
// verification has already happened server-side.
func (s *Store) Login(user domain.User, token string) {
	s.mu.Lock()
	u := user
	s.state.User = &u
	s.state.Token = token
	s.state.IsAuthenticated = true
	s.state.Error = nil
	s.mu.Unlock()

	s.persist()
}

// Logout clears user, token, authenticated flag and error. Idempotent: safe
// to call when already logged out.
func (s *Store) Logout() {
	s.mu.Lock()
	s.state.User = nil
	s.state.Token = ""
	s.state.IsAuthenticated = false
	s.state.Error = nil
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.slot.Clear(ctx); err != nil {
		s.log.Error().Err(err).Msg("failed to clear session slot")
	}
}

// SetLoading flips the transient loading flag. No side effects.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = loading
}

// SetError records a transient UI error message.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = &msg
}

// ClearError removes any transient error.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = nil
}

// Snapshot returns a copy of the current session state.
func (s *Store) Snapshot() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.state
	if s.state.User != nil {
		u := *s.state.User
		snap.User = &u
	}
	if s.state.Error != nil {
		e := *s.state.Error
		snap.Error = &e
	}
	return snap
}

// Token returns the current bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

func (s *Store) persist() {
	s.mu.RLock()
	p := domain.PersistedSession{
		User:            s.state.User,
		Token:           s.state.Token,
		IsAuthenticated: s.state.IsAuthenticated,
	}
	s.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.slot.Save(ctx, p); err != nil {
		s.log.Error().Err(err).Msg("failed to persist session")
	}
}
