package ports

import (
	"context"

	"github.com/mahenderbytebot-oss/carwash-omni-ui/internal/core/domain"
)

// SessionStore is the single source of truth for "who is logged in". It is
// constructor-injected everywhere (gateway, guard, handlers) so behaviour can
// be substituted in tests instead of patching a package-level global.
type SessionStore interface {
	// Login records a verified identity. Credential checking has already
	// happened server-side; this only mutates state and clears any prior error.
	Login(user domain.User, token string)
	// Logout clears user, token, authenticated flag and error. Idempotent.
	Logout()
	SetLoading(loading bool)
	SetError(msg string)
	ClearError()
	// Snapshot returns a copy of the current session state.
	Snapshot() domain.Session
	// Token returns the current bearer token, or "" when logged out.
	Token() string
}

// SessionSlot is the durable key-value slot the session persists into. Exactly
// one slot exists, keyed by domain.StorageName.
type SessionSlot interface {
	// Load returns the persisted session, or (nil, nil) when none exists.
	Load(ctx context.Context) (*domain.PersistedSession, error)
	Save(ctx context.Context, s domain.PersistedSession) error
	Clear(ctx context.Context) error
}
