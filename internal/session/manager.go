// Package session tracks the currently authenticated identity. The
// session record travels as a signed token replicated across two storage
// tiers: a durable backend that survives restarts and an ephemeral one
// scoped to the process, read through in that order.
package session

import (
	"context"
	"time"

	"github.com/anonsen/anonsen/internal/logging"
	"github.com/anonsen/anonsen/internal/models"
	"github.com/anonsen/anonsen/internal/storage"
	"github.com/anonsen/anonsen/internal/timex"
)

// Manager owns the session record. At most one session exists; setting a
// new one overwrites the previous record in both tiers.
type Manager struct {
	durable   storage.Backend
	ephemeral storage.Backend
	secret    []byte
	ttl       time.Duration
	clock     timex.Clock
	log       logging.Logger
}

func NewManager(durable, ephemeral storage.Backend, secret []byte, ttl time.Duration, clock timex.Clock, log logging.Logger) *Manager {
	return &Manager{
		durable:   durable,
		ephemeral: ephemeral,
		secret:    secret,
		ttl:       ttl,
		clock:     clock,
		log:       log.With("component", "session"),
	}
}

// SetSession starts a session for user, overwriting any existing one.
// Non-remember-me sessions expire after the configured TTL. The record is
// written to both tiers independently; a failed write to either tier is
// logged and does not block the other or surface to the caller.
func (m *Manager) SetSession(ctx context.Context, user *models.User, rememberMe bool) {
	token, err := m.signSession(user, rememberMe)
	if err != nil {
		m.log.Error(ctx, "failed to create session token", "error", err)
		return
	}

	if err := m.durable.Set(ctx, storage.SessionKey, []byte(token)); err != nil {
		m.log.Warn(ctx, "failed to write session to durable storage", "error", err)
	}
	if err := m.ephemeral.Set(ctx, storage.SessionKey, []byte(token)); err != nil {
		m.log.Warn(ctx, "failed to write session to ephemeral storage", "error", err)
	}
}

// GetSession returns the current session, or nil when there is none.
// The durable tier is consulted first, then the ephemeral one. A record
// that is expired, unverifiable, or unreadable counts as no session and
// is cleared from both tiers.
func (m *Manager) GetSession(ctx context.Context) *models.Session {
	token := m.readToken(ctx)
	if token == nil {
		return nil
	}

	s, err := m.parseSession(string(token))
	if err != nil {
		m.log.Warn(ctx, "discarding unusable session", "error", err)
		m.ClearSession(ctx)
		return nil
	}
	return s
}

func (m *Manager) readToken(ctx context.Context) []byte {
	token, err := m.durable.Get(ctx, storage.SessionKey)
	if err != nil {
		m.log.Warn(ctx, "failed to read session from durable storage", "error", err)
	}
	if token != nil {
		return token
	}

	token, err = m.ephemeral.Get(ctx, storage.SessionKey)
	if err != nil {
		m.log.Warn(ctx, "failed to read session from ephemeral storage", "error", err)
	}
	return token
}

// ClearSession removes the session record from both tiers. Safe to call
// when no session exists.
func (m *Manager) ClearSession(ctx context.Context) {
	if err := m.durable.Delete(ctx, storage.SessionKey); err != nil {
		m.log.Warn(ctx, "failed to clear session from durable storage", "error", err)
	}
	if err := m.ephemeral.Delete(ctx, storage.SessionKey); err != nil {
		m.log.Warn(ctx, "failed to clear session from ephemeral storage", "error", err)
	}
}

// IsLoggedIn reports whether a live session exists.
func (m *Manager) IsLoggedIn(ctx context.Context) bool {
	s := m.GetSession(ctx)
	return s != nil && s.IsLoggedIn
}
