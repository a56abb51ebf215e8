// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package session

import (
	"errors"
	"time"

	"github.com/vibedeck/vibedeck/internal/logging"
	"github.com/vibedeck/vibedeck/internal/models"
)

// Manager is the single writer for session state. The login flow calls
// Establish, logout calls Clear; every other component only reads.
type Manager struct {
	store   Store
	current *Session
}

// NewManager wraps a store and loads any persisted session into memory.
func NewManager(store Store) (*Manager, error) {
	m := &Manager{store: store}
	session, err := store.Load()
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return m, nil
		}
		return nil, err
	}
	m.current = session
	logging.Debug().
		Str("login_type", session.LoginType).
		Str("email", session.Identity.Email).
		Msg("restored persisted session")
	return m, nil
}

// Establish persists a fresh session after a successful login.
func (m *Manager) Establish(token string, identity models.Identity, loginType string) (*Session, error) {
	session := &Session{
		Token:     token,
		Identity:  identity,
		LoginType: loginType,
		CreatedAt: time.Now().UTC(),
	}
	if err := m.store.Save(session); err != nil {
		return nil, err
	}
	m.current = session
	return session, nil
}

// Clear wipes the persisted session wholesale.
func (m *Manager) Clear() error {
	if err := m.store.Clear(); err != nil {
		return err
	}
	m.current = nil
	return nil
}

// Current returns the active session, or false when logged out.
func (m *Manager) Current() (*Session, bool) {
	if m.current == nil {
		return nil, false
	}
	return m.current, true
}

// Token returns the bearer token, empty when logged out. Expiry is never
// checked here; a stale token simply fails server-side.
func (m *Manager) Token() string {
	if m.current == nil {
		return ""
	}
	return m.current.Token
}

// IsAdmin reports whether the active session came through the admin
// login endpoint.
func (m *Manager) IsAdmin() bool {
	return m.current != nil && m.current.Identity.IsAdmin
}
