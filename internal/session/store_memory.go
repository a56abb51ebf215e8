// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package session

import (
	"sync"

	"github.com/google/uuid"
)

// MemoryStore holds the session in memory only. Used in tests and when
// persistence across runs is not wanted.
type MemoryStore struct {
	mu      sync.RWMutex
	session *Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save overwrites the held session.
func (s *MemoryStore) Save(session *Session) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	copied := *session
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &copied
	return nil
}

// Load returns the held session, or ErrNoSession.
func (s *MemoryStore) Load() (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil, ErrNoSession
	}
	copied := *s.session
	return &copied, nil
}

// Clear drops the held session.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close() error {
	return nil
}
