// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

// Package session holds the login session and its local persistence.
//
// The session is the console's only cross-view shared mutable state. A
// single writer owns it: the login flow establishes it, logout clears it,
// and every other component reads through the Manager. The store is the
// analogue of browser-local storage, so no expiry is enforced here; a
// stale token is discovered when a request comes back 401.
package session

import (
	"errors"
	"time"

	"github.com/vibedeck/vibedeck/internal/models"
)

// Login types recorded alongside the token, telling the rest of the
// console which endpoint family authenticated the operator.
const (
	LoginTypeAdmin = "admin"
	LoginTypeUser  = "user"
)

// RedirectDelay is how long the success notification stays on screen
// before the post-login navigation happens.
const RedirectDelay = 2 * time.Second

// ErrNoSession is returned when no session is persisted.
var ErrNoSession = errors.New("no session stored")

// Session is the persisted login state.
type Session struct {
	// ID is a local record id assigned on first save.
	ID string `json:"id"`

	// Token is the opaque bearer credential from the backend.
	Token string `json:"token"`

	// Identity is the logged-in account, with IsAdmin stamped from the
	// endpoint that accepted the credentials.
	Identity models.Identity `json:"identity"`

	// LoginType is "admin" or "user".
	LoginType string `json:"loginType"`

	// CreatedAt records when the session was established.
	CreatedAt time.Time `json:"createdAt"`
}

// Store persists at most one session. Save overwrites, Load returns
// ErrNoSession when empty, Clear removes everything the store holds.
type Store interface {
	Save(session *Session) error
	Load() (*Session, error)
	Clear() error
	Close() error
}
