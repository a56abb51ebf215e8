// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package views

import (
	"context"
	"errors"

	"github.com/vibedeck/vibedeck/internal/api"
	"github.com/vibedeck/vibedeck/internal/logging"
	"github.com/vibedeck/vibedeck/internal/models"
	"github.com/vibedeck/vibedeck/internal/session"
)

// ErrNotLoggedIn is returned by views that need an active session.
var ErrNotLoggedIn = errors.New("views: not logged in")

// AccountView shows the signed-in account. Token claims are decoded
// without verification purely for display; expiry is shown, never
// enforced.
type AccountView struct {
	auth     api.AuthAPI
	sessions *session.Manager
	notify   Notifier

	Account *models.User
	Claims  *session.TokenClaims
	Loading bool
}

// NewAccountView wires the account screen.
func NewAccountView(auth api.AuthAPI, sessions *session.Manager, notify Notifier) *AccountView {
	return &AccountView{auth: auth, sessions: sessions, notify: notify}
}

// Load fetches the stored account record and decodes the token claims.
// An undecodable token only costs the claims panel.
func (v *AccountView) Load(ctx context.Context) error {
	current, ok := v.sessions.Current()
	if !ok {
		return ErrNotLoggedIn
	}

	v.Loading = true
	defer func() { v.Loading = false }()

	account, err := v.auth.AdminDetails(ctx, current.Identity.ID)
	if err != nil {
		notifyErr(v.notify, err, "Failed to fetch account details")
		return err
	}
	v.Account = account

	claims, err := session.DecodeClaims(current.Token)
	if err != nil {
		logging.Debug().Err(err).Msg("token claims not decodable")
		v.Claims = nil
		return nil
	}
	v.Claims = claims
	return nil
}
