// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package views

import (
	"context"

	"github.com/vibedeck/vibedeck/internal/api"
	"github.com/vibedeck/vibedeck/internal/apierr"
	"github.com/vibedeck/vibedeck/internal/logging"
	"github.com/vibedeck/vibedeck/internal/session"
	"github.com/vibedeck/vibedeck/internal/validation"
)

const (
	msgAdminLoginOK = "Admin login successful! Redirecting to dashboard..."
	msgUserLoginOK  = "Login successful! Redirecting to dashboard..."
	msgLoginFailed  = "Login failed"
	msgLoginErrored = "An error occurred during login"
	msgRegisterOK   = "Registration successful! You can now log in."
)

// LoginView drives sign-in and registration. Login tries the admin
// endpoint first and falls back to the user endpoint only when the
// admin attempt was rejected by the backend; a transport failure on
// either attempt fails the whole login.
type LoginView struct {
	auth     api.AuthAPI
	sessions *session.Manager
	notify   Notifier

	Loading bool
}

// NewLoginView wires the sign-in screen.
func NewLoginView(auth api.AuthAPI, sessions *session.Manager, notify Notifier) *LoginView {
	return &LoginView{auth: auth, sessions: sessions, notify: notify}
}

// Login authenticates and persists the session. The returned login type
// is session.LoginTypeAdmin or session.LoginTypeUser.
func (v *LoginView) Login(ctx context.Context, email, password string) (string, error) {
	v.Loading = true
	defer func() { v.Loading = false }()

	result, adminErr := v.auth.AdminLogin(ctx, email, password)
	if adminErr == nil {
		result.Identity.IsAdmin = true
		if _, err := v.sessions.Establish(result.Token, result.Identity, session.LoginTypeAdmin); err != nil {
			notifyErr(v.notify, err, msgLoginErrored)
			return "", err
		}
		v.notify.Success(msgAdminLoginOK)
		return session.LoginTypeAdmin, nil
	}
	if !apierr.IsKind(adminErr, apierr.KindHTTP) {
		v.notify.Error(msgLoginErrored)
		return "", adminErr
	}

	logging.Debug().Err(adminErr).Msg("admin login rejected, trying user login")
	result, userErr := v.auth.UserLogin(ctx, email, password)
	if userErr != nil {
		if apierr.IsKind(userErr, apierr.KindHTTP) {
			notifyErr(v.notify, userErr, msgLoginFailed)
		} else {
			v.notify.Error(msgLoginErrored)
		}
		return "", userErr
	}

	if _, err := v.sessions.Establish(result.Token, result.Identity, session.LoginTypeUser); err != nil {
		notifyErr(v.notify, err, msgLoginErrored)
		return "", err
	}
	v.notify.Success(msgUserLoginOK)
	return session.LoginTypeUser, nil
}

// registerForm mirrors the required markers on the sign-up form.
// Coordinates are optional; the backend stores whatever strings arrive.
type registerForm struct {
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// Register creates a user account. Required-field omissions are blocked
// before any network call.
func (v *LoginView) Register(ctx context.Context, req api.RegisterRequest) error {
	form := registerForm{Username: req.Username, Email: req.Email, Password: req.Password}
	if ferr := validation.ValidateStruct(form); ferr != nil {
		v.notify.Error(ferr.Error())
		return ferr.ToAPIErr()
	}

	if err := v.auth.Register(ctx, req); err != nil {
		notifyErr(v.notify, err, "Registration failed")
		return err
	}
	v.notify.Success(msgRegisterOK)
	return nil
}

// Logout clears the persisted session wholesale.
func (v *LoginView) Logout() error {
	if err := v.sessions.Clear(); err != nil {
		notifyErr(v.notify, err, "Logout failed")
		return err
	}
	v.notify.Success("Logged out")
	return nil
}
