// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package views

import (
	"context"
	"errors"
	"testing"

	"github.com/vibedeck/vibedeck/internal/api"
	"github.com/vibedeck/vibedeck/internal/apierr"
	"github.com/vibedeck/vibedeck/internal/models"
	"github.com/vibedeck/vibedeck/internal/session"
)

func TestLoginAdminSucceedsFirst(t *testing.T) {
	f := &fakeAuthAPI{
		adminResult: &api.LoginResult{Token: "tok-a", Identity: models.Identity{ID: "1", Email: "a@b.c"}},
	}
	sessions := newTestManager(t)
	n := &recorder{}
	v := NewLoginView(f, sessions, n)

	loginType, err := v.Login(context.Background(), "a@b.c", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loginType != session.LoginTypeAdmin {
		t.Fatalf("login type %q", loginType)
	}
	if f.userCalls != 0 {
		t.Fatalf("user endpoint tried despite admin success: %d", f.userCalls)
	}
	current, ok := sessions.Current()
	if !ok || current.Token != "tok-a" || !current.Identity.IsAdmin {
		t.Fatalf("persisted session wrong: %+v", current)
	}
	if len(n.successes) != 1 || n.successes[0] != "Admin login successful! Redirecting to dashboard..." {
		t.Fatalf("toast %v", n.successes)
	}
}

func TestLoginFallsBackToUserEndpoint(t *testing.T) {
	f := &fakeAuthAPI{
		adminErr:   apierr.HTTPStatus(401, "Invalid credentials"),
		userResult: &api.LoginResult{Token: "tok-u", Identity: models.Identity{ID: "2", Email: "u@b.c"}},
	}
	sessions := newTestManager(t)
	n := &recorder{}
	v := NewLoginView(f, sessions, n)

	loginType, err := v.Login(context.Background(), "u@b.c", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loginType != session.LoginTypeUser {
		t.Fatalf("login type %q", loginType)
	}
	if f.adminCalls != 1 || f.userCalls != 1 {
		t.Fatalf("call order wrong: admin=%d user=%d", f.adminCalls, f.userCalls)
	}
	current, ok := sessions.Current()
	if !ok || current.LoginType != session.LoginTypeUser {
		t.Fatalf("persisted login type wrong: %+v", current)
	}
	if current.Identity.IsAdmin {
		t.Fatal("user login must not be stamped admin")
	}
	if len(n.successes) != 1 || n.successes[0] != "Login successful! Redirecting to dashboard..." {
		t.Fatalf("toast %v", n.successes)
	}
}

func TestLoginBothRejectedSurfacesBackendMessage(t *testing.T) {
	f := &fakeAuthAPI{
		adminErr: apierr.HTTPStatus(401, "Invalid credentials"),
		userErr:  apierr.HTTPStatus(401, "Account locked"),
	}
	sessions := newTestManager(t)
	n := &recorder{}
	v := NewLoginView(f, sessions, n)

	if _, err := v.Login(context.Background(), "x@b.c", "pw"); err == nil {
		t.Fatal("expected error")
	}
	if len(n.failures) != 1 || n.failures[0] != "Account locked" {
		t.Fatalf("toast %v", n.failures)
	}
	if _, ok := sessions.Current(); ok {
		t.Fatal("session persisted after failed login")
	}
}

func TestLoginBothRejectedWithoutMessageFallsBack(t *testing.T) {
	f := &fakeAuthAPI{
		adminErr: apierr.HTTPStatus(401, ""),
		userErr:  apierr.HTTPStatus(500, ""),
	}
	n := &recorder{}
	v := NewLoginView(f, newTestManager(t), n)

	if _, err := v.Login(context.Background(), "x@b.c", "pw"); err == nil {
		t.Fatal("expected error")
	}
	if len(n.failures) != 1 || n.failures[0] != "Login failed" {
		t.Fatalf("toast %v", n.failures)
	}
}

func TestLoginNetworkErrorSkipsFallback(t *testing.T) {
	f := &fakeAuthAPI{adminErr: apierr.Network(errors.New("connection refused"))}
	n := &recorder{}
	v := NewLoginView(f, newTestManager(t), n)

	if _, err := v.Login(context.Background(), "x@b.c", "pw"); err == nil {
		t.Fatal("expected error")
	}
	if f.userCalls != 0 {
		t.Fatalf("fallback tried on transport failure: %d", f.userCalls)
	}
	if len(n.failures) != 1 || n.failures[0] != "An error occurred during login" {
		t.Fatalf("toast %v", n.failures)
	}
}

func TestRegisterBlocksMissingFields(t *testing.T) {
	f := &fakeAuthAPI{}
	n := &recorder{}
	v := NewLoginView(f, newTestManager(t), n)

	err := v.Register(context.Background(), api.RegisterRequest{Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !apierr.IsKind(err, apierr.KindValidation) {
		t.Fatalf("kind of %v", err)
	}
	if f.registerCalls != 0 {
		t.Fatalf("register called despite invalid form: %d", f.registerCalls)
	}
}

func TestRegisterSubmitsValidForm(t *testing.T) {
	f := &fakeAuthAPI{}
	v := NewLoginView(f, newTestManager(t), &recorder{})

	err := v.Register(context.Background(), api.RegisterRequest{
		Username: "njeri",
		Email:    "njeri@vibedeck.io",
		Password: "hunter22",
		Latitude: "-1.2921",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if f.registerCalls != 1 {
		t.Fatalf("register calls = %d", f.registerCalls)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	sessions := newTestManager(t)
	if _, err := sessions.Establish("tok", models.Identity{ID: "1"}, session.LoginTypeAdmin); err != nil {
		t.Fatalf("establish: %v", err)
	}
	v := NewLoginView(&fakeAuthAPI{}, sessions, &recorder{})

	if err := v.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := sessions.Current(); ok {
		t.Fatal("session survived logout")
	}
}
