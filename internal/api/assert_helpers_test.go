// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package api

import (
	"net/http/httptest"
	"testing"

	"github.com/vibedeck/vibedeck/internal/config"
)

// newTestClient points both backend surfaces at the same test server.
func newTestClient(t *testing.T, server *httptest.Server, token string) *Client {
	t.Helper()
	return New(config.APIConfig{
		BaseURL:  server.URL,
		MediaURL: server.URL,
	}, StaticToken(token))
}

// assertNoError fails the test immediately when err is non-nil.
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// checkStringEqual reports a mismatch between got and want.
func checkStringEqual(t *testing.T, name, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %q, want %q", name, got, want)
	}
}

// checkIntEqual reports a mismatch between got and want.
func checkIntEqual(t *testing.T, name string, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %d, want %d", name, got, want)
	}
}
