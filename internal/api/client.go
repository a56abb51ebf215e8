// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

// Package api implements the REST clients for the Vibedeck backend.
//
// The backend is one logical service deployed across two ports. Auth,
// users, admins and news answer on the base URL; events, mixes, archive,
// services, trending, stats and chat history answer on the media URL.
// Every method takes a context, issues exactly one request, and maps
// failures into the shared tagged error type. Nothing is retried.
package api

import (
	"net/http"
	"strings"

	"github.com/vibedeck/vibedeck/internal/config"
)

// TokenSource supplies the bearer token attached to authenticated
// requests. The session manager implements it; tests use StaticToken.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed-token TokenSource.
type StaticToken string

// Token returns the fixed token.
func (s StaticToken) Token() string {
	return string(s)
}

// Client talks to both backend surfaces.
type Client struct {
	baseURL    string
	mediaURL   string
	httpClient *http.Client
	tokens     TokenSource
}

// Ensure Client keeps satisfying the per-view interfaces.
var (
	_ EventsAPI    = (*Client)(nil)
	_ MixesAPI     = (*Client)(nil)
	_ ArchiveAPI   = (*Client)(nil)
	_ ServicesAPI  = (*Client)(nil)
	_ TrendingAPI  = (*Client)(nil)
	_ NewsAPI      = (*Client)(nil)
	_ StatsAPI     = (*Client)(nil)
	_ DirectoryAPI = (*Client)(nil)
	_ AuthAPI      = (*Client)(nil)
)

// New builds a client for the configured endpoints. A zero timeout means
// requests are never bounded client-side, matching the deployed
// dashboards where a hung request hangs the operation.
func New(cfg config.APIConfig, tokens TokenSource) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		mediaURL: strings.TrimSuffix(cfg.MediaURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		tokens: tokens,
	}
}
