// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

// Package config loads and validates console configuration using Koanf v2
// with layered sources: struct defaults, an optional YAML file, then
// environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/vibedeck/vibedeck/internal/validation"
)

// Config is the root configuration for the console.
type Config struct {
	API     APIConfig     `koanf:"api"`
	Chat    ChatConfig    `koanf:"chat"`
	Session SessionConfig `koanf:"session"`
	Paging  PagingConfig  `koanf:"paging"`
	Logging LoggingConfig `koanf:"logging"`

	// Environment selects the deployment profile: development or
	// production. It only affects logging defaults and startup banners;
	// URLs are explicit and never derived from it.
	Environment string `koanf:"environment" validate:"oneof=development production"`
}

// APIConfig holds the backend endpoints. The deployed backend is split
// across two ports for nominally the same service: auth, users/admins,
// map data and news moderation live on the primary URL, while events,
// mixes, archive, services, trending and stats live on the media URL.
// Neither port is canonical.
type APIConfig struct {
	// BaseURL serves auth, users, admins and news.
	BaseURL string `koanf:"base_url" validate:"required,url"`

	// MediaURL serves events, mixes, archive, services, trending, stats
	// and chat history.
	MediaURL string `koanf:"media_url" validate:"required,url"`

	// Timeout bounds each HTTP request. Zero means no timeout; a hung
	// request then hangs the operation, matching the deployed dashboards.
	Timeout time.Duration `koanf:"timeout"`
}

// ChatConfig holds the chat relay settings.
type ChatConfig struct {
	// WSURL is the websocket base, e.g. ws://host:5035. The chat path
	// /ws/chat is appended by the client.
	WSURL string `koanf:"ws_url" validate:"required"`

	// Reconnect enables automatic re-dial with capped exponential backoff
	// after a dropped connection. Disable to require a manual reconnect.
	Reconnect bool `koanf:"reconnect"`

	// ReconnectInitialDelay is the first backoff delay.
	ReconnectInitialDelay time.Duration `koanf:"reconnect_initial_delay"`

	// ReconnectMaxDelay caps the backoff delay.
	ReconnectMaxDelay time.Duration `koanf:"reconnect_max_delay"`
}

// SessionConfig selects where the login session persists.
type SessionConfig struct {
	// Store is the backend: badger (persists across runs) or memory.
	Store string `koanf:"store" validate:"oneof=badger memory"`

	// Path is the badger database directory. Ignored for memory.
	Path string `koanf:"path"`
}

// PagingConfig holds the per-resource page sizes for the two paginated
// lists. Everything else fetches the full collection.
type PagingConfig struct {
	NewsPageSize     int `koanf:"news_page_size" validate:"min=1,max=100"`
	ServicesPageSize int `koanf:"services_page_size" validate:"min=1,max=100"`
}

// LoggingConfig mirrors logging.Config for the koanf layer.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the loaded configuration. Invalid config refuses
// startup rather than failing on first use.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return fmt.Errorf("invalid configuration: %w", verr)
	}
	if c.Session.Store == "badger" && c.Session.Path == "" {
		return fmt.Errorf("invalid configuration: session.path is required for the badger store")
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("invalid configuration: api.timeout must not be negative")
	}
	return nil
}
