// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where config files are searched, first hit wins.
var DefaultConfigPaths = []string{
	"vibedeck.yaml",
	"vibedeck.yml",
	"/etc/vibedeck/config.yaml",
	"/etc/vibedeck/config.yml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "VIBEDECK_CONFIG"

// defaultConfig returns a Config with built-in defaults. These are applied
// first, then overridden by the config file and environment variables.
func defaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:  "http://localhost:4035",
			MediaURL: "http://localhost:5035",
			Timeout:  0, // no timeout, matching the deployed dashboards
		},
		Chat: ChatConfig{
			WSURL:                 "ws://localhost:5035",
			Reconnect:             true,
			ReconnectInitialDelay: time.Second,
			ReconnectMaxDelay:     30 * time.Second,
		},
		Session: SessionConfig{
			Store: "badger",
			Path:  defaultSessionPath(),
		},
		Paging: PagingConfig{
			NewsPageSize:     10,
			ServicesPageSize: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Caller: false,
		},
		Environment: "development",
	}
}

// defaultSessionPath keeps session state under the user config dir so the
// login survives across console runs, like browser-local storage does.
func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".vibedeck/session"
	}
	return dir + "/vibedeck/session"
}

// Load builds configuration from layered sources with precedence
// ENV > file > defaults, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile returns the first config file that exists, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envMappings maps environment variable names to koanf config paths.
// Unlisted variables are ignored so unrelated environment noise cannot
// leak into the configuration.
var envMappings = map[string]string{
	"vibedeck_api_url":                      "api.base_url",
	"vibedeck_media_url":                    "api.media_url",
	"vibedeck_api_timeout":                  "api.timeout",
	"vibedeck_ws_url":                       "chat.ws_url",
	"vibedeck_chat_reconnect":               "chat.reconnect",
	"vibedeck_chat_reconnect_initial_delay": "chat.reconnect_initial_delay",
	"vibedeck_chat_reconnect_max_delay":     "chat.reconnect_max_delay",
	"vibedeck_session_store":                "session.store",
	"vibedeck_session_path":                 "session.path",
	"vibedeck_news_page_size":               "paging.news_page_size",
	"vibedeck_services_page_size":           "paging.services_page_size",
	"vibedeck_environment":                  "environment",
	"log_level":                             "logging.level",
	"log_format":                            "logging.format",
	"log_caller":                            "logging.caller",
}

// envTransformFunc maps VIBEDECK_API_URL style variables onto config
// paths. Returning "" drops the variable.
func envTransformFunc(key string) string {
	if path, ok := envMappings[strings.ToLower(key)]; ok {
		return path
	}
	return ""
}
