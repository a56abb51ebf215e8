// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package session

import (
	"fmt"

	"github.com/vibedeck/vibedeck/internal/config"
	"github.com/vibedeck/vibedeck/internal/logging"
)

// NewStore builds the configured session store backend.
func NewStore(cfg config.SessionConfig) (Store, error) {
	switch cfg.Store {
	case "badger":
		store, err := NewBadgerStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		logging.Debug().Str("path", cfg.Path).Msg("opened badger session store")
		return store, nil
	case "memory":
		logging.Debug().Msg("using in-memory session store")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}
