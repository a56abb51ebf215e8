// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

// Package main is the Vibedeck operator console.
//
// The console is a terminal client for the Vibedeck backend pair: the
// primary API (auth, users, admins, news, map) and the media API
// (events, mixes, archive, services, trending, stats, chat). It signs
// in with the admin-then-user fallback, keeps the session on disk
// between runs, and drives every resource screen from subcommands.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (see internal/config for the mapping)
//   - Config file (vibedeck.yaml, or VIBEDECK_CONFIG)
//   - Built-in defaults
//
// A .env file in the working directory is read automatically.
//
// # Example Usage
//
//	vibedeck login -email ops@example.com -password secret
//	vibedeck events list -status published
//	vibedeck mixes create -title "Test Mix" -file set.mp3
//	vibedeck news reject -id 42 -reason "Unverified sourcing throughout"
//	vibedeck dashboard -year 2025
//	vibedeck chat
package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/vibedeck/vibedeck/internal/api"
	"github.com/vibedeck/vibedeck/internal/config"
	"github.com/vibedeck/vibedeck/internal/logging"
	"github.com/vibedeck/vibedeck/internal/session"
	"github.com/vibedeck/vibedeck/internal/views"
)

// console bundles what every subcommand needs.
type console struct {
	cfg      *config.Config
	client   *api.Client
	sessions *session.Manager
	notify   views.Notifier
	confirm  views.Confirmer
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	store, err := session.NewStore(cfg.Session)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open session store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing session store")
		}
	}()

	sessions, err := session.NewManager(store)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to restore session")
	}

	c := &console{
		cfg:      cfg,
		client:   api.New(cfg.API, sessions),
		sessions: sessions,
		notify:   views.LogNotifier{},
		confirm:  &views.TerminalConfirmer{In: os.Stdin, Out: os.Stderr},
	}

	if err := c.run(context.Background(), os.Args[1:]); err != nil {
		logging.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func (c *console) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		usage()
		return fmt.Errorf("missing command")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return c.cmdLogin(ctx, rest)
	case "logout":
		return c.cmdLogout()
	case "register":
		return c.cmdRegister(ctx, rest)
	case "account":
		return c.cmdAccount(ctx)
	case "dashboard":
		return c.cmdDashboard(ctx, rest)
	case "events":
		return c.cmdEvents(ctx, rest)
	case "mixes":
		return c.cmdMixes(ctx, rest)
	case "archive":
		return c.cmdArchive(ctx, rest)
	case "services":
		return c.cmdServices(ctx, rest)
	case "trending":
		return c.cmdTrending(ctx, rest)
	case "news":
		return c.cmdNews(ctx, rest)
	case "map":
		return c.cmdMap(ctx)
	case "chat":
		return c.cmdChat(ctx)
	case "help", "-h", "--help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Vibedeck operator console

Usage:
  vibedeck <command> [flags]

Commands:
  login       Sign in (admin endpoint first, user fallback)
  logout      Clear the stored session
  register    Create a user account
  account     Show the signed-in account and token claims
  dashboard   Event and mix statistics charts
  events      list | create | edit | delete
  mixes       list | create | edit | delete | play | download
  archive     list | create | edit | delete
  services    list | delete
  trending    list | create | metrics | delete
  news        list | create | approve | reject
  map         Place users and admins on the vibe map
  chat        Open the support chat
`)
}
