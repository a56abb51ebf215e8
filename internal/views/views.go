// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

// Package views holds the per-resource controllers behind the console
// screens. Every view follows the same shape: fetch on load into a
// working set, edit through a dialog seeded from the clicked row's
// client-side copy, and re-fetch the whole list after any successful
// mutation. Failures surface through the Notifier and leave the prior
// working set on screen.
package views

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vibedeck/vibedeck/internal/apierr"
	"github.com/vibedeck/vibedeck/internal/logging"
)

// FilterAll is the tab value that disables a list filter.
const FilterAll = "all"

// Notifier receives the outcome toasts. Implementations must be safe
// for calls from the goroutines the dashboard view spawns.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes toasts to the structured log. The console binary
// uses it directly; tests substitute a recorder.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) { logging.Info().Str("toast", "success").Msg(msg) }
func (LogNotifier) Error(msg string)   { logging.Error().Str("toast", "error").Msg(msg) }

// Confirmer gates destructive actions. Confirm blocks until the
// operator answers; a false answer must abort before any request.
type Confirmer interface {
	Confirm(prompt string) bool
}

// TerminalConfirmer asks a y/N question on the terminal. Anything other
// than "y" or "yes" declines. One buffered reader is held across calls
// so a second prompt in the same run does not lose typed-ahead input.
type TerminalConfirmer struct {
	In  io.Reader
	Out io.Writer

	br *bufio.Reader
}

func (c *TerminalConfirmer) Confirm(prompt string) bool {
	if c.br == nil {
		c.br = bufio.NewReader(c.In)
	}
	fmt.Fprintf(c.Out, "%s [y/N]: ", prompt)
	line, err := c.br.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// notifyErr routes a failed call to the notifier, preferring the
// backend-supplied message over the view's fallback string.
func notifyErr(n Notifier, err error, fallback string) {
	n.Error(apierr.MessageOr(err, fallback))
}
