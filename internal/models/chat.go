// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package models

// Chat sender classes. The relay tags admin replies as "support";
// anything else renders as a user message.
const (
	ChatSenderSupport = "support"
	ChatSenderUser    = "user"
)

// ChatMessage is one chat frame, incoming or historical. Messages are
// append-only in arrival order; nothing de-duplicates or re-orders them.
type ChatMessage struct {
	ID        string `json:"id,omitempty"`
	Text      string `json:"text"`
	Sender    string `json:"sender,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// ChatOutgoing is the client-to-relay frame. Token carries the session
// token for server-side attribution.
type ChatOutgoing struct {
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
	Token     string `json:"token"`
}
