// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

// Package models defines the client-side copies of backend-owned records
// and the response envelope the backend wraps them in.
//
// All copies are transient and non-authoritative: a list is trusted only
// immediately after a full re-fetch, and edits are seeded from whatever
// copy the view currently holds. Field tags match the backend's camelCase
// wire names. Numeric fields the backend sometimes delivers as strings
// (coordinates, prices, durations) use the tolerant wire types in wire.go.
package models
