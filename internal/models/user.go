// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package models

// User is a registered account. Latitude and longitude are captured at
// registration and arrive as strings on some records, so both use the
// tolerant wire type. Records missing either coordinate are excluded from
// the map, never errored.
type User struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	Latitude    *FlexFloat `json:"latitude,omitempty"`
	Longitude   *FlexFloat `json:"longitude,omitempty"`
	IsAdmin     bool       `json:"isAdmin,omitempty"`
}

// HasCoordinates reports whether both coordinates are present.
func (u *User) HasCoordinates() bool {
	return u.Latitude != nil && u.Longitude != nil
}

// Identity is the persisted login identity, stored alongside the token.
// IsAdmin is stamped client-side from which login endpoint succeeded.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}
