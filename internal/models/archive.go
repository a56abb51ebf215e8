// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package models

// Archive is a past-event record with attached media galleries. Created
// via multipart form with repeated "videos" and "images" file parts.
type Archive struct {
	ID          string   `json:"id"`
	EventName   string   `json:"eventName"`
	EventDate   string   `json:"eventDate"`
	Venue       string   `json:"venue"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Setlist     string   `json:"setlist"`
	Genre       string   `json:"genre"`
	Attendance  FlexInt  `json:"attendance"`
	IsPublic    bool     `json:"isPublic"`
	Images      []string `json:"images,omitempty"`
	Videos      []string `json:"videos,omitempty"`
}
