// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package models

// Event statuses the backend recognizes. The status tab filter offers
// these plus "all".
const (
	EventStatusDraft     = "draft"
	EventStatusPublished = "published"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

// Event is an event record. Created via multipart form with an optional
// banner attachment; eventHosts, tags and socialLinks travel as
// JSON-encoded form fields.
type Event struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Venue        string            `json:"venue"`
	VenueAddress string            `json:"venueAddress"`
	StartDate    string            `json:"startDate"`
	EndDate      string            `json:"endDate"`
	TicketPrice  FlexFloat         `json:"ticketPrice"`
	Currency     string            `json:"currency"`
	IsPublic     bool              `json:"isPublic"`
	Status       string            `json:"status"`
	BannerURL    string            `json:"bannerUrl,omitempty"`
	EventHosts   []EventHost       `json:"eventHosts,omitempty"`
	Tags         []string          `json:"tags,omitempty"`
	SocialLinks  map[string]string `json:"socialLinks,omitempty"`
}

// EventHost is one entry in an event's client-managed host list.
type EventHost struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Contact string `json:"contact,omitempty"`
}
