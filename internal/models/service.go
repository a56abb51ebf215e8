// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package models

// Service is a booked service record. The console lists and deletes
// services; creation happens elsewhere, so there is no form for it.
type Service struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Type         string  `json:"type"`
	Duration     FlexInt `json:"duration"`
	ContactName  string  `json:"contactName"`
	ContactEmail string  `json:"contactEmail"`
	ContactPhone string  `json:"contactPhone"`
	EventDate    string  `json:"eventDate"`
	IsActive     bool    `json:"isActive"`
	CreatedAt    string  `json:"createdAt"`
}
