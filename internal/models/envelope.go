// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package models

import (
	json "github.com/goccy/go-json"
)

// Envelope is the wrapper every backend response uses. Data is decoded in
// a second pass because its shape depends on the endpoint.
type Envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data,omitempty"`
	Message    string          `json:"message,omitempty"`
	Token      string          `json:"token,omitempty"`
	Pagination *Pagination     `json:"pagination,omitempty"`
}

// Pagination carries list paging metadata. The backend is inconsistent
// about the total field name across resources, so both are mapped.
type Pagination struct {
	Page       int `json:"page,omitempty"`
	Limit      int `json:"limit,omitempty"`
	Total      int `json:"total,omitempty"`
	TotalItems int `json:"totalItems,omitempty"`
	TotalPages int `json:"totalPages,omitempty"`
}

// TotalCount returns whichever total the backend populated.
func (p *Pagination) TotalCount() int {
	if p == nil {
		return 0
	}
	if p.TotalItems > 0 {
		return p.TotalItems
	}
	return p.Total
}
