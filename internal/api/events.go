// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package api

import (
	"context"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/vibedeck/vibedeck/internal/models"
)

// EventsAPI is the events resource surface.
type EventsAPI interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, payload EventPayload, banner *Upload) error
	UpdateEvent(ctx context.Context, id string, payload EventPayload, banner *Upload) error
	DeleteEvent(ctx context.Context, id string) error
}

// EventPayload is the event form serialized for submission. Scalar fields
// travel as plain form values; host, tag and social-link collections are
// JSON-encoded into their form fields. Status is only meaningful on
// update; create leaves it to the backend default.
type EventPayload struct {
	Name         string
	Description  string
	Venue        string
	VenueAddress string
	StartDate    string
	EndDate      string
	TicketPrice  string
	Currency     string
	IsPublic     bool
	Status       string
	EventHosts   []models.EventHost
	Tags         []string
	SocialLinks  map[string]string
}

// formFields serializes the payload into multipart field values.
func (p EventPayload) formFields() (map[string]string, error) {
	hosts, err := json.Marshal(p.EventHosts)
	if err != nil {
		return nil, err
	}
	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return nil, err
	}
	links, err := json.Marshal(p.SocialLinks)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{
		"name":         p.Name,
		"description":  p.Description,
		"venue":        p.Venue,
		"venueAddress": p.VenueAddress,
		"startDate":    p.StartDate,
		"endDate":      p.EndDate,
		"ticketPrice":  p.TicketPrice,
		"currency":     p.Currency,
		"isPublic":     strconv.FormatBool(p.IsPublic),
		"eventHosts":   string(hosts),
		"tags":         string(tags),
		"socialLinks":  string(links),
	}
	if p.Status != "" {
		fields["status"] = p.Status
	}
	return fields, nil
}

// ListEvents fetches the full event collection.
func (c *Client) ListEvents(ctx context.Context) ([]models.Event, error) {
	env, err := c.do(ctx, http.MethodGet, c.mediaURL+"/api/event", nil, "", true)
	if err != nil {
		return nil, err
	}
	var events []models.Event
	if err := decodeData(env, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent submits a new event as multipart form data with an
// optional banner attachment.
func (c *Client) CreateEvent(ctx context.Context, payload EventPayload, banner *Upload) error {
	fields, err := payload.formFields()
	if err != nil {
		return err
	}
	files := map[string][]Upload{}
	if banner != nil {
		files["banner"] = []Upload{*banner}
	}
	_, err = c.doMultipart(ctx, http.MethodPost, c.mediaURL+"/api/event", fields, files, true)
	return err
}

// UpdateEvent submits the full edited event, multipart like create.
func (c *Client) UpdateEvent(ctx context.Context, id string, payload EventPayload, banner *Upload) error {
	fields, err := payload.formFields()
	if err != nil {
		return err
	}
	files := map[string][]Upload{}
	if banner != nil {
		files["banner"] = []Upload{*banner}
	}
	_, err = c.doMultipart(ctx, http.MethodPut, c.mediaURL+"/api/event/"+id, fields, files, true)
	return err
}

// DeleteEvent removes an event.
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, c.mediaURL+"/api/event/"+id, nil, "", true)
	return err
}
