// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package views

import (
	"context"

	"github.com/vibedeck/vibedeck/internal/api"
	"github.com/vibedeck/vibedeck/internal/apierr"
	"github.com/vibedeck/vibedeck/internal/models"
)

// EventDialog is the create/edit form state. EditingID is empty while
// creating. Banner holds the staged attachment, if any.
type EventDialog struct {
	EditingID string
	Form      api.EventPayload
	Banner    *api.Upload
}

// defaultEventForm returns the blank create form. Currency defaults to
// KES and status to draft; the collections start empty, not nil, so
// they serialize as empty JSON collections rather than null.
func defaultEventForm() api.EventPayload {
	return api.EventPayload{
		Currency:    "KES",
		Status:      models.EventStatusDraft,
		EventHosts:  []models.EventHost{},
		Tags:        []string{},
		SocialLinks: map[string]string{},
	}
}

// EventsView is the events screen: full-collection working set with a
// client-side status tab filter.
type EventsView struct {
	api     api.EventsAPI
	notify  Notifier
	confirm Confirmer

	Events       []models.Event
	Loading      bool
	StatusFilter string
	Dialog       *EventDialog
}

// NewEventsView wires the events screen. The status filter starts wide
// open.
func NewEventsView(a api.EventsAPI, notify Notifier, confirm Confirmer) *EventsView {
	return &EventsView{api: a, notify: notify, confirm: confirm, StatusFilter: FilterAll}
}

// Load re-fetches the full event collection. On failure the previous
// working set stays on screen.
func (v *EventsView) Load(ctx context.Context) error {
	v.Loading = true
	defer func() { v.Loading = false }()

	events, err := v.api.ListEvents(ctx)
	if err != nil {
		notifyErr(v.notify, err, "Failed to fetch events")
		return err
	}
	v.Events = events
	return nil
}

// Filtered applies the status tab to the working set, preserving order.
func (v *EventsView) Filtered() []models.Event {
	if v.StatusFilter == FilterAll || v.StatusFilter == "" {
		return v.Events
	}
	out := make([]models.Event, 0, len(v.Events))
	for _, e := range v.Events {
		if e.Status == v.StatusFilter {
			out = append(out, e)
		}
	}
	return out
}

// Find returns the working-set event with the given id.
func (v *EventsView) Find(id string) (models.Event, bool) {
	for _, e := range v.Events {
		if e.ID == id {
			return e, true
		}
	}
	return models.Event{}, false
}

// OpenCreate opens the dialog with blank defaults.
func (v *EventsView) OpenCreate() {
	v.Dialog = &EventDialog{Form: defaultEventForm()}
}

// OpenEdit seeds the dialog from the clicked row's client-side copy.
// The record is not re-fetched, so a concurrent edit elsewhere is not
// detected.
func (v *EventsView) OpenEdit(e models.Event) {
	v.Dialog = &EventDialog{
		EditingID: e.ID,
		Form: api.EventPayload{
			Name:         e.Name,
			Description:  e.Description,
			Venue:        e.Venue,
			VenueAddress: e.VenueAddress,
			StartDate:    e.StartDate,
			EndDate:      e.EndDate,
			TicketPrice:  e.TicketPrice.String(),
			Currency:     e.Currency,
			IsPublic:     e.IsPublic,
			Status:       e.Status,
			EventHosts:   e.EventHosts,
			Tags:         e.Tags,
			SocialLinks:  e.SocialLinks,
		},
	}
}

// AddHost appends a host to the open dialog's list. The host sub-form
// requires both name and role before the entry is accepted.
func (v *EventsView) AddHost(h models.EventHost) error {
	if v.Dialog == nil {
		return nil
	}
	if h.Name == "" || h.Role == "" {
		return apierr.Validation("eventHosts", "host name and role are required")
	}
	v.Dialog.Form.EventHosts = append(v.Dialog.Form.EventHosts, h)
	return nil
}

// CloseDialog discards all dialog state, staged banner included.
func (v *EventsView) CloseDialog() {
	v.Dialog = nil
}

// Submit sends the dialog form. On success the dialog closes and the
// list is re-fetched once; on failure the dialog stays open with the
// operator's input intact.
func (v *EventsView) Submit(ctx context.Context) error {
	if v.Dialog == nil {
		return nil
	}
	var err error
	if v.Dialog.EditingID == "" {
		err = v.api.CreateEvent(ctx, v.Dialog.Form, v.Dialog.Banner)
	} else {
		err = v.api.UpdateEvent(ctx, v.Dialog.EditingID, v.Dialog.Form, v.Dialog.Banner)
	}
	if err != nil {
		notifyErr(v.notify, err, "Failed to save event")
		return err
	}
	if v.Dialog.EditingID == "" {
		v.notify.Success("Event created successfully")
	} else {
		v.notify.Success("Event updated successfully")
	}
	v.CloseDialog()
	return v.Load(ctx)
}

// Delete asks for confirmation first; declining issues no request.
func (v *EventsView) Delete(ctx context.Context, id string) error {
	if !v.confirm.Confirm("Are you sure you want to delete this event?") {
		return nil
	}
	if err := v.api.DeleteEvent(ctx, id); err != nil {
		notifyErr(v.notify, err, "Failed to delete event")
		return err
	}
	v.notify.Success("Event deleted successfully")
	return v.Load(ctx)
}
