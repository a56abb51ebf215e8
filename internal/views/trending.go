// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package views

import (
	"context"

	"github.com/vibedeck/vibedeck/internal/api"
	"github.com/vibedeck/vibedeck/internal/logging"
	"github.com/vibedeck/vibedeck/internal/models"
)

// TrendingRow is a trending entry joined against the locally fetched
// event and mix lists for display. ContentTitle stays blank when the
// referenced content is not in either list.
type TrendingRow struct {
	models.TrendingEntry
	ContentTitle string
}

// TrendingDialog is the create/edit form state. Edits can only change
// the two counters, so the edit form is just the metrics pair.
type TrendingDialog struct {
	EditingID string
	Form      api.TrendingPayload
	Metrics   models.TrendingMetrics
}

// defaultTrendingForm returns the blank create form.
func defaultTrendingForm() api.TrendingPayload {
	return api.TrendingPayload{
		ContentType:    models.TrendingContentEvent,
		TrendingPeriod: models.TrendingPeriodDaily,
		Metadata:       map[string]any{},
	}
}

// TrendingView is the trending screen: full-collection working set with
// a client-side content-type tab filter. Display titles come from a
// client-side join against the event and mix collections; a failed
// side fetch degrades to blank titles rather than failing the screen.
type TrendingView struct {
	api    api.TrendingAPI
	events api.EventsAPI
	mixes  api.MixesAPI

	notify  Notifier
	confirm Confirmer

	Rows       []TrendingRow
	Loading    bool
	TypeFilter string
	Dialog     *TrendingDialog
}

// NewTrendingView wires the trending screen. The content-type filter
// starts wide open.
func NewTrendingView(a api.TrendingAPI, events api.EventsAPI, mixes api.MixesAPI, notify Notifier, confirm Confirmer) *TrendingView {
	return &TrendingView{api: a, events: events, mixes: mixes, notify: notify, confirm: confirm, TypeFilter: FilterAll}
}

// Load fetches the trending list and rebuilds the display join.
func (v *TrendingView) Load(ctx context.Context) error {
	v.Loading = true
	defer func() { v.Loading = false }()

	entries, err := v.api.ListTrending(ctx)
	if err != nil {
		notifyErr(v.notify, err, "Failed to fetch trending content")
		return err
	}

	titles := v.contentTitles(ctx)
	rows := make([]TrendingRow, len(entries))
	for i, e := range entries {
		rows[i] = TrendingRow{TrendingEntry: e, ContentTitle: titles[e.ContentType+":"+e.ContentID]}
		if rows[i].ContentTitle == "" {
			logging.Debug().
				Str("content_type", e.ContentType).
				Str("content_id", e.ContentID).
				Msg("trending entry references unknown content")
		}
	}
	v.Rows = rows
	return nil
}

// contentTitles builds the join index from the side collections. Either
// fetch may fail without failing the screen.
func (v *TrendingView) contentTitles(ctx context.Context) map[string]string {
	titles := make(map[string]string)
	if events, err := v.events.ListEvents(ctx); err != nil {
		logging.Debug().Err(err).Msg("trending join skipped events")
	} else {
		for _, e := range events {
			titles[models.TrendingContentEvent+":"+e.ID] = e.Name
		}
	}
	if mixes, err := v.mixes.ListMixes(ctx); err != nil {
		logging.Debug().Err(err).Msg("trending join skipped mixes")
	} else {
		for _, m := range mixes {
			titles[models.TrendingContentMix+":"+m.ID] = m.Title
		}
	}
	return titles
}

// Filtered applies the content-type tab to the working set, preserving
// order.
func (v *TrendingView) Filtered() []TrendingRow {
	if v.TypeFilter == FilterAll || v.TypeFilter == "" {
		return v.Rows
	}
	out := make([]TrendingRow, 0, len(v.Rows))
	for _, r := range v.Rows {
		if r.ContentType == v.TypeFilter {
			out = append(out, r)
		}
	}
	return out
}

// OpenCreate opens the dialog with the form defaults.
func (v *TrendingView) OpenCreate() {
	v.Dialog = &TrendingDialog{Form: defaultTrendingForm()}
}

// OpenEdit opens the metrics-only edit form seeded from the row.
func (v *TrendingView) OpenEdit(row TrendingRow) {
	v.Dialog = &TrendingDialog{
		EditingID: row.ID,
		Metrics: models.TrendingMetrics{
			ViewCount:       row.ViewCount,
			EngagementCount: row.EngagementCount,
		},
	}
}

// CloseDialog discards all dialog state.
func (v *TrendingView) CloseDialog() {
	v.Dialog = nil
}

// Submit sends the dialog. Creation posts the full form; edits send
// only the two counters to the metrics endpoint.
func (v *TrendingView) Submit(ctx context.Context) error {
	if v.Dialog == nil {
		return nil
	}
	if v.Dialog.EditingID == "" {
		if err := v.api.CreateTrending(ctx, v.Dialog.Form); err != nil {
			notifyErr(v.notify, err, "Failed to save trending content")
			return err
		}
		v.notify.Success("Trending content created successfully")
	} else {
		if err := v.api.UpdateTrendingMetrics(ctx, v.Dialog.EditingID, v.Dialog.Metrics); err != nil {
			notifyErr(v.notify, err, "Failed to update metrics")
			return err
		}
		v.notify.Success("Metrics updated successfully")
	}
	v.CloseDialog()
	return v.Load(ctx)
}

// Delete asks for confirmation first; declining issues no request.
func (v *TrendingView) Delete(ctx context.Context, id string) error {
	if !v.confirm.Confirm("Are you sure you want to delete this trending content?") {
		return nil
	}
	if err := v.api.DeleteTrending(ctx, id); err != nil {
		notifyErr(v.notify, err, "Failed to delete trending content")
		return err
	}
	v.notify.Success("Trending content deleted successfully")
	return v.Load(ctx)
}
