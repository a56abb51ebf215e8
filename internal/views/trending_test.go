// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package views

import (
	"context"
	"testing"

	"github.com/vibedeck/vibedeck/internal/models"
)

func TestTrendingJoinResolvesTitles(t *testing.T) {
	trending := &fakeTrendingAPI{entries: []models.TrendingEntry{
		{ID: "tr-1", ContentType: models.TrendingContentEvent, ContentID: "ev-1"},
		{ID: "tr-2", ContentType: models.TrendingContentMix, ContentID: "mx-1"},
		{ID: "tr-3", ContentType: models.TrendingContentEvent, ContentID: "gone"},
	}}
	events := &fakeEventsAPI{events: []models.Event{{ID: "ev-1", Name: "Rooftop Set"}}}
	mixes := &fakeMixesAPI{mixes: []models.Mix{{ID: "mx-1", Title: "Night Drive"}}}
	v := NewTrendingView(trending, events, mixes, &recorder{}, &stubConfirm{})

	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(v.Rows) != 3 {
		t.Fatalf("rows %d", len(v.Rows))
	}
	if v.Rows[0].ContentTitle != "Rooftop Set" {
		t.Fatalf("event title %q", v.Rows[0].ContentTitle)
	}
	if v.Rows[1].ContentTitle != "Night Drive" {
		t.Fatalf("mix title %q", v.Rows[1].ContentTitle)
	}
	if v.Rows[2].ContentTitle != "" {
		t.Fatalf("unknown content joined to %q", v.Rows[2].ContentTitle)
	}
}

func TestTrendingJoinSurvivesSideFetchFailure(t *testing.T) {
	trending := &fakeTrendingAPI{entries: []models.TrendingEntry{
		{ID: "tr-1", ContentType: models.TrendingContentEvent, ContentID: "ev-1"},
	}}
	events := &fakeEventsAPI{listErr: errDummy}
	mixes := &fakeMixesAPI{}
	v := NewTrendingView(trending, events, mixes, &recorder{}, &stubConfirm{})

	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("load must not fail on side fetch: %v", err)
	}
	if len(v.Rows) != 1 || v.Rows[0].ContentTitle != "" {
		t.Fatalf("rows %+v", v.Rows)
	}
}

func TestTrendingFiltered(t *testing.T) {
	trending := &fakeTrendingAPI{entries: []models.TrendingEntry{
		{ID: "tr-1", ContentType: models.TrendingContentEvent, ContentID: "ev-1"},
		{ID: "tr-2", ContentType: models.TrendingContentMix, ContentID: "mx-1"},
		{ID: "tr-3", ContentType: models.TrendingContentMix, ContentID: "mx-2"},
	}}
	v := NewTrendingView(trending, &fakeEventsAPI{}, &fakeMixesAPI{}, &recorder{}, &stubConfirm{})
	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := v.Filtered(); len(got) != 3 {
		t.Fatalf("default filter hid rows: %d", len(got))
	}
	v.TypeFilter = models.TrendingContentMix
	got := v.Filtered()
	if len(got) != 2 || got[0].ID != "tr-2" || got[1].ID != "tr-3" {
		t.Fatalf("mix rows %+v", got)
	}
	v.TypeFilter = models.TrendingContentEvent
	if got := v.Filtered(); len(got) != 1 || got[0].ID != "tr-1" {
		t.Fatalf("event rows %+v", got)
	}
	if len(v.Rows) != 3 {
		t.Fatalf("working set mutated: %d rows", len(v.Rows))
	}
}

func TestTrendingCreateFormDefaults(t *testing.T) {
	v := NewTrendingView(&fakeTrendingAPI{}, &fakeEventsAPI{}, &fakeMixesAPI{}, &recorder{}, &stubConfirm{})
	v.OpenCreate()
	if v.Dialog.Form.ContentType != models.TrendingContentEvent {
		t.Fatalf("content type %q", v.Dialog.Form.ContentType)
	}
	if v.Dialog.Form.TrendingPeriod != models.TrendingPeriodDaily {
		t.Fatalf("period %q", v.Dialog.Form.TrendingPeriod)
	}
	if v.Dialog.Form.Metadata == nil {
		t.Fatal("metadata must start empty, not nil")
	}
}

func TestTrendingEditSendsOnlyMetrics(t *testing.T) {
	trending := &fakeTrendingAPI{entries: []models.TrendingEntry{}}
	v := NewTrendingView(trending, &fakeEventsAPI{}, &fakeMixesAPI{}, &recorder{}, &stubConfirm{})

	v.OpenEdit(TrendingRow{TrendingEntry: models.TrendingEntry{
		ID:              "tr-1",
		Score:           88.5,
		ViewCount:       12,
		EngagementCount: 5,
	}})
	v.Dialog.Metrics.ViewCount = 40

	if err := v.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if trending.lastMetricsID != "tr-1" {
		t.Fatalf("metrics id %q", trending.lastMetricsID)
	}
	if trending.lastMetrics.ViewCount != 40 || trending.lastMetrics.EngagementCount != 5 {
		t.Fatalf("metrics %+v", trending.lastMetrics)
	}
	if v.Dialog != nil {
		t.Fatal("dialog open after successful update")
	}
}
