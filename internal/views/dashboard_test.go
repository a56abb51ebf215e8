// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package views

import (
	"context"
	"testing"

	"github.com/vibedeck/vibedeck/internal/apierr"
	"github.com/vibedeck/vibedeck/internal/models"
)

func statsFixture() (*models.EventStats, *models.MixStats) {
	es := &models.EventStats{
		ChartData: models.EventChartData{
			MonthlyBarChart: []models.ChartPoint{
				{Label: "Jan 2024", Value: 3, Month: "January", Year: 2024},
				{Label: "Jan 2025", Value: 7, Month: "January", Year: 2025},
			},
		},
	}
	ms := &models.MixStats{
		ChartData: models.MixChartData{
			MonthlyBarChart: []models.ChartPoint{
				{Label: "Feb 2023", Value: 2, Month: "February", Year: 2023},
			},
		},
	}
	return es, ms
}

func TestDashboardLoadsBothSnapshots(t *testing.T) {
	es, ms := statsFixture()
	v := NewDashboardView(&fakeStatsAPI{eventStats: es, mixStats: ms}, &recorder{})

	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if v.LoadingEvents || v.LoadingMixes {
		t.Fatal("loading gates still set")
	}
	if _, ok := v.EventCharts(); !ok {
		t.Fatal("event charts missing")
	}
	if _, ok := v.MixCharts(); !ok {
		t.Fatal("mix charts missing")
	}
}

func TestDashboardPartialFailureKeepsOtherSnapshot(t *testing.T) {
	es, _ := statsFixture()
	n := &recorder{}
	v := NewDashboardView(&fakeStatsAPI{
		eventStats: es,
		mixErr:     apierr.HTTPStatus(500, ""),
	}, n)

	if err := v.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if _, ok := v.EventCharts(); !ok {
		t.Fatal("event charts lost to the mix failure")
	}
	if _, ok := v.MixCharts(); ok {
		t.Fatal("mix charts present despite failure")
	}
	if len(n.failures) != 1 {
		t.Fatalf("toasts %v", n.failures)
	}
}

func TestDashboardFilterNarrowsMonthlyOnly(t *testing.T) {
	es, ms := statsFixture()
	v := NewDashboardView(&fakeStatsAPI{eventStats: es, mixStats: ms}, &recorder{})
	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	v.SetFilter("2025", "all")
	db, ok := v.EventCharts()
	if !ok {
		t.Fatal("event charts missing")
	}
	if len(db.Monthly.Points) != 1 || db.Monthly.Points[0].Label != "Jan 2025" {
		t.Fatalf("monthly filter wrong: %+v", db.Monthly.Points)
	}

	v.SetFilter("all", "all")
	db, _ = v.EventCharts()
	if len(db.Monthly.Points) != 2 {
		t.Fatalf("wide-open filter trimmed points: %d", len(db.Monthly.Points))
	}
}

func TestDashboardFilterYearsSpansBothSeries(t *testing.T) {
	es, ms := statsFixture()
	v := NewDashboardView(&fakeStatsAPI{eventStats: es, mixStats: ms}, &recorder{})
	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	years := v.FilterYears()
	want := []string{"2023", "2024", "2025"}
	if len(years) != len(want) {
		t.Fatalf("years %v", years)
	}
	for i := range want {
		if years[i] != want[i] {
			t.Fatalf("years %v, want %v", years, want)
		}
	}
}
