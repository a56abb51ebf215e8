// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package charts

import (
	"reflect"
	"testing"

	"github.com/vibedeck/vibedeck/internal/models"
)

func monthlyFixture() []models.ChartPoint {
	return []models.ChartPoint{
		{Label: "Jan 2024", Value: 3, Month: "January", Year: 2024},
		{Label: "Feb 2024", Value: 5, Month: "February", Year: 2024},
		{Label: "Jan 2025", Value: 7, Month: "January", Year: 2025},
		{Label: "Mar 2025", Value: 2, Month: "March", Year: 2025},
	}
}

func labels(points []models.ChartPoint) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Label
	}
	return out
}

func TestFilterMonthly(t *testing.T) {
	tests := []struct {
		name  string
		year  string
		month string
		want  []string
	}{
		{name: "both all returns input", year: "all", month: "all", want: []string{"Jan 2024", "Feb 2024", "Jan 2025", "Mar 2025"}},
		{name: "month only", year: "all", month: "January", want: []string{"Jan 2024", "Jan 2025"}},
		{name: "year only", year: "2025", month: "all", want: []string{"Jan 2025", "Mar 2025"}},
		{name: "year and month", year: "2025", month: "January", want: []string{"Jan 2025"}},
		{name: "no match", year: "2023", month: "all", want: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterMonthly(monthlyFixture(), tc.year, tc.month)
			if !reflect.DeepEqual(labels(got), tc.want) {
				t.Fatalf("got %v, want %v", labels(got), tc.want)
			}
		})
	}
}

func TestFilterMonthlyDoesNotMutateInput(t *testing.T) {
	in := monthlyFixture()
	FilterMonthly(in, "2025", "January")
	if !reflect.DeepEqual(in, monthlyFixture()) {
		t.Fatal("input slice was modified")
	}
}

func TestFilterMonthlyIdempotent(t *testing.T) {
	once := FilterMonthly(monthlyFixture(), "2024", "all")
	twice := FilterMonthly(once, "2024", "all")
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second pass changed result: %v vs %v", labels(once), labels(twice))
	}
}

func TestYears(t *testing.T) {
	got := Years(monthlyFixture())
	want := []string{"2024", "2025"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestMonthsFirstSeenOrder(t *testing.T) {
	got := Months(monthlyFixture())
	want := []string{"January", "February", "March"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestBuildEventDashboardFiltersMonthlyOnly(t *testing.T) {
	stats := models.EventStats{
		ChartData: models.EventChartData{
			StatusPieChart: []models.ChartPoint{{Label: "published", Value: 4}},
			MonthlyBarChart: []models.ChartPoint{
				{Label: "Jan 2024", Value: 1, Month: "January", Year: 2024},
				{Label: "Jan 2025", Value: 2, Month: "January", Year: 2025},
			},
		},
	}

	db := BuildEventDashboard(stats, "2024", "all")
	if len(db.StatusPie.Points) != 1 {
		t.Fatalf("status pie filtered, got %d points", len(db.StatusPie.Points))
	}
	if len(db.Monthly.Points) != 1 || db.Monthly.Points[0].Label != "Jan 2024" {
		t.Fatalf("monthly not filtered by year: %v", labels(db.Monthly.Points))
	}
}

func TestBuildMixDashboardTitles(t *testing.T) {
	db := BuildMixDashboard(models.MixStats{}, "all", "all")
	if db.FileTypePie.Title != "Mixes by File Type" {
		t.Fatalf("unexpected title %q", db.FileTypePie.Title)
	}
	if db.Downloaded.Title != "Most Downloaded Mixes" {
		t.Fatalf("unexpected title %q", db.Downloaded.Title)
	}
}
