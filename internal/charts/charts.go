// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

// Package charts turns the raw statistics payloads into renderable
// series. Projections are pure: they never mutate their inputs and
// preserve the server-supplied point order.
package charts

import (
	"sort"
	"strconv"

	"github.com/vibedeck/vibedeck/internal/models"
)

// FilterAll selects every point regardless of its month or year.
const FilterAll = "all"

// Series is a titled sequence of chart points ready for rendering.
type Series struct {
	Title  string
	Points []models.ChartPoint
}

// EventDashboard groups the event chart series. Monthly honours the
// active year/month filter, the remaining series are unfiltered.
type EventDashboard struct {
	StatusPie        Series
	VenueBar         Series
	PublicPrivatePie Series
	TicketPriceBar   Series
	Monthly          Series
}

// MixDashboard groups the mix chart series. Monthly honours the
// active year/month filter, the remaining series are unfiltered.
type MixDashboard struct {
	FileTypePie      Series
	PublicPrivatePie Series
	Monthly          Series
	Downloaded       Series
	Played           Series
	FileSize         Series
}

// BuildEventDashboard projects event statistics into series, applying
// the year/month filter to the monthly breakdown only.
func BuildEventDashboard(stats models.EventStats, year, month string) EventDashboard {
	cd := stats.ChartData
	return EventDashboard{
		StatusPie:        Series{Title: "Events by Status", Points: cd.StatusPieChart},
		VenueBar:         Series{Title: "Events by Venue", Points: cd.VenueBarChart},
		PublicPrivatePie: Series{Title: "Public vs Private Events", Points: cd.PublicPrivatePieChart},
		TicketPriceBar:   Series{Title: "Ticket Prices", Points: cd.TicketPriceBarChart},
		Monthly:          Series{Title: "Events per Month", Points: FilterMonthly(cd.MonthlyBarChart, year, month)},
	}
}

// BuildMixDashboard projects mix statistics into series, applying the
// year/month filter to the monthly breakdown only.
func BuildMixDashboard(stats models.MixStats, year, month string) MixDashboard {
	cd := stats.ChartData
	return MixDashboard{
		FileTypePie:      Series{Title: "Mixes by File Type", Points: cd.FileTypePieChart},
		PublicPrivatePie: Series{Title: "Public vs Private Mixes", Points: cd.PublicPrivatePieChart},
		Monthly:          Series{Title: "Mixes per Month", Points: FilterMonthly(cd.MonthlyBarChart, year, month)},
		Downloaded:       Series{Title: "Most Downloaded Mixes", Points: cd.DownloadedMixesBarChart},
		Played:           Series{Title: "Most Played Mixes", Points: cd.PlayedMixesBarChart},
		FileSize:         Series{Title: "Mixes by File Size", Points: cd.FileSizeBarChart},
	}
}

// FilterMonthly narrows a monthly series by year and month. Passing
// FilterAll for a dimension leaves that dimension unconstrained; when
// both are FilterAll the input is returned as is. Point order is
// preserved and the input slice is never modified.
func FilterMonthly(points []models.ChartPoint, year, month string) []models.ChartPoint {
	if year == FilterAll && month == FilterAll {
		return points
	}
	out := make([]models.ChartPoint, 0, len(points))
	for _, p := range points {
		if year != FilterAll && strconv.Itoa(int(p.Year)) != year {
			continue
		}
		if month != FilterAll && p.Month != month {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Years returns the distinct years present in a monthly series as
// strings, ascending, for populating the filter selector.
func Years(points []models.ChartPoint) []string {
	seen := make(map[int]struct{}, len(points))
	years := make([]int, 0, len(points))
	for _, p := range points {
		y := int(p.Year)
		if y == 0 {
			continue
		}
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}
	sort.Ints(years)
	out := make([]string, len(years))
	for i, y := range years {
		out[i] = strconv.Itoa(y)
	}
	return out
}

// Months returns the distinct months present in a monthly series in
// first-seen order, for populating the filter selector.
func Months(points []models.ChartPoint) []string {
	seen := make(map[string]struct{}, len(points))
	out := make([]string, 0, len(points))
	for _, p := range points {
		if p.Month == "" {
			continue
		}
		if _, ok := seen[p.Month]; ok {
			continue
		}
		seen[p.Month] = struct{}{}
		out = append(out, p.Month)
	}
	return out
}
