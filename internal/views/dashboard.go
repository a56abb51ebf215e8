// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package views

import (
	"context"
	"errors"
	"sync"

	"github.com/vibedeck/vibedeck/internal/api"
	"github.com/vibedeck/vibedeck/internal/charts"
	"github.com/vibedeck/vibedeck/internal/models"
)

// DashboardView is the stats screen. The two snapshots load in
// parallel with independent loading gates, so a failed mix fetch still
// renders the event charts and vice versa. The year/month filter only
// narrows the monthly series.
type DashboardView struct {
	api    api.StatsAPI
	notify Notifier

	mu            sync.Mutex
	EventStats    *models.EventStats
	MixStats      *models.MixStats
	LoadingEvents bool
	LoadingMixes  bool
	Year          string
	Month         string
}

// NewDashboardView wires the stats screen with the filter wide open.
func NewDashboardView(a api.StatsAPI, notify Notifier) *DashboardView {
	return &DashboardView{api: a, notify: notify, Year: charts.FilterAll, Month: charts.FilterAll}
}

// Load fetches both snapshots concurrently. The returned error joins
// whichever fetches failed; partial data is kept.
func (v *DashboardView) Load(ctx context.Context) error {
	v.mu.Lock()
	v.LoadingEvents = true
	v.LoadingMixes = true
	v.mu.Unlock()

	var wg sync.WaitGroup
	var eventErr, mixErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		stats, err := v.api.EventStats(ctx)
		v.mu.Lock()
		defer v.mu.Unlock()
		v.LoadingEvents = false
		if err != nil {
			eventErr = err
			return
		}
		v.EventStats = stats
	}()
	go func() {
		defer wg.Done()
		stats, err := v.api.MixStats(ctx)
		v.mu.Lock()
		defer v.mu.Unlock()
		v.LoadingMixes = false
		if err != nil {
			mixErr = err
			return
		}
		v.MixStats = stats
	}()
	wg.Wait()

	if eventErr != nil {
		notifyErr(v.notify, eventErr, "Failed to fetch event statistics")
	}
	if mixErr != nil {
		notifyErr(v.notify, mixErr, "Failed to fetch mix statistics")
	}
	return errors.Join(eventErr, mixErr)
}

// SetFilter narrows the monthly series. Pass charts.FilterAll for
// either dimension to leave it unconstrained.
func (v *DashboardView) SetFilter(year, month string) {
	v.mu.Lock()
	v.Year = year
	v.Month = month
	v.mu.Unlock()
}

// EventCharts projects the event snapshot through the active filter.
// Returns false while the snapshot has not loaded.
func (v *DashboardView) EventCharts() (charts.EventDashboard, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.EventStats == nil {
		return charts.EventDashboard{}, false
	}
	return charts.BuildEventDashboard(*v.EventStats, v.Year, v.Month), true
}

// MixCharts projects the mix snapshot through the active filter.
func (v *DashboardView) MixCharts() (charts.MixDashboard, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.MixStats == nil {
		return charts.MixDashboard{}, false
	}
	return charts.BuildMixDashboard(*v.MixStats, v.Year, v.Month), true
}

// FilterYears lists the years present in either monthly series for the
// selector, ascending.
func (v *DashboardView) FilterYears() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	var points []models.ChartPoint
	if v.EventStats != nil {
		points = append(points, v.EventStats.ChartData.MonthlyBarChart...)
	}
	if v.MixStats != nil {
		points = append(points, v.MixStats.ChartData.MonthlyBarChart...)
	}
	return charts.Years(points)
}
