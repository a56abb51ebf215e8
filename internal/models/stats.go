// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package models

// ChartPoint is one label/value pair in a precomputed chart series.
// Month and Year are set only on monthly time-series points; the
// year/month filter matches on them.
type ChartPoint struct {
	Label string    `json:"label"`
	Value FlexFloat `json:"value"`
	Month string    `json:"month,omitempty"`
	Year  FlexInt   `json:"year,omitempty"`
}

// EventChartData is the precomputed event chart series. All aggregation
// happens server-side; the client only projects these into datasets.
type EventChartData struct {
	StatusPieChart        []ChartPoint `json:"statusPieChart"`
	VenueBarChart         []ChartPoint `json:"venueBarChart"`
	PublicPrivatePieChart []ChartPoint `json:"publicPrivatePieChart"`
	TicketPriceBarChart   []ChartPoint `json:"ticketPriceBarChart"`
	MonthlyBarChart       []ChartPoint `json:"monthlyBarChart"`
}

// EventRawStats is the headline-number block of the event snapshot.
type EventRawStats struct {
	TotalEvents               int            `json:"totalEvents"`
	StatusDistribution        map[string]int `json:"statusDistribution"`
	PublicPrivateDistribution Distribution   `json:"publicPrivateDistribution"`
}

// EventStats is the full event stats snapshot. Read-only, re-fetched on
// mount only.
type EventStats struct {
	ChartData EventChartData `json:"chartData"`
	RawStats  EventRawStats  `json:"rawStats"`
}

// MixChartData is the precomputed mix chart series.
type MixChartData struct {
	FileTypePieChart        []ChartPoint `json:"fileTypePieChart"`
	PublicPrivatePieChart   []ChartPoint `json:"publicPrivatePieChart"`
	MonthlyBarChart         []ChartPoint `json:"monthlyBarChart"`
	DownloadedMixesBarChart []ChartPoint `json:"downloadedMixesBarChart"`
	PlayedMixesBarChart     []ChartPoint `json:"playedMixesBarChart"`
	FileSizeBarChart        []ChartPoint `json:"fileSizeBarChart"`
}

// MixRawStats is the headline-number block of the mix snapshot.
// TotalStorageUsed is in bytes.
type MixRawStats struct {
	TotalMixes                int          `json:"totalMixes"`
	TotalStorageUsed          FlexFloat    `json:"totalStorageUsed"`
	PublicPrivateDistribution Distribution `json:"publicPrivateDistribution"`
}

// MixStats is the full mix stats snapshot.
type MixStats struct {
	ChartData MixChartData `json:"chartData"`
	RawStats  MixRawStats  `json:"rawStats"`
}

// Distribution is a public/private record count pair.
type Distribution struct {
	Public  int `json:"public"`
	Private int `json:"private"`
}
