// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package models

// Trending content types and periods.
const (
	TrendingContentEvent = "event"
	TrendingContentMix   = "mix"

	TrendingPeriodDaily   = "daily"
	TrendingPeriodWeekly  = "weekly"
	TrendingPeriodMonthly = "monthly"
)

// TrendingEntry scores a content item (event or mix) for a period.
// ContentID references an Event or Mix by id; the display join against
// locally fetched lists happens in the view, not here.
type TrendingEntry struct {
	ID              string         `json:"id"`
	ContentType     string         `json:"contentType"`
	ContentID       string         `json:"contentId"`
	Score           FlexFloat      `json:"score"`
	ViewCount       int            `json:"viewCount"`
	EngagementCount int            `json:"engagementCount"`
	TrendingPeriod  string         `json:"trendingPeriod"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

// TrendingMetrics is the body of a metrics-only update. Edits send only
// these two counters; score and period are recomputed server-side.
type TrendingMetrics struct {
	ViewCount       int `json:"viewCount"`
	EngagementCount int `json:"engagementCount"`
}
