// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package api

import (
	"context"
	"net/http"

	"github.com/vibedeck/vibedeck/internal/models"
)

// TrendingAPI is the trending resource surface. Edits go through the
// metrics endpoint and may only change the two counters.
type TrendingAPI interface {
	ListTrending(ctx context.Context) ([]models.TrendingEntry, error)
	CreateTrending(ctx context.Context, payload TrendingPayload) error
	UpdateTrendingMetrics(ctx context.Context, id string, metrics models.TrendingMetrics) error
	DeleteTrending(ctx context.Context, id string) error
}

// TrendingPayload is the creation form, sent as JSON.
type TrendingPayload struct {
	ContentType     string         `json:"contentType"`
	ContentID       string         `json:"contentId"`
	Score           float64        `json:"score"`
	ViewCount       int            `json:"viewCount"`
	EngagementCount int            `json:"engagementCount"`
	TrendingPeriod  string         `json:"trendingPeriod"`
	Metadata        map[string]any `json:"metadata"`
}

// ListTrending fetches the full trending collection.
func (c *Client) ListTrending(ctx context.Context) ([]models.TrendingEntry, error) {
	env, err := c.do(ctx, http.MethodGet, c.mediaURL+"/api/trending", nil, "", true)
	if err != nil {
		return nil, err
	}
	var entries []models.TrendingEntry
	if err := decodeData(env, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CreateTrending submits a new trending entry.
func (c *Client) CreateTrending(ctx context.Context, payload TrendingPayload) error {
	_, err := c.doJSON(ctx, http.MethodPost, c.mediaURL+"/api/trending", payload, true)
	return err
}

// UpdateTrendingMetrics PUTs only the view and engagement counters.
func (c *Client) UpdateTrendingMetrics(ctx context.Context, id string, metrics models.TrendingMetrics) error {
	_, err := c.doJSON(ctx, http.MethodPut, c.mediaURL+"/api/trending/metrics/"+id, metrics, true)
	return err
}

// DeleteTrending removes a trending entry.
func (c *Client) DeleteTrending(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, c.mediaURL+"/api/trending/"+id, nil, "", true)
	return err
}
