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

// StatsAPI fetches the precomputed dashboard snapshots and the chat
// history backlog.
type StatsAPI interface {
	EventStats(ctx context.Context) (*models.EventStats, error)
	MixStats(ctx context.Context) (*models.MixStats, error)
	ChatHistory(ctx context.Context) ([]models.ChatMessage, error)
}

// EventStats fetches the event charts snapshot.
func (c *Client) EventStats(ctx context.Context) (*models.EventStats, error) {
	env, err := c.do(ctx, http.MethodGet, c.mediaURL+"/api/event/stats/charts", nil, "", true)
	if err != nil {
		return nil, err
	}
	stats := &models.EventStats{}
	if err := decodeData(env, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// MixStats fetches the mix charts snapshot.
func (c *Client) MixStats(ctx context.Context) (*models.MixStats, error) {
	env, err := c.do(ctx, http.MethodGet, c.mediaURL+"/api/mix/stats/charts", nil, "", true)
	if err != nil {
		return nil, err
	}
	stats := &models.MixStats{}
	if err := decodeData(env, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// ChatHistory fetches the stored message backlog shown before the live
// socket opens.
func (c *Client) ChatHistory(ctx context.Context) ([]models.ChatMessage, error) {
	env, err := c.do(ctx, http.MethodGet, c.mediaURL+"/api/message", nil, "", true)
	if err != nil {
		return nil, err
	}
	var messages []models.ChatMessage
	if err := decodeData(env, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
