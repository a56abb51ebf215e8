// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/vibedeck/vibedeck/internal/models"
)

// ArchiveAPI is the archive resource surface.
type ArchiveAPI interface {
	ListArchives(ctx context.Context) ([]models.Archive, error)
	CreateArchive(ctx context.Context, payload ArchivePayload, videos, images []Upload) error
	UpdateArchive(ctx context.Context, id string, archive models.Archive) error
	DeleteArchive(ctx context.Context, id string) error
}

// ArchivePayload is the archive creation form.
type ArchivePayload struct {
	EventName   string
	EventDate   string
	Venue       string
	Location    string
	Description string
	Setlist     string
	Genre       string
	Attendance  string
	IsPublic    bool
}

// ListArchives fetches the full archive collection.
func (c *Client) ListArchives(ctx context.Context) ([]models.Archive, error) {
	env, err := c.do(ctx, http.MethodGet, c.mediaURL+"/api/archive", nil, "", true)
	if err != nil {
		return nil, err
	}
	var archives []models.Archive
	if err := decodeData(env, &archives); err != nil {
		return nil, err
	}
	return archives, nil
}

// CreateArchive submits a new archive as multipart form data. Each video
// and image attachment becomes a repeated part under its collection name.
func (c *Client) CreateArchive(ctx context.Context, payload ArchivePayload, videos, images []Upload) error {
	fields := map[string]string{
		"eventName":   payload.EventName,
		"eventDate":   payload.EventDate,
		"venue":       payload.Venue,
		"location":    payload.Location,
		"description": payload.Description,
		"setlist":     payload.Setlist,
		"genre":       payload.Genre,
		"attendance":  payload.Attendance,
		"isPublic":    strconv.FormatBool(payload.IsPublic),
	}
	files := map[string][]Upload{}
	if len(videos) > 0 {
		files["videos"] = videos
	}
	if len(images) > 0 {
		files["images"] = images
	}
	_, err := c.doMultipart(ctx, http.MethodPost, c.mediaURL+"/api/archive", fields, files, true)
	return err
}

// UpdateArchive PUTs the full edited archive as JSON. Edits do not touch
// the media galleries.
func (c *Client) UpdateArchive(ctx context.Context, id string, archive models.Archive) error {
	_, err := c.doJSON(ctx, http.MethodPut, c.mediaURL+"/api/archive/"+id, archive, true)
	return err
}

// DeleteArchive removes an archive.
func (c *Client) DeleteArchive(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, c.mediaURL+"/api/archive/"+id, nil, "", true)
	return err
}
