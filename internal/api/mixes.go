// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/vibedeck/vibedeck/internal/apierr"
	"github.com/vibedeck/vibedeck/internal/models"
)

// MixesAPI is the mixes resource surface.
type MixesAPI interface {
	ListMixes(ctx context.Context) ([]models.Mix, error)
	CreateMix(ctx context.Context, payload MixPayload, file *Upload) error
	UpdateMix(ctx context.Context, id string, mix models.Mix) error
	DeleteMix(ctx context.Context, id string) error
	PlayMix(ctx context.Context, id string) (*models.Mix, error)
	DownloadMix(ctx context.Context, id string) ([]byte, error)
}

// MixPayload is the mix creation form. Duration stays the string the
// operator typed; the backend parses it.
type MixPayload struct {
	Title       string
	Description string
	FileType    string
	Duration    string
	IsPublic    bool
}

// ListMixes fetches the full mix collection.
func (c *Client) ListMixes(ctx context.Context) ([]models.Mix, error) {
	env, err := c.do(ctx, http.MethodGet, c.mediaURL+"/api/mix", nil, "", true)
	if err != nil {
		return nil, err
	}
	var mixes []models.Mix
	if err := decodeData(env, &mixes); err != nil {
		return nil, err
	}
	return mixes, nil
}

// CreateMix submits a new mix as multipart form data with an optional
// media file attachment.
func (c *Client) CreateMix(ctx context.Context, payload MixPayload, file *Upload) error {
	fields := map[string]string{
		"title":       payload.Title,
		"description": payload.Description,
		"fileType":    payload.FileType,
		"duration":    payload.Duration,
		"isPublic":    strconv.FormatBool(payload.IsPublic),
	}
	files := map[string][]Upload{}
	if file != nil {
		files["file"] = []Upload{*file}
	}
	_, err := c.doMultipart(ctx, http.MethodPost, c.mediaURL+"/api/mix", fields, files, true)
	return err
}

// UpdateMix PUTs the full edited mix object as JSON.
func (c *Client) UpdateMix(ctx context.Context, id string, mix models.Mix) error {
	_, err := c.doJSON(ctx, http.MethodPut, c.mediaURL+"/api/mix/"+id, mix, true)
	return err
}

// DeleteMix removes a mix.
func (c *Client) DeleteMix(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, c.mediaURL+"/api/mix/"+id, nil, "", true)
	return err
}

// PlayMix fetches a single mix. The backend increments the play count as
// a side effect of this read.
func (c *Client) PlayMix(ctx context.Context, id string) (*models.Mix, error) {
	env, err := c.do(ctx, http.MethodGet, c.mediaURL+"/api/mix/"+id, nil, "", true)
	if err != nil {
		return nil, err
	}
	mix := &models.Mix{}
	if err := decodeData(env, mix); err != nil {
		return nil, err
	}
	return mix, nil
}

// DownloadMix streams the mix media file. The response is the raw file,
// not the JSON envelope. The backend increments the download count.
func (c *Client) DownloadMix(ctx context.Context, id string) ([]byte, error) {
	url := c.mediaURL + "/api/mix/" + id + "/download-file"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", bearerValue(token))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apierr.Network(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, apierr.HTTPStatus(resp.StatusCode, "")
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.Network(err)
	}
	return data, nil
}
