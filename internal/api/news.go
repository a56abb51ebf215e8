// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package api

import (
	"context"
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/vibedeck/vibedeck/internal/models"
)

// NewsAPI is the news moderation surface. List, create and moderation
// all live on the primary URL, unlike the other resources.
type NewsAPI interface {
	ListPendingNews(ctx context.Context, page, limit int) ([]models.NewsArticle, int, error)
	CreateNews(ctx context.Context, payload NewsPayload, media *Upload) error
	ApproveNews(ctx context.Context, id string) error
	RejectNews(ctx context.Context, id, reason string) error
}

// NewsPayload is the article submission form. Tags are JSON-encoded into
// their form field; MediaType is sent only when a media file is attached.
type NewsPayload struct {
	Title     string
	Content   string
	Category  string
	Tags      []string
	MediaType string
}

// rejectRequest is the body of a rejection. The reason's minimum length
// is checked in the view before this request is built.
type rejectRequest struct {
	RejectionReason string `json:"rejectionReason"`
}

// ListPendingNews fetches one page of articles awaiting moderation. page
// is 1-based. The second return value is the backend's total count.
func (c *Client) ListPendingNews(ctx context.Context, page, limit int) ([]models.NewsArticle, int, error) {
	url := fmt.Sprintf("%s/api/news/pending?page=%d&limit=%d", c.baseURL, page, limit)
	env, err := c.do(ctx, http.MethodGet, url, nil, "", true)
	if err != nil {
		return nil, 0, err
	}
	var articles []models.NewsArticle
	if err := decodeData(env, &articles); err != nil {
		return nil, 0, err
	}
	return articles, env.Pagination.TotalCount(), nil
}

// CreateNews submits a new article as multipart form data with an
// optional media attachment.
func (c *Client) CreateNews(ctx context.Context, payload NewsPayload, media *Upload) error {
	tags, err := json.Marshal(payload.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}
	fields := map[string]string{
		"title":    payload.Title,
		"content":  payload.Content,
		"category": payload.Category,
		"tags":     string(tags),
	}
	files := map[string][]Upload{}
	if payload.MediaType != "" {
		fields["mediaType"] = payload.MediaType
		if media != nil {
			files["media"] = []Upload{*media}
		}
	}
	_, err = c.doMultipart(ctx, http.MethodPost, c.baseURL+"/api/news", fields, files, true)
	return err
}

// ApproveNews marks an article approved.
func (c *Client) ApproveNews(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodPut, c.baseURL+"/api/news/admin/"+id+"/approve", nil, "", true)
	return err
}

// RejectNews marks an article rejected with the given reason, verbatim.
func (c *Client) RejectNews(ctx context.Context, id, reason string) error {
	_, err := c.doJSON(ctx, http.MethodPut, c.baseURL+"/api/news/admin/"+id+"/reject", rejectRequest{RejectionReason: reason}, true)
	return err
}
