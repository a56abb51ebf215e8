// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/vibedeck/vibedeck/internal/apierr"
	"github.com/vibedeck/vibedeck/internal/logging"
	"github.com/vibedeck/vibedeck/internal/models"
)

// Upload is one file attachment for a multipart request.
type Upload struct {
	Filename string
	Content  []byte
}

// bearerValue normalizes a stored token into an Authorization header
// value, prepending the scheme only when it is absent. Some stored tokens
// already carry the prefix.
func bearerValue(token string) string {
	if strings.HasPrefix(token, "Bearer ") {
		return token
	}
	return "Bearer " + token
}

// do issues one request and decodes the response envelope. A non-2xx
// status becomes an HTTP-kind tagged error carrying the backend's message
// field when the body parsed. Transport failures become network-kind
// errors. Nothing is retried.
func (c *Client) do(ctx context.Context, method, rawURL string, body io.Reader, contentType string, authed bool) (*models.Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authed {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", bearerValue(token))
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Debug().Str("method", method).Str("url", rawURL).Err(err).Msg("request failed")
		return nil, apierr.Network(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.Network(err)
	}

	env := &models.Envelope{}
	// A body that does not parse as the envelope is tolerated; the
	// status code alone decides success.
	_ = json.Unmarshal(data, env)

	logging.Debug().
		Str("method", method).
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Dur("duration_ms", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return env, apierr.HTTPStatus(resp.StatusCode, env.Message)
	}
	return env, nil
}

// doJSON marshals payload and issues a JSON request. A nil payload sends
// no body.
func (c *Client) doJSON(ctx context.Context, method, rawURL string, payload any, authed bool) (*models.Envelope, error) {
	var body io.Reader
	contentType := ""
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.do(ctx, method, rawURL, body, contentType, authed)
}

// doMultipart builds a multipart form and issues the request. files maps
// a part name to its attachments; repeated attachments produce repeated
// parts under the same name.
func (c *Client) doMultipart(ctx context.Context, method, rawURL string, fields map[string]string, files map[string][]Upload, authed bool) (*models.Envelope, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("write form field %s: %w", name, err)
		}
	}
	for name, uploads := range files {
		for _, upload := range uploads {
			part, err := writer.CreateFormFile(name, upload.Filename)
			if err != nil {
				return nil, fmt.Errorf("create form file %s: %w", name, err)
			}
			if _, err := part.Write(upload.Content); err != nil {
				return nil, fmt.Errorf("write form file %s: %w", name, err)
			}
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	return c.do(ctx, method, rawURL, &buf, writer.FormDataContentType(), authed)
}

// decodeData unmarshals the envelope's data payload into out. An absent
// payload leaves out untouched.
func decodeData(env *models.Envelope, out any) error {
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}
