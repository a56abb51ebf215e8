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

// DirectoryAPI lists the user and admin collections for the map view.
// Both endpoints answer without authentication on the deployed backend.
type DirectoryAPI interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListAdmins(ctx context.Context) ([]models.User, error)
}

// ListUsers fetches all registered users.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	return c.listDirectory(ctx, c.baseURL+"/api/users")
}

// ListAdmins fetches all admin accounts.
func (c *Client) ListAdmins(ctx context.Context) ([]models.User, error) {
	return c.listDirectory(ctx, c.baseURL+"/api/admin")
}

func (c *Client) listDirectory(ctx context.Context, url string) ([]models.User, error) {
	env, err := c.do(ctx, http.MethodGet, url, nil, "", false)
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := decodeData(env, &users); err != nil {
		return nil, err
	}
	return users, nil
}
