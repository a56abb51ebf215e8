// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vibedeck/vibedeck/internal/models"
)

// ServicesAPI is the services resource surface. Read and delete only;
// services are created elsewhere.
type ServicesAPI interface {
	ListServices(ctx context.Context, page, limit int) ([]models.Service, int, error)
	DeleteService(ctx context.Context, id string) error
}

// ListServices fetches one page of services. page is 1-based. The second
// return value is the backend's total item count.
func (c *Client) ListServices(ctx context.Context, page, limit int) ([]models.Service, int, error) {
	url := fmt.Sprintf("%s/api/service?page=%d&limit=%d", c.mediaURL, page, limit)
	env, err := c.do(ctx, http.MethodGet, url, nil, "", true)
	if err != nil {
		return nil, 0, err
	}
	var services []models.Service
	if err := decodeData(env, &services); err != nil {
		return nil, 0, err
	}
	return services, env.Pagination.TotalCount(), nil
}

// DeleteService removes a service.
func (c *Client) DeleteService(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, c.mediaURL+"/api/service/"+id, nil, "", true)
	return err
}
