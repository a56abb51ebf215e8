// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package views

import (
	"context"

	"github.com/vibedeck/vibedeck/internal/api"
	"github.com/vibedeck/vibedeck/internal/models"
)

// ServicesView is the booked-services screen. Server-side paging; the
// view's Page is zero-based while the backend counts pages from one.
type ServicesView struct {
	api     api.ServicesAPI
	notify  Notifier
	confirm Confirmer

	Services []models.Service
	Loading  bool
	Page     int
	PageSize int
	Total    int
}

// NewServicesView wires the services screen.
func NewServicesView(a api.ServicesAPI, pageSize int, notify Notifier, confirm Confirmer) *ServicesView {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &ServicesView{api: a, PageSize: pageSize, notify: notify, confirm: confirm}
}

// Load fetches the current page.
func (v *ServicesView) Load(ctx context.Context) error {
	v.Loading = true
	defer func() { v.Loading = false }()

	services, total, err := v.api.ListServices(ctx, v.Page+1, v.PageSize)
	if err != nil {
		notifyErr(v.notify, err, "Failed to fetch services")
		return err
	}
	v.Services = services
	v.Total = total
	return nil
}

// PageCount derives the page count from the backend total.
func (v *ServicesView) PageCount() int {
	if v.Total == 0 {
		return 0
	}
	return (v.Total + v.PageSize - 1) / v.PageSize
}

// SetPage moves to a zero-based page and re-fetches. Out-of-range
// requests clamp to the valid span.
func (v *ServicesView) SetPage(ctx context.Context, page int) error {
	if page < 0 {
		page = 0
	}
	if last := v.PageCount() - 1; last >= 0 && page > last {
		page = last
	}
	v.Page = page
	return v.Load(ctx)
}

// Delete asks for confirmation first; declining issues no request.
func (v *ServicesView) Delete(ctx context.Context, id string) error {
	if !v.confirm.Confirm("Are you sure you want to delete this service?") {
		return nil
	}
	if err := v.api.DeleteService(ctx, id); err != nil {
		notifyErr(v.notify, err, "Failed to delete service")
		return err
	}
	v.notify.Success("Service deleted successfully")
	return v.Load(ctx)
}
