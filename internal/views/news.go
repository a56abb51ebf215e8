// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package views

import (
	"context"

	"github.com/vibedeck/vibedeck/internal/api"
	"github.com/vibedeck/vibedeck/internal/models"
	"github.com/vibedeck/vibedeck/internal/validation"
)

// rejectionForm carries the moderation reason. The minimum length is
// enforced here, before any request is built.
type rejectionForm struct {
	Reason string `validate:"required,min=10"`
}

// NewsDialog is the article submission form state.
type NewsDialog struct {
	Form  api.NewsPayload
	Media *api.Upload
}

// NewsView is the news moderation screen: a server-paged list of
// pending articles with approve/reject actions and a submission form.
type NewsView struct {
	api     api.NewsAPI
	notify  Notifier
	confirm Confirmer

	Articles []models.NewsArticle
	Loading  bool
	Page     int
	PageSize int
	Total    int
	Dialog   *NewsDialog
}

// NewNewsView wires the moderation screen.
func NewNewsView(a api.NewsAPI, pageSize int, notify Notifier, confirm Confirmer) *NewsView {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &NewsView{api: a, PageSize: pageSize, notify: notify, confirm: confirm}
}

// Load fetches the current page of pending articles.
func (v *NewsView) Load(ctx context.Context) error {
	v.Loading = true
	defer func() { v.Loading = false }()

	articles, total, err := v.api.ListPendingNews(ctx, v.Page+1, v.PageSize)
	if err != nil {
		notifyErr(v.notify, err, "Failed to fetch pending news")
		return err
	}
	v.Articles = articles
	v.Total = total
	return nil
}

// PageCount derives the page count from the backend total.
func (v *NewsView) PageCount() int {
	if v.Total == 0 {
		return 0
	}
	return (v.Total + v.PageSize - 1) / v.PageSize
}

// SetPage moves to a zero-based page and re-fetches, clamped to the
// valid span.
func (v *NewsView) SetPage(ctx context.Context, page int) error {
	if page < 0 {
		page = 0
	}
	if last := v.PageCount() - 1; last >= 0 && page > last {
		page = last
	}
	v.Page = page
	return v.Load(ctx)
}

// OpenCreate opens the submission form with blank defaults.
func (v *NewsView) OpenCreate() {
	v.Dialog = &NewsDialog{Form: api.NewsPayload{Tags: []string{}}}
}

// CloseDialog discards the form state, staged media included.
func (v *NewsView) CloseDialog() {
	v.Dialog = nil
}

// Submit sends the article. On success the form closes and the pending
// list is re-fetched once.
func (v *NewsView) Submit(ctx context.Context) error {
	if v.Dialog == nil {
		return nil
	}
	if err := v.api.CreateNews(ctx, v.Dialog.Form, v.Dialog.Media); err != nil {
		notifyErr(v.notify, err, "Failed to submit article")
		return err
	}
	v.notify.Success("Article submitted successfully")
	v.CloseDialog()
	return v.Load(ctx)
}

// Approve marks an article approved and re-fetches the page.
func (v *NewsView) Approve(ctx context.Context, id string) error {
	if err := v.api.ApproveNews(ctx, id); err != nil {
		notifyErr(v.notify, err, "Failed to approve article")
		return err
	}
	v.notify.Success("Article approved")
	return v.Load(ctx)
}

// Reject sends a rejection with its reason. Reasons shorter than ten
// characters are refused locally with no request issued; anything
// longer travels verbatim.
func (v *NewsView) Reject(ctx context.Context, id, reason string) error {
	form := rejectionForm{Reason: reason}
	if ferr := validation.ValidateStruct(form); ferr != nil {
		v.notify.Error("Rejection reason must be at least 10 characters")
		return ferr.ToAPIErr()
	}

	if err := v.api.RejectNews(ctx, id, reason); err != nil {
		notifyErr(v.notify, err, "Failed to reject article")
		return err
	}
	v.notify.Success("Article rejected")
	return v.Load(ctx)
}
