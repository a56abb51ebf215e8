// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package views

import (
	"context"
	"errors"
	"testing"

	"github.com/vibedeck/vibedeck/internal/api"
	"github.com/vibedeck/vibedeck/internal/models"
	"github.com/vibedeck/vibedeck/internal/session"
)

type fakeArchiveAPI struct {
	archives []models.Archive

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
	lastVideos  int
	lastImages  int
	lastUpdated models.Archive
}

func (f *fakeArchiveAPI) ListArchives(context.Context) ([]models.Archive, error) {
	f.listCalls++
	return f.archives, nil
}

func (f *fakeArchiveAPI) CreateArchive(_ context.Context, _ api.ArchivePayload, videos, images []api.Upload) error {
	f.createCalls++
	f.lastVideos = len(videos)
	f.lastImages = len(images)
	return nil
}

func (f *fakeArchiveAPI) UpdateArchive(_ context.Context, _ string, a models.Archive) error {
	f.updateCalls++
	f.lastUpdated = a
	return nil
}

func (f *fakeArchiveAPI) DeleteArchive(context.Context, string) error {
	f.deleteCalls++
	return nil
}

func TestArchiveCreateStagesMedia(t *testing.T) {
	f := &fakeArchiveAPI{}
	v := NewArchiveView(f, &recorder{}, &stubConfirm{})

	v.OpenCreate()
	v.Dialog.Form.EventName = "NYE Warehouse"
	v.Dialog.Videos = []api.Upload{{Filename: "a.mp4"}, {Filename: "b.mp4"}}
	v.Dialog.Images = []api.Upload{{Filename: "c.jpg"}}

	if err := v.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if f.createCalls != 1 || f.lastVideos != 2 || f.lastImages != 1 {
		t.Fatalf("create=%d videos=%d images=%d", f.createCalls, f.lastVideos, f.lastImages)
	}
	if v.Dialog != nil {
		t.Fatal("dialog open after successful create")
	}
	if f.listCalls != 1 {
		t.Fatalf("expected one re-fetch, got %d", f.listCalls)
	}
}

func TestArchiveEditLeavesGalleriesAlone(t *testing.T) {
	f := &fakeArchiveAPI{}
	v := NewArchiveView(f, &recorder{}, &stubConfirm{})

	v.OpenEdit(models.Archive{
		ID:        "ar-1",
		EventName: "Old Name",
		Videos:    []string{"v1.mp4"},
		Images:    []string{"i1.jpg"},
	})
	v.Dialog.Form.EventName = "New Name"

	if err := v.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if f.updateCalls != 1 {
		t.Fatalf("update calls = %d", f.updateCalls)
	}
	if f.lastUpdated.EventName != "New Name" {
		t.Fatalf("name %q", f.lastUpdated.EventName)
	}
	if len(f.lastUpdated.Videos) != 1 || len(f.lastUpdated.Images) != 1 {
		t.Fatalf("galleries touched: %+v", f.lastUpdated)
	}
}

func TestArchiveDeleteDeclinedIssuesNoRequest(t *testing.T) {
	f := &fakeArchiveAPI{}
	v := NewArchiveView(f, &recorder{}, &stubConfirm{answer: false})

	if err := v.Delete(context.Background(), "ar-1"); err != nil {
		t.Fatalf("declined delete errored: %v", err)
	}
	if f.deleteCalls != 0 || f.listCalls != 0 {
		t.Fatalf("requests issued after decline: delete=%d list=%d", f.deleteCalls, f.listCalls)
	}
}

func TestAccountLoadDecodesClaims(t *testing.T) {
	sessions := newTestManager(t)
	// header/payload/signature of an unverified HS256 token with sub,
	// iat and exp claims; the decode never checks the signature.
	token := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJzdWIiOiJhZG0tMSIsImlhdCI6MTcwMDAwMDAwMCwiZXhwIjo0MTAyNDQ0ODAwfQ." +
		"invalid-signature"
	if _, err := sessions.Establish(token, models.Identity{ID: "adm-1", IsAdmin: true}, session.LoginTypeAdmin); err != nil {
		t.Fatalf("establish: %v", err)
	}

	v := NewAccountView(&fakeAuthAPI{}, sessions, &recorder{})
	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if v.Account == nil || v.Account.ID != "adm-1" {
		t.Fatalf("account %+v", v.Account)
	}
	if v.Claims == nil || v.Claims.Subject != "adm-1" {
		t.Fatalf("claims %+v", v.Claims)
	}
}

func TestAccountLoadToleratesOpaqueToken(t *testing.T) {
	sessions := newTestManager(t)
	if _, err := sessions.Establish("not-a-jwt", models.Identity{ID: "adm-1"}, session.LoginTypeAdmin); err != nil {
		t.Fatalf("establish: %v", err)
	}

	v := NewAccountView(&fakeAuthAPI{}, sessions, &recorder{})
	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if v.Claims != nil {
		t.Fatal("claims decoded from an opaque token")
	}
}

func TestAccountLoadRequiresSession(t *testing.T) {
	v := NewAccountView(&fakeAuthAPI{}, newTestManager(t), &recorder{})
	if err := v.Load(context.Background()); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestArchiveFind(t *testing.T) {
	f := &fakeArchiveAPI{archives: []models.Archive{
		{ID: "ar-1", EventName: "Summer Closing"},
		{ID: "ar-2", EventName: "NYE Special"},
	}}
	v := NewArchiveView(f, &recorder{}, &stubConfirm{})
	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	a, ok := v.Find("ar-2")
	if !ok || a.EventName != "NYE Special" {
		t.Fatalf("find ar-2 = %+v, %v", a, ok)
	}
	if _, ok := v.Find("missing"); ok {
		t.Fatal("found a row for an unknown id")
	}
}
