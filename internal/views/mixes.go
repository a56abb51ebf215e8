// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package views

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/vibedeck/vibedeck/internal/api"
	"github.com/vibedeck/vibedeck/internal/models"
)

// InferMixFileType tags a staged upload by its extension. .mp4 keeps its
// own tag so the file-type tabs can separate it from other video.
func InferMixFileType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp4":
		return models.MixTypeMP4
	case ".mov", ".avi":
		return models.MixTypeVideo
	default:
		return models.MixTypeAudio
	}
}

// MixDialog is the create/edit form state. Editing is nil while
// creating; edits PUT the full mix record, so the dialog carries a copy
// of the row rather than a payload.
type MixDialog struct {
	Editing      *models.Mix
	Form         api.MixPayload
	SelectedFile *api.Upload
}

// MixesView is the mixes screen: full-collection working set with a
// client-side file-type tab filter.
type MixesView struct {
	api     api.MixesAPI
	notify  Notifier
	confirm Confirmer

	Mixes      []models.Mix
	Loading    bool
	TypeFilter string
	Dialog     *MixDialog
}

// NewMixesView wires the mixes screen.
func NewMixesView(a api.MixesAPI, notify Notifier, confirm Confirmer) *MixesView {
	return &MixesView{api: a, notify: notify, confirm: confirm, TypeFilter: FilterAll}
}

// Load re-fetches the full mix collection.
func (v *MixesView) Load(ctx context.Context) error {
	v.Loading = true
	defer func() { v.Loading = false }()

	mixes, err := v.api.ListMixes(ctx)
	if err != nil {
		notifyErr(v.notify, err, "Failed to fetch mixes")
		return err
	}
	v.Mixes = mixes
	return nil
}

// Filtered applies the file-type tab to the working set.
func (v *MixesView) Filtered() []models.Mix {
	if v.TypeFilter == FilterAll || v.TypeFilter == "" {
		return v.Mixes
	}
	out := make([]models.Mix, 0, len(v.Mixes))
	for _, m := range v.Mixes {
		if m.FileType == v.TypeFilter {
			out = append(out, m)
		}
	}
	return out
}

// Find returns the working-set mix with the given id.
func (v *MixesView) Find(id string) (models.Mix, bool) {
	for _, m := range v.Mixes {
		if m.ID == id {
			return m, true
		}
	}
	return models.Mix{}, false
}

// OpenCreate opens the dialog with the form defaults and no staged
// file. New mixes start audio and public; staging a file re-infers the
// type.
func (v *MixesView) OpenCreate() {
	v.Dialog = &MixDialog{Form: api.MixPayload{FileType: models.MixTypeAudio, IsPublic: true}}
}

// OpenEdit seeds the dialog from the clicked row's client-side copy.
func (v *MixesView) OpenEdit(m models.Mix) {
	v.Dialog = &MixDialog{
		Editing: &m,
		Form: api.MixPayload{
			Title:       m.Title,
			Description: m.Description,
			FileType:    m.FileType,
			Duration:    m.Duration.String(),
			IsPublic:    m.IsPublic,
		},
	}
}

// SetFile stages an upload and re-infers the form's file type from its
// name.
func (v *MixesView) SetFile(u *api.Upload) {
	if v.Dialog == nil {
		return
	}
	v.Dialog.SelectedFile = u
	if u != nil {
		v.Dialog.Form.FileType = InferMixFileType(u.Filename)
	}
}

// CloseDialog discards all dialog state, staged file included.
func (v *MixesView) CloseDialog() {
	v.Dialog = nil
}

// Submit sends the dialog. Creation goes multipart with the staged
// file; edits PUT the full record with the form's scalar fields folded
// in. On success the dialog closes, the staged file is dropped, and the
// list is re-fetched once.
func (v *MixesView) Submit(ctx context.Context) error {
	if v.Dialog == nil {
		return nil
	}
	if v.Dialog.Editing == nil {
		if err := v.api.CreateMix(ctx, v.Dialog.Form, v.Dialog.SelectedFile); err != nil {
			notifyErr(v.notify, err, "Failed to save mix")
			return err
		}
		v.notify.Success("Mix created successfully")
	} else {
		updated := *v.Dialog.Editing
		updated.Title = v.Dialog.Form.Title
		updated.Description = v.Dialog.Form.Description
		updated.FileType = v.Dialog.Form.FileType
		updated.IsPublic = v.Dialog.Form.IsPublic
		if err := v.api.UpdateMix(ctx, updated.ID, updated); err != nil {
			notifyErr(v.notify, err, "Failed to save mix")
			return err
		}
		v.notify.Success("Mix updated successfully")
	}
	v.CloseDialog()
	return v.Load(ctx)
}

// Delete asks for confirmation first; declining issues no request.
func (v *MixesView) Delete(ctx context.Context, id string) error {
	if !v.confirm.Confirm("Are you sure you want to delete this mix?") {
		return nil
	}
	if err := v.api.DeleteMix(ctx, id); err != nil {
		notifyErr(v.notify, err, "Failed to delete mix")
		return err
	}
	v.notify.Success("Mix deleted successfully")
	return v.Load(ctx)
}

// Play fetches the single mix record, which bumps the server-side play
// count, and folds the refreshed counters into the working set.
func (v *MixesView) Play(ctx context.Context, id string) (*models.Mix, error) {
	mix, err := v.api.PlayMix(ctx, id)
	if err != nil {
		notifyErr(v.notify, err, "Failed to play mix")
		return nil, err
	}
	for i := range v.Mixes {
		if v.Mixes[i].ID == mix.ID {
			v.Mixes[i] = *mix
			break
		}
	}
	return mix, nil
}

// Download fetches the raw media file bytes.
func (v *MixesView) Download(ctx context.Context, id string) ([]byte, error) {
	data, err := v.api.DownloadMix(ctx, id)
	if err != nil {
		notifyErr(v.notify, err, "Failed to download mix")
		return nil, err
	}
	return data, nil
}
