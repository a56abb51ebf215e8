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

// ArchiveDialog is the create/edit form state. Edits PUT the full
// record and never touch the media galleries, so the staged uploads
// only matter while creating.
type ArchiveDialog struct {
	Editing *models.Archive
	Form    api.ArchivePayload
	Videos  []api.Upload
	Images  []api.Upload
}

// ArchiveView is the past-events screen.
type ArchiveView struct {
	api     api.ArchiveAPI
	notify  Notifier
	confirm Confirmer

	Archives []models.Archive
	Loading  bool
	Dialog   *ArchiveDialog
}

// NewArchiveView wires the archive screen.
func NewArchiveView(a api.ArchiveAPI, notify Notifier, confirm Confirmer) *ArchiveView {
	return &ArchiveView{api: a, notify: notify, confirm: confirm}
}

// Load re-fetches the full archive collection.
func (v *ArchiveView) Load(ctx context.Context) error {
	v.Loading = true
	defer func() { v.Loading = false }()

	archives, err := v.api.ListArchives(ctx)
	if err != nil {
		notifyErr(v.notify, err, "Failed to fetch archives")
		return err
	}
	v.Archives = archives
	return nil
}

// Find returns the working-set archive with the given id.
func (v *ArchiveView) Find(id string) (models.Archive, bool) {
	for _, a := range v.Archives {
		if a.ID == id {
			return a, true
		}
	}
	return models.Archive{}, false
}

// OpenCreate opens the dialog with blank defaults.
func (v *ArchiveView) OpenCreate() {
	v.Dialog = &ArchiveDialog{}
}

// OpenEdit seeds the dialog from the clicked row's client-side copy.
func (v *ArchiveView) OpenEdit(a models.Archive) {
	v.Dialog = &ArchiveDialog{
		Editing: &a,
		Form: api.ArchivePayload{
			EventName:   a.EventName,
			EventDate:   a.EventDate,
			Venue:       a.Venue,
			Location:    a.Location,
			Description: a.Description,
			Setlist:     a.Setlist,
			Genre:       a.Genre,
			Attendance:  a.Attendance.String(),
			IsPublic:    a.IsPublic,
		},
	}
}

// CloseDialog discards all dialog state, staged media included.
func (v *ArchiveView) CloseDialog() {
	v.Dialog = nil
}

// Submit sends the dialog. On success the dialog closes and the list is
// re-fetched once.
func (v *ArchiveView) Submit(ctx context.Context) error {
	if v.Dialog == nil {
		return nil
	}
	if v.Dialog.Editing == nil {
		if err := v.api.CreateArchive(ctx, v.Dialog.Form, v.Dialog.Videos, v.Dialog.Images); err != nil {
			notifyErr(v.notify, err, "Failed to save archive")
			return err
		}
		v.notify.Success("Archive created successfully")
	} else {
		updated := *v.Dialog.Editing
		updated.EventName = v.Dialog.Form.EventName
		updated.EventDate = v.Dialog.Form.EventDate
		updated.Venue = v.Dialog.Form.Venue
		updated.Location = v.Dialog.Form.Location
		updated.Description = v.Dialog.Form.Description
		updated.Setlist = v.Dialog.Form.Setlist
		updated.Genre = v.Dialog.Form.Genre
		updated.IsPublic = v.Dialog.Form.IsPublic
		if err := v.api.UpdateArchive(ctx, updated.ID, updated); err != nil {
			notifyErr(v.notify, err, "Failed to save archive")
			return err
		}
		v.notify.Success("Archive updated successfully")
	}
	v.CloseDialog()
	return v.Load(ctx)
}

// Delete asks for confirmation first; declining issues no request.
func (v *ArchiveView) Delete(ctx context.Context, id string) error {
	if !v.confirm.Confirm("Are you sure you want to delete this archive?") {
		return nil
	}
	if err := v.api.DeleteArchive(ctx, id); err != nil {
		notifyErr(v.notify, err, "Failed to delete archive")
		return err
	}
	v.notify.Success("Archive deleted successfully")
	return v.Load(ctx)
}
