// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

// Package mapview places user and admin accounts on the map. Accounts
// sharing exact coordinates are fanned out with a small cumulative
// offset so markers never stack invisibly.
package mapview

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vibedeck/vibedeck/internal/api"
	"github.com/vibedeck/vibedeck/internal/logging"
	"github.com/vibedeck/vibedeck/internal/models"
)

// Kind tags a marker with the directory it came from.
type Kind string

const (
	KindUser  Kind = "user"
	KindAdmin Kind = "admin"
)

// markerOffset is the per-collision nudge applied to both axes. The
// k-th occupant of a coordinate bucket sits at +k*markerOffset.
const markerOffset = 0.0001

// Marker is a placed account. Lat/Lon include any collision offset;
// the embedded account keeps its original coordinates for the popup.
type Marker struct {
	Kind    Kind
	Lat     float64
	Lon     float64
	Account models.User
}

// BuildMarkers places both directories. Accounts missing either
// coordinate are skipped. Placement is deterministic and order
// dependent: within a coordinate bucket the first account seen gets no
// offset, each later one gets one more increment. Buckets are keyed by
// kind and the exact coordinate pair, so a user and an admin at the
// same spot do not displace each other.
func BuildMarkers(users, admins []models.User) []Marker {
	counts := make(map[string]int)
	out := make([]Marker, 0, len(users)+len(admins))
	out = placeAll(out, counts, KindUser, users)
	out = placeAll(out, counts, KindAdmin, admins)
	return out
}

func placeAll(out []Marker, counts map[string]int, kind Kind, accounts []models.User) []Marker {
	for i := range accounts {
		a := accounts[i]
		if !a.HasCoordinates() {
			continue
		}
		lat := float64(*a.Latitude)
		lon := float64(*a.Longitude)
		key := fmt.Sprintf("%s_%v,%v", kind, lat, lon)
		k := counts[key]
		counts[key]++
		out = append(out, Marker{
			Kind:    kind,
			Lat:     lat + float64(k)*markerOffset,
			Lon:     lon + float64(k)*markerOffset,
			Account: a,
		})
	}
	return out
}

// View loads both directories and tracks which marker's popup is open.
type View struct {
	dir api.DirectoryAPI

	Markers  []Marker
	Selected *Marker
	Loading  bool
}

// NewView returns a map view backed by the directory endpoints.
func NewView(dir api.DirectoryAPI) *View {
	return &View{dir: dir}
}

// Load fetches both directories concurrently and rebuilds the marker
// set. A failed fetch keeps whatever markers were already placed.
func (v *View) Load(ctx context.Context) error {
	v.Loading = true
	defer func() { v.Loading = false }()

	var users, admins []models.User
	var userErr, adminErr error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		users, userErr = v.dir.ListUsers(ctx)
	}()
	go func() {
		defer wg.Done()
		admins, adminErr = v.dir.ListAdmins(ctx)
	}()
	wg.Wait()

	if err := errors.Join(userErr, adminErr); err != nil {
		return err
	}
	v.Markers = BuildMarkers(users, admins)
	v.Selected = nil
	logging.Debug().Int("markers", len(v.Markers)).Msg("map markers rebuilt")
	return nil
}

// Select opens the popup for the marker at index i. Out-of-range
// indexes close any open popup.
func (v *View) Select(i int) {
	if i < 0 || i >= len(v.Markers) {
		v.Selected = nil
		return
	}
	v.Selected = &v.Markers[i]
}

// ClosePopup dismisses the open popup, if any.
func (v *View) ClosePopup() {
	v.Selected = nil
}
