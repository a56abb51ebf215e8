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

var errDummy = errors.New("dummy failure")

// recorder captures toasts for assertions.
type recorder struct {
	successes []string
	failures  []string
}

func (r *recorder) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recorder) Error(msg string)   { r.failures = append(r.failures, msg) }

// stubConfirm answers every prompt the same way and records them.
type stubConfirm struct {
	answer  bool
	prompts []string
}

func (c *stubConfirm) Confirm(prompt string) bool {
	c.prompts = append(c.prompts, prompt)
	return c.answer
}

func newTestManager(t *testing.T) *session.Manager {
	t.Helper()
	m, err := session.NewManager(session.NewMemoryStore())
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}
	return m
}

// fakeEventsAPI counts calls and returns canned data.
type fakeEventsAPI struct {
	events  []models.Event
	listErr error

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
}

func (f *fakeEventsAPI) ListEvents(context.Context) ([]models.Event, error) {
	f.listCalls++
	return f.events, f.listErr
}

func (f *fakeEventsAPI) CreateEvent(context.Context, api.EventPayload, *api.Upload) error {
	f.createCalls++
	return nil
}

func (f *fakeEventsAPI) UpdateEvent(context.Context, string, api.EventPayload, *api.Upload) error {
	f.updateCalls++
	return nil
}

func (f *fakeEventsAPI) DeleteEvent(context.Context, string) error {
	f.deleteCalls++
	return nil
}

// fakeMixesAPI counts calls and returns canned data.
type fakeMixesAPI struct {
	mixes     []models.Mix
	createErr error

	listCalls   int
	createCalls int
	deleteCalls int
}

func (f *fakeMixesAPI) ListMixes(context.Context) ([]models.Mix, error) {
	f.listCalls++
	return f.mixes, nil
}

func (f *fakeMixesAPI) CreateMix(context.Context, api.MixPayload, *api.Upload) error {
	f.createCalls++
	return f.createErr
}

func (f *fakeMixesAPI) UpdateMix(context.Context, string, models.Mix) error { return nil }

func (f *fakeMixesAPI) DeleteMix(context.Context, string) error {
	f.deleteCalls++
	return nil
}

func (f *fakeMixesAPI) PlayMix(_ context.Context, id string) (*models.Mix, error) {
	for _, m := range f.mixes {
		if m.ID == id {
			m.PlayCount++
			return &m, nil
		}
	}
	return &models.Mix{ID: id, PlayCount: 1}, nil
}

func (f *fakeMixesAPI) DownloadMix(context.Context, string) ([]byte, error) {
	return []byte("media"), nil
}

// fakeNewsAPI records moderation calls.
type fakeNewsAPI struct {
	articles []models.NewsArticle
	total    int

	listCalls    int
	rejectCalls  int
	approveCalls int
	lastReason   string
	lastPage     int
	lastLimit    int
}

func (f *fakeNewsAPI) ListPendingNews(_ context.Context, page, limit int) ([]models.NewsArticle, int, error) {
	f.listCalls++
	f.lastPage = page
	f.lastLimit = limit
	return f.articles, f.total, nil
}

func (f *fakeNewsAPI) CreateNews(context.Context, api.NewsPayload, *api.Upload) error { return nil }

func (f *fakeNewsAPI) ApproveNews(context.Context, string) error {
	f.approveCalls++
	return nil
}

func (f *fakeNewsAPI) RejectNews(_ context.Context, _ string, reason string) error {
	f.rejectCalls++
	f.lastReason = reason
	return nil
}

// fakeServicesAPI records paging arguments.
type fakeServicesAPI struct {
	services []models.Service
	total    int

	listCalls   int
	deleteCalls int
	lastPage    int
	lastLimit   int
}

func (f *fakeServicesAPI) ListServices(_ context.Context, page, limit int) ([]models.Service, int, error) {
	f.listCalls++
	f.lastPage = page
	f.lastLimit = limit
	return f.services, f.total, nil
}

func (f *fakeServicesAPI) DeleteService(context.Context, string) error {
	f.deleteCalls++
	return nil
}

// fakeTrendingAPI returns canned entries.
type fakeTrendingAPI struct {
	entries []models.TrendingEntry

	lastMetricsID string
	lastMetrics   models.TrendingMetrics
}

func (f *fakeTrendingAPI) ListTrending(context.Context) ([]models.TrendingEntry, error) {
	return f.entries, nil
}

func (f *fakeTrendingAPI) CreateTrending(context.Context, api.TrendingPayload) error { return nil }

func (f *fakeTrendingAPI) UpdateTrendingMetrics(_ context.Context, id string, m models.TrendingMetrics) error {
	f.lastMetricsID = id
	f.lastMetrics = m
	return nil
}

func (f *fakeTrendingAPI) DeleteTrending(context.Context, string) error { return nil }

// fakeAuthAPI scripts the two login endpoints separately.
type fakeAuthAPI struct {
	adminResult *api.LoginResult
	adminErr    error
	userResult  *api.LoginResult
	userErr     error

	adminCalls    int
	userCalls     int
	registerCalls int
}

func (f *fakeAuthAPI) AdminLogin(context.Context, string, string) (*api.LoginResult, error) {
	f.adminCalls++
	return f.adminResult, f.adminErr
}

func (f *fakeAuthAPI) UserLogin(context.Context, string, string) (*api.LoginResult, error) {
	f.userCalls++
	return f.userResult, f.userErr
}

func (f *fakeAuthAPI) Register(context.Context, api.RegisterRequest) error {
	f.registerCalls++
	return nil
}

func (f *fakeAuthAPI) AdminDetails(context.Context, string) (*models.User, error) {
	return &models.User{ID: "adm-1", Username: "ops", Email: "ops@vibedeck.io"}, nil
}

// fakeStatsAPI scripts the two snapshots separately.
type fakeStatsAPI struct {
	eventStats *models.EventStats
	eventErr   error
	mixStats   *models.MixStats
	mixErr     error
}

func (f *fakeStatsAPI) EventStats(context.Context) (*models.EventStats, error) {
	return f.eventStats, f.eventErr
}

func (f *fakeStatsAPI) MixStats(context.Context) (*models.MixStats, error) {
	return f.mixStats, f.mixErr
}

func (f *fakeStatsAPI) ChatHistory(context.Context) ([]models.ChatMessage, error) {
	return nil, nil
}
