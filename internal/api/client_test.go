// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vibedeck/vibedeck/internal/apierr"
	"github.com/vibedeck/vibedeck/internal/models"
)

func TestBearerValue(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"bare token", "abc123", "Bearer abc123"},
		{"already prefixed", "Bearer abc123", "Bearer abc123"},
		{"empty", "", "Bearer "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkStringEqual(t, "bearerValue", bearerValue(tt.token), tt.want)
		})
	}
}

func TestListEventsAttachesBearer(t *testing.T) {
	var gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Write([]byte(`{"success": true, "data": [{"id": "e1", "name": "Block Party", "status": "published"}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, "tok-42")
	events, err := client.ListEvents(context.Background())
	assertNoError(t, err)

	checkStringEqual(t, "path", gotPath, "/api/event")
	checkStringEqual(t, "authorization", gotAuth, "Bearer tok-42")
	checkIntEqual(t, "events", len(events), 1)
	checkStringEqual(t, "event name", events[0].Name, "Block Party")
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{"structured body", http.StatusBadRequest, `{"success": false, "message": "Event name already taken"}`, "Event name already taken"},
		{"unparseable body", http.StatusBadGateway, "<html>Bad Gateway</html>", ""},
		{"empty body", http.StatusInternalServerError, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(t, server, "tok")
			_, err := client.ListEvents(context.Background())
			if err == nil {
				t.Fatal("expected an error")
			}

			var tagged *apierr.Error
			if !errors.As(err, &tagged) {
				t.Fatalf("expected a tagged error, got %T", err)
			}
			if tagged.Kind != apierr.KindHTTP {
				t.Errorf("kind = %v, want http", tagged.Kind)
			}
			checkIntEqual(t, "status", tagged.StatusCode, tt.status)
			checkStringEqual(t, "message", tagged.Message, tt.wantMessage)
		})
	}
}

func TestNetworkErrorMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse all connections

	client := newTestClient(t, server, "tok")
	_, err := client.ListEvents(context.Background())
	if !apierr.IsKind(err, apierr.KindNetwork) {
		t.Errorf("connection refusal should map to a network-kind error, got %v", err)
	}
}

func TestAdminLoginDecodesTokenAndIdentity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		checkStringEqual(t, "path", r.URL.Path, "/api/admin/login")
		checkStringEqual(t, "method", r.Method, http.MethodPost)
		checkStringEqual(t, "content type", r.Header.Get("Content-Type"), "application/json")
		w.Write([]byte(`{"success": true, "token": "jwt-abc", "data": {"id": "a1", "email": "admin@vibedeck.io", "username": "deck"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, "")
	result, err := client.AdminLogin(context.Background(), "admin@vibedeck.io", "secret")
	assertNoError(t, err)

	checkStringEqual(t, "token", result.Token, "jwt-abc")
	checkStringEqual(t, "identity email", result.Identity.Email, "admin@vibedeck.io")
}

func TestCreateMixMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("body should be multipart: %v", err)
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		checkStringEqual(t, "title", r.FormValue("title"), "Test Mix")
		checkStringEqual(t, "fileType", r.FormValue("fileType"), "audio")
		checkStringEqual(t, "duration", r.FormValue("duration"), "180")
		checkStringEqual(t, "isPublic", r.FormValue("isPublic"), "true")

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("expected a file part: %v", err)
		} else {
			file.Close()
			checkStringEqual(t, "filename", header.Filename, "mix.mp3")
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, "tok")
	err := client.CreateMix(context.Background(),
		MixPayload{Title: "Test Mix", FileType: "audio", Duration: "180", IsPublic: true},
		&Upload{Filename: "mix.mp3", Content: []byte("ID3...")})
	assertNoError(t, err)
}

func TestCreateEventEncodesCollections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("body should be multipart: %v", err)
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		checkStringEqual(t, "eventHosts", r.FormValue("eventHosts"), `[{"name":"DJ Rei","role":"Headliner"}]`)
		checkStringEqual(t, "tags", r.FormValue("tags"), `["live","nairobi"]`)
		checkStringEqual(t, "currency", r.FormValue("currency"), "KES")
		if _, _, err := r.FormFile("banner"); err == nil {
			t.Error("no banner selected, no banner part expected")
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, "tok")
	err := client.CreateEvent(context.Background(), EventPayload{
		Name:       "Block Party",
		Currency:   "KES",
		IsPublic:   true,
		EventHosts: []models.EventHost{{Name: "DJ Rei", Role: "Headliner"}},
		Tags:       []string{"live", "nairobi"},
	}, nil)
	assertNoError(t, err)
}

func TestCreateArchiveRepeatsMediaParts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("body should be multipart: %v", err)
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		checkIntEqual(t, "video parts", len(r.MultipartForm.File["videos"]), 2)
		checkIntEqual(t, "image parts", len(r.MultipartForm.File["images"]), 1)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, "tok")
	err := client.CreateArchive(context.Background(),
		ArchivePayload{EventName: "NYE 2025", IsPublic: true},
		[]Upload{{Filename: "a.mp4"}, {Filename: "b.mp4"}},
		[]Upload{{Filename: "cover.jpg"}})
	assertNoError(t, err)
}

func TestListServicesPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		checkStringEqual(t, "page", r.URL.Query().Get("page"), "3")
		checkStringEqual(t, "limit", r.URL.Query().Get("limit"), "10")
		w.Write([]byte(`{"success": true, "data": [{"id": "s1", "name": "Sound Hire"}], "pagination": {"page": 3, "limit": 10, "totalItems": 27}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, "tok")
	services, total, err := client.ListServices(context.Background(), 3, 10)
	assertNoError(t, err)
	checkIntEqual(t, "services", len(services), 1)
	checkIntEqual(t, "total", total, 27)
}

func TestListPendingNewsPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		checkStringEqual(t, "path", r.URL.Path, "/api/news/pending")
		checkStringEqual(t, "page", r.URL.Query().Get("page"), "1")
		w.Write([]byte(`{"success": true, "data": [{"id": "n1", "title": "Headline", "status": "pending"}], "pagination": {"page": 1, "limit": 10, "total": 4}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, "tok")
	articles, total, err := client.ListPendingNews(context.Background(), 1, 10)
	assertNoError(t, err)
	checkIntEqual(t, "articles", len(articles), 1)
	checkIntEqual(t, "total", total, 4)
}

func TestCreateNewsOmitsMediaWithoutType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("body should be multipart: %v", err)
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		checkStringEqual(t, "tags", r.FormValue("tags"), `["music","events"]`)
		if r.FormValue("mediaType") != "" {
			t.Error("mediaType must be absent when no media is attached")
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, "tok")
	err := client.CreateNews(context.Background(), NewsPayload{
		Title:    "Headline",
		Content:  "Body text",
		Category: "Entertainment",
		Tags:     []string{"music", "events"},
	}, nil)
	assertNoError(t, err)
}

func TestUpdateTrendingMetricsBody(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		checkStringEqual(t, "path", r.URL.Path, "/api/trending/metrics/t1")
		checkStringEqual(t, "method", r.Method, http.MethodPut)
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, "tok")
	err := client.UpdateTrendingMetrics(context.Background(), "t1", models.TrendingMetrics{ViewCount: 12, EngagementCount: 5})
	assertNoError(t, err)

	// Metrics updates carry only the two counters.
	checkStringEqual(t, "body", gotBody, `{"viewCount":12,"engagementCount":5}`)
}

func TestDownloadMixReturnsRawBytes(t *testing.T) {
	payload := []byte{0x49, 0x44, 0x33, 0x04}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		checkStringEqual(t, "path", r.URL.Path, "/api/mix/m1/download-file")
		w.Write(payload)
	}))
	defer server.Close()

	client := newTestClient(t, server, "tok")
	data, err := client.DownloadMix(context.Background(), "m1")
	assertNoError(t, err)
	if string(data) != string(payload) {
		t.Errorf("downloaded bytes differ: got %v", data)
	}
}

func TestPlayMixDecodesRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		checkStringEqual(t, "path", r.URL.Path, "/api/mix/m1")
		w.Write([]byte(`{"success": true, "data": {"id": "m1", "title": "Friday Mix", "playCount": 8}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, "tok")
	mix, err := client.PlayMix(context.Background(), "m1")
	assertNoError(t, err)
	checkIntEqual(t, "playCount", mix.PlayCount, 8)
}
