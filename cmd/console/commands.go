// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/vibedeck/vibedeck/internal/api"
	"github.com/vibedeck/vibedeck/internal/charts"
	"github.com/vibedeck/vibedeck/internal/chat"
	"github.com/vibedeck/vibedeck/internal/mapview"
	"github.com/vibedeck/vibedeck/internal/models"
	"github.com/vibedeck/vibedeck/internal/session"
	"github.com/vibedeck/vibedeck/internal/views"
)

// loadUpload stages a local file for a multipart submit.
func loadUpload(path string) (*api.Upload, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return &api.Upload{Filename: filepath.Base(path), Content: data}, nil
}

// splitCSV splits a comma-separated flag value, dropping blanks.
func splitCSV(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func (c *console) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	view := views.NewLoginView(c.client, c.sessions, c.notify)
	loginType, err := view.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	// The success toast lingers before the dashboards navigate away.
	time.Sleep(session.RedirectDelay)
	fmt.Printf("Signed in (%s)\n", loginType)
	return nil
}

func (c *console) cmdLogout() error {
	view := views.NewLoginView(c.client, c.sessions, c.notify)
	return view.Logout()
}

func (c *console) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	req := api.RegisterRequest{}
	fs.StringVar(&req.Username, "username", "", "username")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Password, "password", "", "password")
	fs.StringVar(&req.PhoneNumber, "phone", "", "phone number")
	fs.StringVar(&req.Latitude, "lat", "", "latitude")
	fs.StringVar(&req.Longitude, "lon", "", "longitude")
	if err := fs.Parse(args); err != nil {
		return err
	}

	view := views.NewLoginView(c.client, c.sessions, c.notify)
	return view.Register(ctx, req)
}

func (c *console) cmdAccount(ctx context.Context) error {
	view := views.NewAccountView(c.client, c.sessions, c.notify)
	if err := view.Load(ctx); err != nil {
		return err
	}

	fmt.Printf("Username: %s\nEmail:    %s\n", view.Account.Username, view.Account.Email)
	if view.Claims != nil {
		fmt.Printf("Subject:  %s\n", view.Claims.Subject)
		if !view.Claims.ExpiresAt.IsZero() {
			fmt.Printf("Expires:  %s", view.Claims.ExpiresAt.Format(time.RFC3339))
			if view.Claims.Expired(time.Now()) {
				fmt.Print("  (expired)")
			}
			fmt.Println()
		}
	}
	return nil
}

func (c *console) cmdDashboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	year := fs.String("year", "all", "filter monthly series by year")
	month := fs.String("month", "all", "filter monthly series by month name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	view := views.NewDashboardView(c.client, c.notify)
	view.SetFilter(*year, *month)
	if err := view.Load(ctx); err != nil && view.EventStats == nil && view.MixStats == nil {
		return err
	}

	if db, ok := view.EventCharts(); ok {
		fmt.Printf("Total events: %d\n", view.EventStats.RawStats.TotalEvents)
		printSeries(db.StatusPie)
		printSeries(db.Monthly)
	}
	if db, ok := view.MixCharts(); ok {
		fmt.Printf("Total mixes: %d\n", view.MixStats.RawStats.TotalMixes)
		printSeries(db.FileTypePie)
		printSeries(db.Monthly)
	}
	return nil
}

func printSeries(s charts.Series) {
	fmt.Printf("\n%s\n", s.Title)
	for _, p := range s.Points {
		fmt.Printf("  %-24s %s\n", p.Label, p.Value.String())
	}
}

func (c *console) cmdEvents(ctx context.Context, args []string) error {
	view := views.NewEventsView(c.client, c.notify, c.confirm)
	sub, rest := subcommand(args)
	switch sub {
	case "list", "":
		fs := flag.NewFlagSet("events list", flag.ContinueOnError)
		status := fs.String("status", "all", "status tab: all|draft|published|completed|cancelled")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		view.StatusFilter = *status
		if err := view.Load(ctx); err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tVENUE\tSTART\tSTATUS")
		for _, e := range view.Filtered() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Venue, e.StartDate, e.Status)
		}
		return w.Flush()

	case "create":
		fs := flag.NewFlagSet("events create", flag.ContinueOnError)
		name := fs.String("name", "", "event name")
		description := fs.String("description", "", "description")
		venue := fs.String("venue", "", "venue")
		address := fs.String("venue-address", "", "venue address")
		start := fs.String("start", "", "start date")
		end := fs.String("end", "", "end date")
		price := fs.String("price", "", "ticket price")
		currency := fs.String("currency", "KES", "currency")
		bannerPath := fs.String("banner", "", "banner image path")
		tags := fs.String("tags", "", "comma-separated tags")
		hosts := fs.String("hosts", "", "comma-separated name:role host pairs")
		public := fs.Bool("public", false, "publicly visible")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		view.OpenCreate()
		view.Dialog.Form.Name = *name
		view.Dialog.Form.Description = *description
		view.Dialog.Form.Venue = *venue
		view.Dialog.Form.VenueAddress = *address
		view.Dialog.Form.StartDate = *start
		view.Dialog.Form.EndDate = *end
		view.Dialog.Form.TicketPrice = *price
		view.Dialog.Form.Currency = *currency
		view.Dialog.Form.IsPublic = *public
		view.Dialog.Form.Tags = splitCSV(*tags)
		for _, pair := range splitCSV(*hosts) {
			name, role, _ := strings.Cut(pair, ":")
			if err := view.AddHost(models.EventHost{Name: name, Role: role}); err != nil {
				return err
			}
		}
		banner, err := loadUpload(*bannerPath)
		if err != nil {
			return err
		}
		view.Dialog.Banner = banner
		return view.Submit(ctx)

	case "edit":
		fs := flag.NewFlagSet("events edit", flag.ContinueOnError)
		id := fs.String("id", "", "event id")
		name := fs.String("name", "", "event name")
		description := fs.String("description", "", "description")
		venue := fs.String("venue", "", "venue")
		address := fs.String("venue-address", "", "venue address")
		start := fs.String("start", "", "start date")
		end := fs.String("end", "", "end date")
		price := fs.String("price", "", "ticket price")
		currency := fs.String("currency", "", "currency")
		status := fs.String("status", "", "draft|published|completed|cancelled")
		bannerPath := fs.String("banner", "", "replacement banner image path")
		tags := fs.String("tags", "", "comma-separated tags, replaces the list")
		hosts := fs.String("hosts", "", "comma-separated name:role host pairs to append")
		public := fs.Bool("public", false, "publicly visible")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("-id is required")
		}

		if err := view.Load(ctx); err != nil {
			return err
		}
		row, ok := view.Find(*id)
		if !ok {
			return fmt.Errorf("no event with id %s", *id)
		}
		view.OpenEdit(row)

		set := setFlags(fs)
		if set["name"] {
			view.Dialog.Form.Name = *name
		}
		if set["description"] {
			view.Dialog.Form.Description = *description
		}
		if set["venue"] {
			view.Dialog.Form.Venue = *venue
		}
		if set["venue-address"] {
			view.Dialog.Form.VenueAddress = *address
		}
		if set["start"] {
			view.Dialog.Form.StartDate = *start
		}
		if set["end"] {
			view.Dialog.Form.EndDate = *end
		}
		if set["price"] {
			view.Dialog.Form.TicketPrice = *price
		}
		if set["currency"] {
			view.Dialog.Form.Currency = *currency
		}
		if set["status"] {
			view.Dialog.Form.Status = *status
		}
		if set["public"] {
			view.Dialog.Form.IsPublic = *public
		}
		if set["tags"] {
			view.Dialog.Form.Tags = splitCSV(*tags)
		}
		for _, pair := range splitCSV(*hosts) {
			name, role, _ := strings.Cut(pair, ":")
			if err := view.AddHost(models.EventHost{Name: name, Role: role}); err != nil {
				return err
			}
		}
		if set["banner"] {
			banner, err := loadUpload(*bannerPath)
			if err != nil {
				return err
			}
			view.Dialog.Banner = banner
		}
		return view.Submit(ctx)

	case "delete":
		id, err := requireID(rest)
		if err != nil {
			return err
		}
		return view.Delete(ctx, id)

	default:
		return fmt.Errorf("unknown events subcommand %q", sub)
	}
}

func (c *console) cmdMixes(ctx context.Context, args []string) error {
	view := views.NewMixesView(c.client, c.notify, c.confirm)
	sub, rest := subcommand(args)
	switch sub {
	case "list", "":
		fs := flag.NewFlagSet("mixes list", flag.ContinueOnError)
		fileType := fs.String("type", "all", "file-type tab: all|audio|video|mp4")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		view.TypeFilter = *fileType
		if err := view.Load(ctx); err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tTITLE\tTYPE\tPLAYS\tDOWNLOADS")
		for _, m := range view.Filtered() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", m.ID, m.Title, m.FileType, m.PlayCount, m.DownloadCount)
		}
		return w.Flush()

	case "create":
		fs := flag.NewFlagSet("mixes create", flag.ContinueOnError)
		title := fs.String("title", "", "mix title")
		description := fs.String("description", "", "description")
		duration := fs.String("duration", "", "duration in seconds")
		file := fs.String("file", "", "media file path")
		public := fs.Bool("public", false, "publicly visible")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		view.OpenCreate()
		view.Dialog.Form.Title = *title
		view.Dialog.Form.Description = *description
		view.Dialog.Form.Duration = *duration
		view.Dialog.Form.IsPublic = *public
		upload, err := loadUpload(*file)
		if err != nil {
			return err
		}
		view.SetFile(upload)
		return view.Submit(ctx)

	case "edit":
		fs := flag.NewFlagSet("mixes edit", flag.ContinueOnError)
		id := fs.String("id", "", "mix id")
		title := fs.String("title", "", "mix title")
		description := fs.String("description", "", "description")
		fileType := fs.String("type", "", "audio|video|mp4")
		public := fs.Bool("public", false, "publicly visible")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("-id is required")
		}

		if err := view.Load(ctx); err != nil {
			return err
		}
		row, ok := view.Find(*id)
		if !ok {
			return fmt.Errorf("no mix with id %s", *id)
		}
		view.OpenEdit(row)

		set := setFlags(fs)
		if set["title"] {
			view.Dialog.Form.Title = *title
		}
		if set["description"] {
			view.Dialog.Form.Description = *description
		}
		if set["type"] {
			view.Dialog.Form.FileType = *fileType
		}
		if set["public"] {
			view.Dialog.Form.IsPublic = *public
		}
		return view.Submit(ctx)

	case "delete":
		id, err := requireID(rest)
		if err != nil {
			return err
		}
		return view.Delete(ctx, id)

	case "play":
		id, err := requireID(rest)
		if err != nil {
			return err
		}
		mix, err := view.Play(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("%s now at %d plays\n", mix.Title, mix.PlayCount)
		return nil

	case "download":
		fs := flag.NewFlagSet("mixes download", flag.ContinueOnError)
		id := fs.String("id", "", "mix id")
		out := fs.String("out", "", "output file path")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *id == "" || *out == "" {
			return fmt.Errorf("both -id and -out are required")
		}
		data, err := view.Download(ctx, *id)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			return fmt.Errorf("write download: %w", err)
		}
		fmt.Printf("Wrote %d bytes to %s\n", len(data), *out)
		return nil

	default:
		return fmt.Errorf("unknown mixes subcommand %q", sub)
	}
}

func (c *console) cmdArchive(ctx context.Context, args []string) error {
	view := views.NewArchiveView(c.client, c.notify, c.confirm)
	sub, rest := subcommand(args)
	switch sub {
	case "list", "":
		if err := view.Load(ctx); err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tEVENT\tDATE\tVENUE\tGENRE")
		for _, a := range view.Archives {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a.ID, a.EventName, a.EventDate, a.Venue, a.Genre)
		}
		return w.Flush()

	case "create":
		fs := flag.NewFlagSet("archive create", flag.ContinueOnError)
		name := fs.String("name", "", "event name")
		date := fs.String("date", "", "event date")
		venue := fs.String("venue", "", "venue")
		location := fs.String("location", "", "location")
		description := fs.String("description", "", "description")
		setlist := fs.String("setlist", "", "setlist")
		genre := fs.String("genre", "", "genre")
		attendance := fs.String("attendance", "", "attendance count")
		videos := fs.String("videos", "", "comma-separated video paths")
		images := fs.String("images", "", "comma-separated image paths")
		public := fs.Bool("public", false, "publicly visible")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		view.OpenCreate()
		view.Dialog.Form = api.ArchivePayload{
			EventName:   *name,
			EventDate:   *date,
			Venue:       *venue,
			Location:    *location,
			Description: *description,
			Setlist:     *setlist,
			Genre:       *genre,
			Attendance:  *attendance,
			IsPublic:    *public,
		}
		for _, path := range splitCSV(*videos) {
			upload, err := loadUpload(path)
			if err != nil {
				return err
			}
			view.Dialog.Videos = append(view.Dialog.Videos, *upload)
		}
		for _, path := range splitCSV(*images) {
			upload, err := loadUpload(path)
			if err != nil {
				return err
			}
			view.Dialog.Images = append(view.Dialog.Images, *upload)
		}
		return view.Submit(ctx)

	case "edit":
		fs := flag.NewFlagSet("archive edit", flag.ContinueOnError)
		id := fs.String("id", "", "archive id")
		name := fs.String("name", "", "event name")
		date := fs.String("date", "", "event date")
		venue := fs.String("venue", "", "venue")
		location := fs.String("location", "", "location")
		description := fs.String("description", "", "description")
		setlist := fs.String("setlist", "", "setlist")
		genre := fs.String("genre", "", "genre")
		public := fs.Bool("public", false, "publicly visible")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("-id is required")
		}

		if err := view.Load(ctx); err != nil {
			return err
		}
		row, ok := view.Find(*id)
		if !ok {
			return fmt.Errorf("no archive with id %s", *id)
		}
		view.OpenEdit(row)

		set := setFlags(fs)
		if set["name"] {
			view.Dialog.Form.EventName = *name
		}
		if set["date"] {
			view.Dialog.Form.EventDate = *date
		}
		if set["venue"] {
			view.Dialog.Form.Venue = *venue
		}
		if set["location"] {
			view.Dialog.Form.Location = *location
		}
		if set["description"] {
			view.Dialog.Form.Description = *description
		}
		if set["setlist"] {
			view.Dialog.Form.Setlist = *setlist
		}
		if set["genre"] {
			view.Dialog.Form.Genre = *genre
		}
		if set["public"] {
			view.Dialog.Form.IsPublic = *public
		}
		return view.Submit(ctx)

	case "delete":
		id, err := requireID(rest)
		if err != nil {
			return err
		}
		return view.Delete(ctx, id)

	default:
		return fmt.Errorf("unknown archive subcommand %q", sub)
	}
}

func (c *console) cmdServices(ctx context.Context, args []string) error {
	view := views.NewServicesView(c.client, c.cfg.Paging.ServicesPageSize, c.notify, c.confirm)
	sub, rest := subcommand(args)
	switch sub {
	case "list", "":
		fs := flag.NewFlagSet("services list", flag.ContinueOnError)
		page := fs.Int("page", 0, "zero-based page")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		view.Page = *page
		if err := view.Load(ctx); err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tCONTACT\tEVENT DATE")
		for _, s := range view.Services {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Type, s.ContactName, s.EventDate)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("Page %d of %d (%d total)\n", view.Page+1, view.PageCount(), view.Total)
		return nil

	case "delete":
		id, err := requireID(rest)
		if err != nil {
			return err
		}
		return view.Delete(ctx, id)

	default:
		return fmt.Errorf("unknown services subcommand %q", sub)
	}
}

func (c *console) cmdTrending(ctx context.Context, args []string) error {
	view := views.NewTrendingView(c.client, c.client, c.client, c.notify, c.confirm)
	sub, rest := subcommand(args)
	switch sub {
	case "list", "":
		fs := flag.NewFlagSet("trending list", flag.ContinueOnError)
		contentType := fs.String("content-type", "all", "content-type tab: all|event|mix")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		view.TypeFilter = *contentType
		if err := view.Load(ctx); err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tCONTENT\tTITLE\tSCORE\tVIEWS\tENGAGEMENT\tPERIOD")
		for _, row := range view.Filtered() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
				row.ID, row.ContentType, row.ContentTitle, row.Score.String(),
				row.ViewCount, row.EngagementCount, row.TrendingPeriod)
		}
		return w.Flush()

	case "create":
		fs := flag.NewFlagSet("trending create", flag.ContinueOnError)
		contentType := fs.String("content-type", models.TrendingContentEvent, "event|mix")
		contentID := fs.String("content-id", "", "referenced content id")
		period := fs.String("period", models.TrendingPeriodDaily, "daily|weekly|monthly")
		score := fs.Float64("score", 0, "initial score")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		view.OpenCreate()
		view.Dialog.Form.ContentType = *contentType
		view.Dialog.Form.ContentID = *contentID
		view.Dialog.Form.TrendingPeriod = *period
		view.Dialog.Form.Score = *score
		return view.Submit(ctx)

	case "metrics":
		fs := flag.NewFlagSet("trending metrics", flag.ContinueOnError)
		id := fs.String("id", "", "trending entry id")
		viewCount := fs.Int("views", 0, "view count")
		engagement := fs.Int("engagement", 0, "engagement count")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("-id is required")
		}

		view.OpenEdit(views.TrendingRow{TrendingEntry: models.TrendingEntry{ID: *id}})
		view.Dialog.Metrics = models.TrendingMetrics{ViewCount: *viewCount, EngagementCount: *engagement}
		return view.Submit(ctx)

	case "delete":
		id, err := requireID(rest)
		if err != nil {
			return err
		}
		return view.Delete(ctx, id)

	default:
		return fmt.Errorf("unknown trending subcommand %q", sub)
	}
}

func (c *console) cmdNews(ctx context.Context, args []string) error {
	view := views.NewNewsView(c.client, c.cfg.Paging.NewsPageSize, c.notify, c.confirm)
	sub, rest := subcommand(args)
	switch sub {
	case "list", "":
		fs := flag.NewFlagSet("news list", flag.ContinueOnError)
		page := fs.Int("page", 0, "zero-based page")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		view.Page = *page
		if err := view.Load(ctx); err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tSTATUS\tCREATED")
		for _, a := range view.Articles {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a.ID, a.Title, a.Category, a.Status, a.CreatedAt)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("Page %d of %d (%d total)\n", view.Page+1, view.PageCount(), view.Total)
		return nil

	case "create":
		fs := flag.NewFlagSet("news create", flag.ContinueOnError)
		title := fs.String("title", "", "article title")
		content := fs.String("content", "", "article body")
		category := fs.String("category", "", "category")
		tags := fs.String("tags", "", "comma-separated tags")
		mediaType := fs.String("media-type", "", "image|video")
		media := fs.String("media", "", "media file path")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		view.OpenCreate()
		view.Dialog.Form.Title = *title
		view.Dialog.Form.Content = *content
		view.Dialog.Form.Category = *category
		view.Dialog.Form.Tags = splitCSV(*tags)
		view.Dialog.Form.MediaType = *mediaType
		upload, err := loadUpload(*media)
		if err != nil {
			return err
		}
		view.Dialog.Media = upload
		return view.Submit(ctx)

	case "approve":
		id, err := requireID(rest)
		if err != nil {
			return err
		}
		return view.Approve(ctx, id)

	case "reject":
		fs := flag.NewFlagSet("news reject", flag.ContinueOnError)
		id := fs.String("id", "", "article id")
		reason := fs.String("reason", "", "rejection reason, at least 10 characters")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("-id is required")
		}
		return view.Reject(ctx, *id, *reason)

	default:
		return fmt.Errorf("unknown news subcommand %q", sub)
	}
}

func (c *console) cmdMap(ctx context.Context) error {
	view := mapview.NewView(c.client)
	if err := view.Load(ctx); err != nil {
		return err
	}

	w := newTable()
	fmt.Fprintln(w, "KIND\tNAME\tLAT\tLON")
	for _, m := range view.Markers {
		fmt.Fprintf(w, "%s\t%s\t%.4f\t%.4f\n", m.Kind, m.Account.Username, m.Lat, m.Lon)
	}
	return w.Flush()
}

func (c *console) cmdChat(ctx context.Context) error {
	client := chat.New(c.cfg.Chat, c.sessions)

	history, err := c.client.ChatHistory(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "History unavailable, starting fresh")
	} else {
		client.Preload(history)
	}
	for _, msg := range client.Messages() {
		printChatMessage(msg)
	}

	client.OnFrame(func(msg models.ChatMessage) {
		if msg.Sender != models.ChatSenderUser {
			printChatMessage(msg)
		}
	})

	client.Open(ctx)
	defer client.Close()

	fmt.Fprintln(os.Stderr, "Type a message and press enter, /quit to leave")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "/quit" {
			return nil
		}
		if err := client.Send(line); err != nil {
			fmt.Fprintf(os.Stderr, "Not sent: %v\n", err)
		}
	}
	return scanner.Err()
}

func printChatMessage(msg models.ChatMessage) {
	sender := msg.Sender
	if sender == "" {
		sender = models.ChatSenderSupport
	}
	fmt.Printf("[%s] %s: %s\n", msg.Timestamp, sender, msg.Text)
}

// subcommand splits the leading subcommand off the argument list.
func subcommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}
	return args[0], args[1:]
}

// setFlags reports which flags were named on the command line, so the
// edit subcommands only override the fields the operator set and leave
// the rest of the seeded dialog untouched.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// requireID parses the common "-id" flag shared by the delete-style
// subcommands.
func requireID(args []string) (string, error) {
	fs := flag.NewFlagSet("id", flag.ContinueOnError)
	id := fs.String("id", "", "record id")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if *id == "" {
		return "", fmt.Errorf("-id is required")
	}
	return *id, nil
}
