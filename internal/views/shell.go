// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package views

// Console routes. The shell maps each to a screen title; anything
// unknown lands on the dashboard.
const (
	RouteHome     = "/dashboard/home"
	RouteEvents   = "/dashboard/events"
	RouteMixes    = "/dashboard/mixes"
	RouteServices = "/dashboard/services"
	RouteArchive  = "/dashboard/archive"
	RouteTrending = "/dashboard/trending"
	RouteVibe     = "/dashboard/vibe"
)

var routeTitles = map[string]string{
	RouteHome:     "Dashboard",
	RouteEvents:   "Events",
	RouteMixes:    "Mixes",
	RouteServices: "Services",
	RouteArchive:  "Archive",
	RouteTrending: "Trending",
	RouteVibe:     "Vibe Map",
}

// RouteTitle returns the screen title for a route, defaulting to the
// dashboard title.
func RouteTitle(route string) string {
	if title, ok := routeTitles[route]; ok {
		return title
	}
	return routeTitles[RouteHome]
}

// Routes lists the navigable routes in sidebar order.
func Routes() []string {
	return []string{
		RouteHome,
		RouteEvents,
		RouteMixes,
		RouteServices,
		RouteArchive,
		RouteTrending,
		RouteVibe,
	}
}
