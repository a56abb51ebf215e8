// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package models

// Mix file types. "mp4" sits alongside "video" because the uploader tags
// .mp4 files with their own type; the file-type tabs mirror that.
const (
	MixTypeAudio = "audio"
	MixTypeVideo = "video"
	MixTypeMP4   = "mp4"
)

// Mix is an uploaded audio or video mix. DownloadCount and PlayCount are
// maintained server-side; the client only reads them.
type Mix struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	FileType      string    `json:"fileType"`
	Duration      FlexInt   `json:"duration"`
	IsPublic      bool      `json:"isPublic"`
	FileURL       string    `json:"fileUrl,omitempty"`
	DownloadCount int       `json:"downloadCount"`
	PlayCount     int       `json:"playCount"`
	FileSize      FlexFloat `json:"fileSize,omitempty"`
}
