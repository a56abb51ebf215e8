// Vibedeck - Events & Media Admin Console
// Copyright 2026 Vibedeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vibedeck/vibedeck

package models

// News moderation statuses.
const (
	NewsStatusPending  = "pending"
	NewsStatusApproved = "approved"
	NewsStatusRejected = "rejected"
)

// NewsCategories is the fixed category list offered by the submission
// form. The backend accepts these verbatim.
var NewsCategories = []string{
	"Politics",
	"Business & Economy",
	"Technology",
	"Health",
	"Education",
	"Science",
	"Environment",
	"Sports",
	"Entertainment",
	"Lifestyle",
	"Crime & Law",
	"Religion & Spirituality",
	"International (World)",
	"Local/Regional News",
	"Editorial & Opinion",
}

// NewsArticle is a submitted article awaiting moderation. MediaType is
// empty, "image" or "video"; rejection requires a reason of at least ten
// characters, checked client-side before the request fires.
type NewsArticle struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Category        string   `json:"category"`
	MediaType       string   `json:"mediaType,omitempty"`
	MediaURL        string   `json:"mediaUrl,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Status          string   `json:"status"`
	RejectionReason string   `json:"rejectionReason,omitempty"`
	CreatedAt       string   `json:"createdAt"`
}
