// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NewNoteRequest is the payload for creating a note.
//
// Title must be non-empty and every tag must be a non-empty string; these
// rules are enforced by the validation layer before the store sees the request.
type NewNoteRequest struct {
	// Title is the note headline. Required.
	Title string `json:"title" validate:"notblank"`

	// Content is the note body. May be empty.
	Content string `json:"content"`

	// Tags is an optional ordered list of labels.
	Tags []string `json:"tags" validate:"omitempty,dive,notblank"`
}

// SearchRequest describes a case-insensitive substring search over title,
// content and tags.
type SearchRequest struct {
	// Query is the text to look for. Required.
	Query string `validate:"notblank"`
}
