// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Response is the envelope every JSON endpoint of the HTTP API answers with.
// Data is null whenever Success is false.
type Response[T any] struct {
	// Success reports whether the request was served.
	Success bool `json:"success"`

	// Message is a short human-readable outcome description.
	Message string `json:"message"`

	// Data carries the payload, or null on failure.
	Data T `json:"data"`
}

// NoteStats summarises the collection for the /api/stats endpoint.
type NoteStats struct {
	// TotalNotes is the number of notes in the collection.
	TotalNotes int `json:"total_notes"`

	// TotalTags is the number of distinct tags across all notes.
	TotalTags int `json:"total_tags"`

	// LastUpdated is the most recent UpdatedAt of any note, or the time the
	// stats were computed when the collection is empty.
	LastUpdated time.Time `json:"last_updated"`
}
