// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// Note is a single user note.
//
// Notes are created only through the note store, which assigns ID and both
// timestamps, and are changed only through [Note.ApplyUpdate]. The JSON field
// names are part of the on-disk format and must not change.
type Note struct {
	// ID uniquely identifies the note inside the collection. It is generated
	// by the store and never changes.
	ID string `json:"id"`

	// Title is a short non-empty headline.
	Title string `json:"title"`

	// Content is free text and may span several lines or be empty.
	Content string `json:"content"`

	// CreatedAt is set once when the note is constructed.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every update and is never before CreatedAt.
	UpdatedAt time.Time `json:"updated_at"`

	// Tags keeps the caller's order; duplicates are allowed.
	Tags []string `json:"tags"`
}

// NoteUpdate carries an optional replacement for each mutable field of a
// [Note]. A nil Title or Content, or a nil Tags slice, means "leave as is".
// A non-nil empty Tags slice clears the tags.
type NoteUpdate struct {
	Title   *string  `json:"title,omitempty" validate:"omitempty,notblank"`
	Content *string  `json:"content,omitempty"`
	Tags    []string `json:"tags" validate:"omitempty,dive,notblank"`
}

// NewNote constructs a note with the given identifier whose CreatedAt and
// UpdatedAt are both set to at. Tags are copied; a nil slice becomes empty so
// the note always serialises tags as an array.
func NewNote(id, title, content string, tags []string, at time.Time) Note {
	return Note{
		ID:        id,
		Title:     title,
		Content:   content,
		CreatedAt: at,
		UpdatedAt: at,
		Tags:      cloneTags(tags),
	}
}

// ApplyUpdate replaces every field provided in upd and stamps UpdatedAt with
// at, even when upd carries no fields at all. UpdatedAt never moves before
// CreatedAt.
func (n *Note) ApplyUpdate(upd NoteUpdate, at time.Time) {
	if upd.Title != nil {
		n.Title = *upd.Title
	}
	if upd.Content != nil {
		n.Content = *upd.Content
	}
	if upd.Tags != nil {
		n.Tags = cloneTags(upd.Tags)
	}

	if at.Before(n.CreatedAt) {
		at = n.CreatedAt
	}
	n.UpdatedAt = at
}

// Clone returns a deep copy of n that shares no memory with it.
func (n Note) Clone() Note {
	n.Tags = cloneTags(n.Tags)
	return n
}

// CloneNotes deep-copies every note of notes into a new slice.
func CloneNotes(notes []Note) []Note {
	out := make([]Note, len(notes))
	for i, n := range notes {
		out[i] = n.Clone()
	}
	return out
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return slices.Clone(tags)
}
