// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteService is the note store shared by the console and the HTTP API.
//
// Every method is safe for concurrent use. Notes returned to callers are
// copies; changing them never affects the store. Indexes are zero-based
// positions in the current listing order.
type NoteService interface {
	Create(ctx context.Context, req models.NewNoteRequest) (models.Note, error)
	List(ctx context.Context) ([]models.Note, error)
	Get(ctx context.Context, id string) (models.Note, error)
	GetByIndex(ctx context.Context, index int) (models.Note, error)
	Search(ctx context.Context, query string) ([]models.Note, error)
	Update(ctx context.Context, id string, upd models.NoteUpdate) (models.Note, error)
	// Delete reports whether a note with id existed and was removed.
	Delete(ctx context.Context, id string) (bool, error)
	DeleteByIndex(ctx context.Context, index int) error
	Count(ctx context.Context) (int, error)
	Stats(ctx context.Context) (models.NoteStats, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// logging or validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}

// IDGenerator yields identifiers for new notes.
type IDGenerator interface {
	Generate() string
}
