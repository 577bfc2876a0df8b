// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// NotePersister reads and writes the whole note collection at once.
//
// Load returns the collection in its persisted order. A store that has never
// been written yields an empty, non-nil slice. Save replaces the persisted
// collection with notes; readers never observe a partially written state.
type NotePersister interface {
	Load(ctx context.Context) ([]models.Note, error)
	Save(ctx context.Context, notes []models.Note) error
}

// Quarantiner is implemented by persisters able to move an unreadable
// collection aside so that a fresh one can be started without losing the
// original bytes. It returns a human-readable location of the backup.
type Quarantiner interface {
	Quarantine(ctx context.Context) (string, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
