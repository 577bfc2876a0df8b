// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	notesTable = "notes"

	// insertBatchSize keeps each multi-row INSERT well below the bind
	// parameter limits of both dialects.
	insertBatchSize = 500
)

var (
	noteInsertColumns = []string{"id", "position", "title", "content", "tags", "created_at", "updated_at"}
	noteSelectColumns = []string{"id", "title", "content", "tags", "created_at", "updated_at"}
)

func buildSelectNotesQuery(b squirrel.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select(noteSelectColumns...).
		From(notesTable).
		OrderBy("position").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteNotesQuery(b squirrel.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Delete(notesTable).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertNotesQuery builds one multi-row INSERT for notes. offset is the
// position of notes[0] in the whole collection.
func buildInsertNotesQuery(b squirrel.StatementBuilderType, notes []models.Note, offset int) (string, []any, error) {
	insert := b.Insert(notesTable).Columns(noteInsertColumns...)

	for i, n := range notes {
		tags := n.Tags
		if tags == nil {
			tags = []string{}
		}
		encodedTags, err := json.Marshal(tags)
		if err != nil {
			return "", nil, fmt.Errorf("%w: encoding tags of %s: %w", ErrBuildingSQLQuery, n.ID, err)
		}

		insert = insert.Values(
			n.ID,
			offset+i,
			n.Title,
			n.Content,
			string(encodedTags),
			formatTimestamp(n.CreatedAt),
			formatTimestamp(n.UpdatedAt),
		)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildQuarantineQuery copies the notes table into notes_corrupt_<suffix>.
func buildQuarantineQuery(suffix int64) (string, string) {
	table := fmt.Sprintf("%s_corrupt_%d", notesTable, suffix)
	return table, fmt.Sprintf("CREATE TABLE %s AS SELECT * FROM %s", table, notesTable)
}

// Timestamps are stored as RFC 3339 text to keep the offset the note was
// written with, the same way the JSON document does.
func formatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
