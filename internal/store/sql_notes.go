// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	defaultMaxRetries = 3
	defaultRetryDelay = 100 * time.Millisecond
)

// sqlNotePersister keeps the collection in the notes table. The position
// column preserves collection order.
//
// Save replaces the table contents inside one transaction, so readers see
// either the old or the new collection.
type sqlNotePersister struct {
	*DB
	maxRetries int
	retryDelay time.Duration
	now        func() time.Time
	logger     *logger.Logger
}

// NewSQLNotePersister constructs a [NotePersister] over db. The schema must
// already be migrated.
func NewSQLNotePersister(db *DB, log *logger.Logger) NotePersister {
	return &sqlNotePersister{
		DB:         db,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
		now:        time.Now,
		logger:     log,
	}
}

// Load reads every row ordered by position.
func (p *sqlNotePersister) Load(ctx context.Context) ([]models.Note, error) {
	query, args, err := buildSelectNotesQuery(p.builder())
	if err != nil {
		p.logger.Err(err).Str("func", "sqlNotePersister.Load").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		p.logger.Err(err).Str("func", "sqlNotePersister.Load").Msg("failed to execute query for loading notes")
		return nil, fmt.Errorf("%w: %w: %w", ErrPersistence, ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 50)

	for rows.Next() {
		var (
			note                 models.Note
			tags                 sql.NullString
			createdAt, updatedAt string
		)

		if scanErr := rows.Scan(&note.ID, &note.Title, &note.Content, &tags, &createdAt, &updatedAt); scanErr != nil {
			p.logger.Err(scanErr).Str("func", "sqlNotePersister.Load").Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w: %w", ErrPersistence, ErrScanningRow, scanErr)
		}

		if decodeErr := decodeNoteRow(&note, tags, createdAt, updatedAt); decodeErr != nil {
			p.logger.Err(decodeErr).Str("func", "sqlNotePersister.Load").Str("note_id", note.ID).Msg("undecodable note row")
			return nil, decodeErr
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		p.logger.Err(rowsErr).Str("func", "sqlNotePersister.Load").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w: %w", ErrPersistence, ErrScanningRows, rowsErr)
	}

	if err = checkLoadedNotes(notes); err != nil {
		p.logger.Err(err).Str("func", "sqlNotePersister.Load").Msg("notes table holds inconsistent notes")
		return nil, err
	}

	return notes, nil
}

// Save replaces the table contents with notes, retrying transient failures.
func (p *sqlNotePersister) Save(ctx context.Context, notes []models.Note) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = p.save(ctx, notes)
		if err == nil {
			return nil
		}

		if attempt >= p.maxRetries || p.classify(err) != Retryable {
			break
		}

		p.logger.Warn().Err(err).
			Str("func", "sqlNotePersister.Save").
			Int("attempt", attempt+1).
			Msg("retryable database error, retrying")
		time.Sleep(p.retryDelay * time.Duration(attempt+1))
	}

	return fmt.Errorf("%w: %w", ErrPersistence, err)
}

func (p *sqlNotePersister) save(ctx context.Context, notes []models.Note) (err error) {
	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		p.logger.Err(err).Str("func", "sqlNotePersister.save").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query, args, err := buildDeleteNotesQuery(p.builder())
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		p.logger.Err(err).Str("func", "sqlNotePersister.save").Msg("failed to clear notes table")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for start := 0; start < len(notes); start += insertBatchSize {
		end := min(start+insertBatchSize, len(notes))

		query, args, err = buildInsertNotesQuery(p.builder(), notes[start:end], start)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			p.logger.Err(err).
				Str("func", "sqlNotePersister.save").
				Int("batch_start", start).
				Msg("failed to insert notes")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		p.logger.Err(err).Str("func", "sqlNotePersister.save").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// Quarantine copies the current rows into a notes_corrupt_<unix> table and
// empties the notes table.
func (p *sqlNotePersister) Quarantine(ctx context.Context) (_ string, err error) {
	table, copyQuery := buildQuarantineQuery(p.now().Unix())

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w: %w", ErrPersistence, ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, copyQuery); err != nil {
		return "", fmt.Errorf("%w: %w: %w", ErrPersistence, ErrExecutingStatement, err)
	}

	deleteQuery, args, err := buildDeleteNotesQuery(p.builder())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if _, err = tx.ExecContext(ctx, deleteQuery, args...); err != nil {
		return "", fmt.Errorf("%w: %w: %w", ErrPersistence, ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("%w: %w: %w", ErrPersistence, ErrCommitingTransaction, err)
	}

	p.logger.Warn().Str("backup", table).Msg("corrupt notes table copied aside")
	return table, nil
}

func decodeNoteRow(note *models.Note, tags sql.NullString, createdAt, updatedAt string) error {
	note.Tags = []string{}
	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &note.Tags); err != nil {
			return fmt.Errorf("%w: tags of note %s: %w", ErrCorruptStore, note.ID, err)
		}
		if note.Tags == nil {
			note.Tags = []string{}
		}
	}

	var err error
	if note.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return fmt.Errorf("%w: created_at of note %s: %w", ErrCorruptStore, note.ID, err)
	}
	if note.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return fmt.Errorf("%w: updated_at of note %s: %w", ErrCorruptStore, note.ID, err)
	}

	return nil
}
