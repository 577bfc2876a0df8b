// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Storages groups the persistence backends used by the service layer along
// with the resources that must be released on shutdown.
type Storages struct {
	// NotePersister holds the note collection, either in a JSON document or
	// in a SQL database.
	NotePersister NotePersister

	db *DB
}

// NewStorages selects the persistence backend from cfg:
//   - cfg.DB.DSN set: a PostgreSQL URL opens pgx, anything else a SQLite
//     file; the schema is migrated before use.
//   - otherwise: the JSON document at cfg.File.Path.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Debug().Str("path", cfg.File.Path).Msg("using JSON file note storage")
		return &Storages{
			NotePersister: NewFileNotePersister(cfg.File.Path, log),
		}, nil
	}

	var (
		db  *DB
		err error
	)
	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	log.Info().Str("dialect", db.dialect).Msg("using SQL note storage")
	return &Storages{
		NotePersister: NewSQLNotePersister(db, log),
		db:            db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
