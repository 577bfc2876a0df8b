// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	notesFilePerm = 0o644
	notesDirPerm  = 0o755

	tempFilePrefix = ".notes-tmp-"
)

// fileNotePersister keeps the collection as one JSON array document.
//
// Every Save rewrites the document through a temporary sibling file that is
// fsynced and renamed over the target, so a crash leaves either the previous
// or the new document on disk.
type fileNotePersister struct {
	path   string
	now    func() time.Time
	logger *logger.Logger
}

// NewFileNotePersister constructs a [NotePersister] backed by the JSON
// document at path. The file and its parent directories are created on the
// first Save.
func NewFileNotePersister(path string, log *logger.Logger) NotePersister {
	return &fileNotePersister{
		path:   path,
		now:    time.Now,
		logger: log,
	}
}

// Load reads the document. A missing file, an empty file and a literal
// `null` all yield an empty collection.
func (p *fileNotePersister) Load(ctx context.Context) ([]models.Note, error) {
	raw, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		p.logger.Debug().Str("path", p.path).Msg("notes file does not exist yet, starting empty")
		return []models.Note{}, nil
	}
	if err != nil {
		p.logger.Err(err).Str("path", p.path).Msg("failed to read notes file")
		return nil, fmt.Errorf("%w: reading %s: %w", ErrPersistence, p.path, err)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return []models.Note{}, nil
	}

	var notes []models.Note
	if err = json.Unmarshal(raw, &notes); err != nil {
		p.logger.Err(err).Str("path", p.path).Msg("notes file is not a valid notes document")
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrCorruptStore, p.path, err)
	}

	if err = checkLoadedNotes(notes); err != nil {
		p.logger.Err(err).Str("path", p.path).Msg("notes file holds inconsistent notes")
		return nil, err
	}

	p.logger.Debug().Str("path", p.path).Int("count", len(notes)).Msg("notes loaded")
	return normalizeLoadedNotes(notes), nil
}

// Save rewrites the whole document with notes.
func (p *fileNotePersister) Save(ctx context.Context, notes []models.Note) error {
	if notes == nil {
		notes = []models.Note{}
	}

	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding notes: %w", ErrPersistence, err)
	}
	data = append(data, '\n')

	if err = os.MkdirAll(filepath.Dir(p.path), notesDirPerm); err != nil {
		p.logger.Err(err).Str("path", p.path).Msg("failed to create notes directory")
		return fmt.Errorf("%w: creating directory: %w", ErrPersistence, err)
	}

	if err = writeFileAtomic(p.path, data, notesFilePerm); err != nil {
		p.logger.Err(err).Str("path", p.path).Msg("failed to write notes file")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	p.logger.Debug().Str("path", p.path).Int("count", len(notes)).Msg("notes saved")
	return nil
}

// Quarantine renames the current document to "<path>.corrupt-<unix seconds>".
func (p *fileNotePersister) Quarantine(ctx context.Context) (string, error) {
	backup := fmt.Sprintf("%s.corrupt-%d", p.path, p.now().Unix())
	if err := os.Rename(p.path, backup); err != nil {
		return "", fmt.Errorf("%w: moving corrupt notes file aside: %w", ErrPersistence, err)
	}

	p.logger.Warn().Str("path", p.path).Str("backup", backup).Msg("corrupt notes file moved aside")
	return backup, nil
}

// writeFileAtomic writes data to a temp file in the target's directory and
// renames it over filename.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)

	tmpFile, err := os.CreateTemp(dir, tempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}

	return nil
}

// checkLoadedNotes rejects collections whose identifiers are empty or
// repeated. Both backends share it.
func checkLoadedNotes(notes []models.Note) error {
	seen := make(map[string]struct{}, len(notes))
	for i, n := range notes {
		if n.ID == "" {
			return fmt.Errorf("%w: note #%d has an empty id", ErrCorruptStore, i)
		}
		if _, ok := seen[n.ID]; ok {
			return fmt.Errorf("%w: duplicated note id %q", ErrCorruptStore, n.ID)
		}
		seen[n.ID] = struct{}{}
	}
	return nil
}

func normalizeLoadedNotes(notes []models.Note) []models.Note {
	if notes == nil {
		return []models.Note{}
	}
	for i := range notes {
		if notes[i].Tags == nil {
			notes[i].Tags = []string{}
		}
	}
	return notes
}
