// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteService owns the in-memory collection and keeps the persisted copy in
// step with it.
//
// One mutex serialises every operation, including the persistence write.
// Mutations build a new slice, persist it, and only then swap it in, so a
// failed write leaves the visible collection untouched.
type noteService struct {
	mu        sync.Mutex
	notes     []models.Note
	persister store.NotePersister

	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NoteServiceOption customises a note service built by [NewNoteService].
type NoteServiceOption func(*noteService)

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(ids IDGenerator) NoteServiceOption {
	return func(s *noteService) {
		s.ids = ids
	}
}

// WithClock replaces time.Now as the source of note timestamps.
func WithClock(now func() time.Time) NoteServiceOption {
	return func(s *noteService) {
		s.now = now
	}
}

// NewNoteService loads the persisted collection and returns a store serving
// it.
//
// When the persisted collection is corrupt, cfg.OnCorrupt decides:
// [config.CorruptPolicyFail] returns the error, anything else moves the
// corrupt data aside (if the persister supports it) and starts empty.
func NewNoteService(ctx context.Context, persister store.NotePersister, cfg config.Storage, log *logger.Logger, opts ...NoteServiceOption) (NoteService, error) {
	s := &noteService{
		persister: persister,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    log,
	}
	for _, opt := range opts {
		opt(s)
	}

	notes, err := persister.Load(ctx)
	switch {
	case errors.Is(err, store.ErrCorruptStore):
		if cfg.OnCorrupt == config.CorruptPolicyFail {
			log.Err(err).Msg("persisted notes are corrupt, refusing to start")
			return nil, fmt.Errorf("loading notes: %w", err)
		}
		if notes, err = s.recoverCorrupt(ctx, err); err != nil {
			return nil, err
		}
	case err != nil:
		log.Err(err).Msg("failed to load notes")
		return nil, fmt.Errorf("loading notes: %w", err)
	}

	s.notes = notes
	log.Info().Int("count", len(notes)).Msg("note store ready")
	return s, nil
}

func (s *noteService) recoverCorrupt(ctx context.Context, loadErr error) ([]models.Note, error) {
	q, ok := s.persister.(store.Quarantiner)
	if !ok {
		s.logger.Warn().Err(loadErr).Msg("persisted notes are corrupt, starting empty")
		return []models.Note{}, nil
	}

	backup, err := q.Quarantine(ctx)
	if err != nil {
		s.logger.Err(err).Msg("failed to back up corrupt notes")
		return nil, fmt.Errorf("loading notes: %w (backup failed: %w)", loadErr, err)
	}

	s.logger.Warn().Err(loadErr).Str("backup", backup).Msg("persisted notes are corrupt, backed up and starting empty")
	return []models.Note{}, nil
}

func (s *noteService) Create(ctx context.Context, req models.NewNoteRequest) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note := models.NewNote(s.ids.Generate(), req.Title, req.Content, req.Tags, s.now())

	staged := make([]models.Note, len(s.notes), len(s.notes)+1)
	copy(staged, s.notes)
	staged = append(staged, note)

	if err := s.commit(ctx, staged); err != nil {
		return models.Note{}, err
	}

	s.logger.Debug().Str("note_id", note.ID).Msg("note created")
	return note.Clone(), nil
}

func (s *noteService) List(ctx context.Context) ([]models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.CloneNotes(s.notes), nil
}

func (s *noteService) Get(ctx context.Context, id string) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}

	return s.notes[i].Clone(), nil
}

func (s *noteService) GetByIndex(ctx context.Context, index int) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex(index); err != nil {
		return models.Note{}, err
	}

	return s.notes[index].Clone(), nil
}

// Search returns, in collection order, every note whose title, content or
// any tag contains query, ignoring case.
func (s *noteService) Search(ctx context.Context, query string) ([]models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(query)
	found := make([]models.Note, 0)
	for _, n := range s.notes {
		if noteContains(n, needle) {
			found = append(found, n.Clone())
		}
	}

	return found, nil
}

func (s *noteService) Update(ctx context.Context, id string, upd models.NoteUpdate) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}

	note := s.notes[i]
	// updated_at never goes backwards, even if the clock does
	at := s.now()
	if at.Before(note.UpdatedAt) {
		at = note.UpdatedAt
	}
	note.ApplyUpdate(upd, at)

	staged := slices.Clone(s.notes)
	staged[i] = note

	if err := s.commit(ctx, staged); err != nil {
		return models.Note{}, err
	}

	s.logger.Debug().Str("note_id", id).Msg("note updated")
	return note.Clone(), nil
}

func (s *noteService) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}

	if err := s.removeAt(ctx, i); err != nil {
		return false, err
	}

	return true, nil
}

// DeleteByIndex resolves index to a note under the same lock that removes
// it, so a concurrent change cannot shift the target in between.
func (s *noteService) DeleteByIndex(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndex(index); err != nil {
		return err
	}

	return s.removeAt(ctx, index)
}

func (s *noteService) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.notes), nil
}

func (s *noteService) Stats(ctx context.Context) (models.NoteStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := models.NoteStats{TotalNotes: len(s.notes)}

	tags := make(map[string]struct{})
	for _, n := range s.notes {
		for _, tag := range n.Tags {
			tags[tag] = struct{}{}
		}
		if n.UpdatedAt.After(stats.LastUpdated) {
			stats.LastUpdated = n.UpdatedAt
		}
	}
	stats.TotalTags = len(tags)

	if len(s.notes) == 0 {
		stats.LastUpdated = s.now()
	}

	return stats, nil
}

// removeAt must be called with s.mu held.
func (s *noteService) removeAt(ctx context.Context, i int) error {
	id := s.notes[i].ID
	staged := slices.Delete(slices.Clone(s.notes), i, i+1)

	if err := s.commit(ctx, staged); err != nil {
		return err
	}

	s.logger.Debug().Str("note_id", id).Msg("note deleted")
	return nil
}

// commit persists staged and makes it the visible collection. It must be
// called with s.mu held.
func (s *noteService) commit(ctx context.Context, staged []models.Note) error {
	if err := s.persister.Save(ctx, staged); err != nil {
		s.logger.Err(err).Int("count", len(staged)).Msg("failed to persist notes, change discarded")
		return fmt.Errorf("saving notes: %w", err)
	}

	s.notes = staged
	return nil
}

func (s *noteService) indexOf(id string) int {
	return slices.IndexFunc(s.notes, func(n models.Note) bool {
		return n.ID == id
	})
}

func (s *noteService) checkIndex(index int) error {
	if index < 0 || index >= len(s.notes) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(s.notes))
	}
	return nil
}

func noteContains(n models.Note, needle string) bool {
	if strings.Contains(strings.ToLower(n.Title), needle) ||
		strings.Contains(strings.ToLower(n.Content), needle) {
		return true
	}
	return slices.ContainsFunc(n.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), needle)
	})
}
