// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
)

// ── test doubles ──────────────────────────────────────────────────────────────

// tickClock returns base, base+1s, base+2s, ... on successive calls.
type tickClock struct {
	mu   sync.Mutex
	next time.Time
}

func newTickClock() *tickClock {
	return &tickClock{next: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *tickClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.next
	c.next = c.next.Add(time.Second)
	return t
}

// seqIDs yields note-1, note-2, ...
type seqIDs struct {
	n atomic.Int64
}

func (g *seqIDs) Generate() string {
	return fmt.Sprintf("note-%d", g.n.Add(1))
}

// memoryPersister keeps the last saved collection in memory.
type memoryPersister struct {
	mu      sync.Mutex
	notes   []models.Note
	saves   int
	saveErr error
}

func (p *memoryPersister) Load(ctx context.Context) ([]models.Note, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return models.CloneNotes(p.notes), nil
}

func (p *memoryPersister) Save(ctx context.Context, notes []models.Note) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.saveErr != nil {
		return p.saveErr
	}
	p.saves++
	p.notes = models.CloneNotes(notes)
	return nil
}

func (p *memoryPersister) snapshot() []models.Note {
	p.mu.Lock()
	defer p.mu.Unlock()
	return models.CloneNotes(p.notes)
}

func testOptions() []service.NoteServiceOption {
	return []service.NoteServiceOption{
		service.WithClock(newTickClock().Now),
		service.WithIDGenerator(&seqIDs{}),
	}
}

func ids(notes []models.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.ID
	}
	return out
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
