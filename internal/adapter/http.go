// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	notesPath  = "/api/notes"
	notePath   = "/api/notes/{id}"
	searchPath = "/api/notes/search/{query}"
	statsPath  = "/api/stats"
)

// httpNoteAdapter is a [service.NoteService] served by a running notes API.
//
// Index operations list the remote collection and address the note found at
// that position by id, so another client changing the collection in between
// may shift the target.
type httpNoteAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPNoteAdapter returns a note store backed by the API at
// cfg.HTTPAddress. A missing scheme defaults to http.
func NewHTTPNoteAdapter(cfg config.Adapter, logger *logger.Logger) (service.NoteService, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	logger.Info().Str("base_url", baseURL).Msg("using remote notes API")
	return &httpNoteAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// call executes the request and unwraps the response envelope.
func call[T any](req *resty.Request, method, path string) (T, error) {
	var env models.Response[T]

	resp, err := req.SetResult(&env).Execute(method, path)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %s %s: %w", ErrUnavailable, method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		var zero T
		return zero, err
	}

	return env.Data, nil
}

func (h *httpNoteAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpNoteAdapter) Create(ctx context.Context, req models.NewNoteRequest) (models.Note, error) {
	return call[models.Note](
		h.request(ctx).SetHeader("Content-Type", "application/json").SetBody(req),
		http.MethodPost, notesPath,
	)
}

func (h *httpNoteAdapter) List(ctx context.Context) ([]models.Note, error) {
	notes, err := call[[]models.Note](h.request(ctx), http.MethodGet, notesPath)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

func (h *httpNoteAdapter) Get(ctx context.Context, id string) (models.Note, error) {
	return call[models.Note](h.request(ctx).SetPathParam("id", id), http.MethodGet, notePath)
}

func (h *httpNoteAdapter) GetByIndex(ctx context.Context, index int) (models.Note, error) {
	notes, err := h.List(ctx)
	if err != nil {
		return models.Note{}, err
	}
	if index < 0 || index >= len(notes) {
		return models.Note{}, fmt.Errorf("%w: %d not in [0, %d)", service.ErrIndexOutOfRange, index, len(notes))
	}

	return notes[index], nil
}

func (h *httpNoteAdapter) Search(ctx context.Context, query string) ([]models.Note, error) {
	notes, err := call[[]models.Note](h.request(ctx).SetPathParam("query", query), http.MethodGet, searchPath)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

func (h *httpNoteAdapter) Update(ctx context.Context, id string, upd models.NoteUpdate) (models.Note, error) {
	return call[models.Note](
		h.request(ctx).SetPathParam("id", id).SetHeader("Content-Type", "application/json").SetBody(upd),
		http.MethodPut, notePath,
	)
}

func (h *httpNoteAdapter) Delete(ctx context.Context, id string) (bool, error) {
	_, err := call[any](h.request(ctx).SetPathParam("id", id), http.MethodDelete, notePath)
	switch {
	case errors.Is(err, service.ErrNoteNotFound):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}

func (h *httpNoteAdapter) DeleteByIndex(ctx context.Context, index int) error {
	note, err := h.GetByIndex(ctx, index)
	if err != nil {
		return err
	}

	removed, err := h.Delete(ctx, note.ID)
	if err != nil {
		return err
	}
	if !removed {
		h.logger.Warn().Str("note_id", note.ID).Msg("note vanished before it could be deleted")
		return fmt.Errorf("%w: %d", service.ErrIndexOutOfRange, index)
	}
	return nil
}

func (h *httpNoteAdapter) Count(ctx context.Context) (int, error) {
	notes, err := h.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(notes), nil
}

func (h *httpNoteAdapter) Stats(ctx context.Context) (models.NoteStats, error) {
	return call[models.NoteStats](h.request(ctx), http.MethodGet, statsPath)
}
