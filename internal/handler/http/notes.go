// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.NoteService.List(r.Context())
	if err != nil {
		writeError(w, r, err, app.MsgFailedToListNotes)
		return
	}

	writeSuccess(w, r, notes, app.MsgNotesRetrieved, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	note, err := h.services.NoteService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, app.MsgFailedToGetNote)
		return
	}

	writeSuccess(w, r, note, app.MsgNoteRetrieved, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	var req models.NewNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), app.MsgFailedToCreateNote)
		return
	}

	note, err := h.services.NoteService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err, app.MsgFailedToCreateNote)
		return
	}

	writeSuccess(w, r, note, app.MsgNoteCreated, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	var upd models.NoteUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), app.MsgFailedToUpdateNote)
		return
	}

	note, err := h.services.NoteService.Update(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		writeError(w, r, err, app.MsgFailedToUpdateNote)
		return
	}

	writeSuccess(w, r, note, app.MsgNoteUpdated, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	removed, err := h.services.NoteService.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, err, app.MsgFailedToDeleteNote)
		return
	}
	if !removed {
		writeError(w, r, fmt.Errorf("%w: %s", service.ErrNoteNotFound, id), app.MsgFailedToDeleteNote)
		return
	}

	writeSuccess[any](w, r, nil, app.MsgNoteDeleted, http.StatusOK)
}

func (h *Handler) searchNotes(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")
	// chi hands back the escaped segment when the path needed RawPath
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(query); err == nil {
			query = unescaped
		}
	}

	notes, err := h.services.NoteService.Search(r.Context(), query)
	if err != nil {
		writeError(w, r, err, app.MsgFailedToSearchNotes)
		return
	}

	writeSuccess(w, r, notes, app.MsgSearchResults, http.StatusOK)
}

// renderNote serves the note as an HTML fragment, its content rendered as
// Markdown. Raw HTML inside the content is not passed through.
func (h *Handler) renderNote(w http.ResponseWriter, r *http.Request) {
	note, err := h.services.NoteService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, app.MsgFailedToRenderNote)
		return
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<h1>%s</h1>\n", html.EscapeString(note.Title))
	if err = h.markdown.Convert([]byte(note.Content), &buf); err != nil {
		writeError(w, r, err, app.MsgFailedToRenderNote)
		return
	}

	utils.WriteText(w, "text/html; charset=utf-8", buf.Bytes(), http.StatusOK)
}
