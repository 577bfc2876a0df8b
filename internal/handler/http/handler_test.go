// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testAPI struct {
	notes   *mock.MockNoteService
	appInfo *mock.MockAppInfoService
	router  http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	return newTestAPIWithLogger(t, logger.Nop())
}

func newTestAPIWithLogger(t *testing.T, log *logger.Logger) *testAPI {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := &testAPI{
		notes:   mock.NewMockNoteService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	h := NewHandler(&service.Services{NoteService: api.notes, AppInfoService: api.appInfo}, log)
	api.router = h.Init()
	return api
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func sampleNote(id string) models.Note {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return models.NewNote(id, "Groceries", "milk, eggs", []string{"home"}, at)
}

// ── health, version, stats ───────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Server is running", env.Message)
	assert.JSONEq(t, `"OK"`, string(env.Data))
}

func TestGetServerVersion(t *testing.T) {
	api := newTestAPI(t)
	api.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := api.do(http.MethodGet, "/api/version", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestStats(t *testing.T) {
	api := newTestAPI(t)
	last := time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)
	api.notes.EXPECT().Stats(gomock.Any()).Return(models.NoteStats{TotalNotes: 4, TotalTags: 2, LastUpdated: last}, nil)

	rec := api.do(http.MethodGet, "/api/stats", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"total_notes":4,"total_tags":2,"last_updated":"2026-03-02T08:30:00Z"}`, string(env.Data))
}

// ── notes CRUD ───────────────────────────────────────────────────────────────

func TestListNotes(t *testing.T) {
	api := newTestAPI(t)
	api.notes.EXPECT().List(gomock.Any()).Return([]models.Note{sampleNote("a"), sampleNote("b")}, nil)

	rec := api.do(http.MethodGet, "/api/notes", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Notes retrieved successfully", env.Message)

	var notes []models.Note
	require.NoError(t, json.Unmarshal(env.Data, &notes))
	require.Len(t, notes, 2)
	assert.Equal(t, "a", notes[0].ID)
}

func TestListNotes_EmptyIsArray(t *testing.T) {
	api := newTestAPI(t)
	api.notes.EXPECT().List(gomock.Any()).Return([]models.Note{}, nil)

	env := decodeEnvelope(t, api.do(http.MethodGet, "/api/notes", ""))
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestGetNote(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantSuccess bool
		wantMessage string
	}{
		{name: "found", wantStatus: http.StatusOK, wantSuccess: true, wantMessage: "Note retrieved successfully"},
		{name: "not found", err: fmt.Errorf("%w: x", service.ErrNoteNotFound), wantStatus: http.StatusNotFound, wantMessage: "Note not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			note := sampleNote("x")
			if tt.err != nil {
				note = models.Note{}
			}
			api.notes.EXPECT().Get(gomock.Any(), "x").Return(note, tt.err)

			rec := api.do(http.MethodGet, "/api/notes/x", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Equal(t, tt.wantSuccess, env.Success)
			assert.Equal(t, tt.wantMessage, env.Message)
			if tt.err != nil {
				assert.Equal(t, "null", string(env.Data))
			}
		})
	}
}

func TestCreateNote(t *testing.T) {
	api := newTestAPI(t)
	want := models.NewNoteRequest{Title: "Groceries", Content: "milk, eggs", Tags: []string{"home"}}
	api.notes.EXPECT().Create(gomock.Any(), want).Return(sampleNote("new"), nil)

	rec := api.do(http.MethodPost, "/api/notes", `{"title":"Groceries","content":"milk, eggs","tags":["home"]}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Note created successfully", env.Message)

	var note models.Note
	require.NoError(t, json.Unmarshal(env.Data, &note))
	assert.Equal(t, "new", note.ID)
}

func TestCreateNote_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "invalid json", body: `{"title":`, wantStatus: http.StatusBadRequest},
		{name: "validation", body: `{"title":""}`, serviceErr: fmt.Errorf("%w: title must not be blank", service.ErrInvalidNote), wantStatus: http.StatusBadRequest},
		{name: "persistence", body: `{"title":"t"}`, serviceErr: fmt.Errorf("saving notes: %w", store.ErrPersistence), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			if tt.serviceErr != nil {
				api.notes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Note{}, tt.serviceErr)
			}

			rec := api.do(http.MethodPost, "/api/notes", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.True(t, strings.HasPrefix(env.Message, "Failed to create note: "), env.Message)
			assert.Equal(t, "null", string(env.Data))
		})
	}
}

func TestUpdateNote_DecodesOptionalFields(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		check func(t *testing.T, upd models.NoteUpdate)
	}{
		{
			name: "content only",
			body: `{"content":"milk, eggs, bread"}`,
			check: func(t *testing.T, upd models.NoteUpdate) {
				assert.Nil(t, upd.Title)
				require.NotNil(t, upd.Content)
				assert.Equal(t, "milk, eggs, bread", *upd.Content)
				assert.Nil(t, upd.Tags)
			},
		},
		{
			name: "clear tags",
			body: `{"tags":[]}`,
			check: func(t *testing.T, upd models.NoteUpdate) {
				require.NotNil(t, upd.Tags)
				assert.Empty(t, upd.Tags)
			},
		},
		{
			name: "empty object",
			body: `{}`,
			check: func(t *testing.T, upd models.NoteUpdate) {
				assert.Equal(t, models.NoteUpdate{}, upd)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.notes.EXPECT().Update(gomock.Any(), "x", gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, upd models.NoteUpdate) (models.Note, error) {
					tt.check(t, upd)
					return sampleNote("x"), nil
				})

			rec := api.do(http.MethodPut, "/api/notes/x", tt.body)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "Note updated successfully", decodeEnvelope(t, rec).Message)
		})
	}
}

func TestUpdateNote_Errors(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPut, "/api/notes/x", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	api.notes.EXPECT().Update(gomock.Any(), "missing", gomock.Any()).Return(models.Note{}, service.ErrNoteNotFound)
	rec = api.do(http.MethodPut, "/api/notes/missing", `{"title":"t"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Note not found", decodeEnvelope(t, rec).Message)
}

func TestDeleteNote(t *testing.T) {
	tests := []struct {
		name       string
		removed    bool
		err        error
		wantStatus int
	}{
		{name: "removed", removed: true, wantStatus: http.StatusOK},
		{name: "missing", removed: false, wantStatus: http.StatusNotFound},
		{name: "persistence failure", err: store.ErrPersistence, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.notes.EXPECT().Delete(gomock.Any(), "x").Return(tt.removed, tt.err)

			rec := api.do(http.MethodDelete, "/api/notes/x", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Equal(t, tt.wantStatus == http.StatusOK, env.Success)
			assert.Equal(t, "null", string(env.Data))
		})
	}
}

func TestSearchNotes(t *testing.T) {
	api := newTestAPI(t)
	api.notes.EXPECT().Search(gomock.Any(), "milk eggs").Return([]models.Note{sampleNote("a")}, nil)

	rec := api.do(http.MethodGet, "/api/notes/search/milk%20eggs", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Search results", env.Message)

	var notes []models.Note
	require.NoError(t, json.Unmarshal(env.Data, &notes))
	assert.Len(t, notes, 1)
}

func TestRenderNote(t *testing.T) {
	api := newTestAPI(t)
	note := sampleNote("x")
	note.Title = "a & b"
	note.Content = "**bold** and <script>alert(1)</script>"
	api.notes.EXPECT().Get(gomock.Any(), "x").Return(note, nil)

	rec := api.do(http.MethodGet, "/api/notes/x/html", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "<h1>a &amp; b</h1>")
	assert.Contains(t, body, "<strong>bold</strong>")
	assert.NotContains(t, body, "<script>")
}

func TestRenderNote_NotFound(t *testing.T) {
	api := newTestAPI(t)
	api.notes.EXPECT().Get(gomock.Any(), "x").Return(models.Note{}, service.ErrNoteNotFound)

	rec := api.do(http.MethodGet, "/api/notes/x/html", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)
}

// ── routing ──────────────────────────────────────────────────────────────────

func TestRouting_UnknownPathsAndMethods(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/nope"},
		{http.MethodPost, "/health"},
		{http.MethodPatch, "/api/notes/x"},
		{http.MethodDelete, "/api/notes"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			api := newTestAPI(t)

			rec := api.do(tt.method, tt.path, "")

			assert.Equal(t, http.StatusNotFound, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, "Resource not found", env.Message)
		})
	}
}

// ── middleware ───────────────────────────────────────────────────────────────

func TestTraceID(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/health", "")
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec = httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}

func TestAccessLog(t *testing.T) {
	buf := &bytes.Buffer{}
	api := newTestAPIWithLogger(t, &logger.Logger{Logger: zerolog.New(buf)})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(traceIDHeader, "trace-7")
	api.router.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"trace_id":"trace-7"`)
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"route":"/health"`)
	assert.Contains(t, out, `"status":200`)
}

func TestCORS(t *testing.T) {
	api := newTestAPI(t)

	preflight := httptest.NewRequest(http.MethodOptions, "/api/notes", nil)
	preflight.Header.Set("Origin", "http://example.com")
	preflight.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, preflight)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "3600", rec.Header().Get("Access-Control-Max-Age"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://example.com")
	rec = httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestGZip(t *testing.T) {
	api := newTestAPI(t)
	api.notes.EXPECT().Create(gomock.Any(), models.NewNoteRequest{Title: "zipped"}).Return(sampleNote("z"), nil)

	var body bytes.Buffer
	zw := gzip.NewWriter(&body)
	_, err := zw.Write([]byte(`{"title":"zipped"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/notes", &body)
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.True(t, env.Success)
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader("plain"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetrics(t *testing.T) {
	api := newTestAPI(t)
	api.notes.EXPECT().Count(gomock.Any()).Return(3, nil).AnyTimes()

	api.do(http.MethodGet, "/health", "")
	api.do(http.MethodGet, "/health", "")

	rec := api.do(http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `notes_http_requests_total{method="GET",route="/health",status="200"} 2`)
	assert.Contains(t, body, "notes_stored 3")
	assert.Contains(t, body, "notes_http_request_duration_seconds")
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}
	assert.Equal(t, http.StatusOK, rw.statusOrOK())

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusOK)
	_, err := rw.Write([]byte("abc"))
	require.NoError(t, err)
	_, err = rw.Write([]byte("de"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, rw.statusOrOK())
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, 5, rw.size)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("wrap: %w", service.ErrInvalidNote), http.StatusBadRequest},
		{fmt.Errorf("wrap: %w", ErrInvalidJSON), http.StatusBadRequest},
		{fmt.Errorf("wrap: %w", service.ErrNoteNotFound), http.StatusNotFound},
		{service.ErrIndexOutOfRange, http.StatusNotFound},
		{errRouteNotFound, http.StatusNotFound},
		{fmt.Errorf("wrap: %w", store.ErrPersistence), http.StatusInternalServerError},
		{store.ErrCorruptStore, http.StatusInternalServerError},
		{fmt.Errorf("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFromError(tt.err), tt.err.Error())
	}
}
