// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/models"
)

func strPtr(s string) *string { return &s }

func TestNoteValidator_NewNoteRequest(t *testing.T) {
	v := NewNoteValidator()

	tests := []struct {
		name    string
		req     models.NewNoteRequest
		wantErr string
	}{
		{name: "valid", req: models.NewNoteRequest{Title: "Groceries", Content: "milk", Tags: []string{"home"}}},
		{name: "valid without tags", req: models.NewNoteRequest{Title: "Groceries"}},
		{name: "valid with duplicate tags", req: models.NewNoteRequest{Title: "x", Tags: []string{"a", "a"}}},
		{name: "empty title", req: models.NewNoteRequest{Title: ""}, wantErr: "title must not be blank"},
		{name: "blank title", req: models.NewNoteRequest{Title: "   \t"}, wantErr: "title must not be blank"},
		{name: "empty tag", req: models.NewNoteRequest{Title: "x", Tags: []string{"ok", ""}}, wantErr: "tags[1] must not be blank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNoteValidator_NoteUpdate(t *testing.T) {
	v := NewNoteValidator()

	tests := []struct {
		name    string
		upd     models.NoteUpdate
		wantErr bool
	}{
		{name: "nothing provided", upd: models.NoteUpdate{}},
		{name: "new title", upd: models.NoteUpdate{Title: strPtr("New")}},
		{name: "empty content", upd: models.NoteUpdate{Content: strPtr("")}},
		{name: "clear tags", upd: models.NoteUpdate{Tags: []string{}}},
		{name: "blank title", upd: models.NoteUpdate{Title: strPtr(" ")}, wantErr: true},
		{name: "empty title", upd: models.NoteUpdate{Title: strPtr("")}, wantErr: true},
		{name: "blank tag", upd: models.NoteUpdate{Tags: []string{" "}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), &tt.upd)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidationFailed)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNoteValidator_SearchRequest(t *testing.T) {
	v := NewNoteValidator()

	assert.NoError(t, v.Validate(context.Background(), models.SearchRequest{Query: "milk"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.SearchRequest{Query: ""}), ErrValidationFailed)
}

func TestNoteValidator_PartialFields(t *testing.T) {
	v := NewNoteValidator()

	// only Content is checked, so the empty title is ignored
	req := models.NewNoteRequest{Title: "", Content: "x"}
	assert.NoError(t, v.Validate(context.Background(), req, "Content"))
	assert.Error(t, v.Validate(context.Background(), req, "Title"))
}

func TestNoteValidator_UnsupportedType(t *testing.T) {
	v := NewNoteValidator()

	err := v.Validate(context.Background(), "just a string")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
