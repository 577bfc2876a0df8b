// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteValidationService rejects malformed requests with [ErrInvalidNote]
// before they reach the wrapped [NoteService].
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) Create(ctx context.Context, req models.NewNoteRequest) (models.Note, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidNote, err)
	}

	return v.inner.Create(ctx, req)
}

func (v *NoteValidationService) List(ctx context.Context) ([]models.Note, error) {
	return v.inner.List(ctx)
}

func (v *NoteValidationService) Get(ctx context.Context, id string) (models.Note, error) {
	return v.inner.Get(ctx, id)
}

func (v *NoteValidationService) GetByIndex(ctx context.Context, index int) (models.Note, error) {
	return v.inner.GetByIndex(ctx, index)
}

func (v *NoteValidationService) Search(ctx context.Context, query string) ([]models.Note, error) {
	if err := v.validator.Validate(ctx, models.SearchRequest{Query: query}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNote, err)
	}

	return v.inner.Search(ctx, query)
}

func (v *NoteValidationService) Update(ctx context.Context, id string, upd models.NoteUpdate) (models.Note, error) {
	if err := v.validator.Validate(ctx, upd); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidNote, err)
	}

	return v.inner.Update(ctx, id, upd)
}

func (v *NoteValidationService) Delete(ctx context.Context, id string) (bool, error) {
	return v.inner.Delete(ctx, id)
}

func (v *NoteValidationService) DeleteByIndex(ctx context.Context, index int) error {
	return v.inner.DeleteByIndex(ctx, index)
}

func (v *NoteValidationService) Count(ctx context.Context) (int, error) {
	return v.inner.Count(ctx)
}

func (v *NoteValidationService) Stats(ctx context.Context) (models.NoteStats, error) {
	return v.inner.Stats(ctx)
}

func (v *NoteValidationService) Wrap(wrapper NoteService) NoteService {
	v.inner = wrapper
	return v
}
