// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

type Services struct {
	NoteService    NoteService
	AppInfoService AppInfoService
}

// NewServices loads the note store from storages and decorates it with
// request validation.
func NewServices(ctx context.Context, storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger, opts ...NoteServiceOption) (*Services, error) {
	notes, err := NewNoteService(ctx, storages.NotePersister, cfg.Storage, logger, opts...)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		NoteService:    NewNoteValidationService().Wrap(notes),
		AppInfoService: appInfo,
	}, nil
}
