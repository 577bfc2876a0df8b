// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:   http.StatusBadRequest,
	errRouteNotFound: http.StatusNotFound,

	service.ErrInvalidNote:     http.StatusBadRequest,
	service.ErrNoteNotFound:    http.StatusNotFound,
	service.ErrIndexOutOfRange: http.StatusNotFound,

	store.ErrPersistence:  http.StatusInternalServerError,
	store.ErrCorruptStore: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
