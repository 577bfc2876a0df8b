// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

func writeSuccess[T any](w http.ResponseWriter, r *http.Request, data T, message string, status int) {
	resp := models.Response[T]{Success: true, Message: message, Data: data}
	if _, err := utils.WriteJSON(w, resp, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// writeError answers with a failed envelope whose status is derived from err.
// action prefixes the error text, e.g. "Failed to create note".
func writeError(w http.ResponseWriter, r *http.Request, err error, action string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := fmt.Sprintf("%s: %v", action, err)
	switch {
	case errors.Is(err, errRouteNotFound):
		message = app.MsgResourceNotFound
	case status == http.StatusNotFound:
		message = app.MsgNoteNotFound
		log.Debug().Err(err).Msg(action)
	case status >= http.StatusInternalServerError:
		log.Err(err).Msg(action)
	default:
		log.Debug().Err(err).Msg(action)
	}

	if _, werr := utils.WriteJSON(w, models.Response[any]{Message: message}, status); werr != nil {
		log.Err(werr).Msg("error writing response")
	}
}
