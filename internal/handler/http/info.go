// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, r, "OK", app.MsgServerIsRunning, http.StatusOK)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.NoteService.Stats(r.Context())
	if err != nil {
		writeError(w, r, err, app.MsgFailedToComputeStats)
		return
	}

	writeSuccess(w, r, stats, app.MsgStatsRetrieved, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteText(w, "text/plain; charset=utf-8", []byte(version), http.StatusOK)
}
