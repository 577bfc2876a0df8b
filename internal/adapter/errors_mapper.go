// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
)

// mapHTTPError turns a non-2xx answer into the service error it stands for,
// so remote and local stores fail the same way.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := responseMessage(resp)

	switch status := resp.StatusCode(); {
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", service.ErrInvalidNote, message)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", service.ErrNoteNotFound, message)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, status, message)
	}
}

// responseMessage prefers the envelope message and falls back to the raw
// body or the status text.
func responseMessage(resp *resty.Response) string {
	var env models.Response[json.RawMessage]
	if err := json.Unmarshal(resp.Body(), &env); err == nil && env.Message != "" {
		return env.Message
	}

	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		return body
	}
	return http.StatusText(resp.StatusCode())
}
