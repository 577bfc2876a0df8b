// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrUnavailable wraps transport failures talking to the remote API.
	ErrUnavailable = errors.New("notes API unavailable")

	// ErrInternalServerError is returned when the remote API answers 5xx.
	ErrInternalServerError = errors.New("notes API internal error")

	// ErrUnexpectedStatus covers any other non-2xx answer.
	ErrUnexpectedStatus = errors.New("unexpected response status")
)
