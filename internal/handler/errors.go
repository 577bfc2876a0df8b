// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated means the server config names no HTTP address.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoServices means NewHandlers got no note service to expose.
	errNoServices = errors.New("no services provided to handlers")
)
