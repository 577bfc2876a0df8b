// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandler    = errors.New("no HTTP handler to serve or no address to listen on")
	errNoHTTPServer = errors.New("HTTP server is not configured")
)
