// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the process lifecycle of the notes application.
//
// It opens the configured note store, runs the interactive console over it
// (or over a remote API) and starts the HTTP server when asked to, releasing
// the store on the way out.
package client
