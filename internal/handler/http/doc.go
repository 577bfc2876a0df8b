// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the JSON API of the note store.
//
// Every JSON endpoint answers with a [models.Response] envelope. Request
// tracing, access logging, Prometheus metrics, CORS and response compression
// are applied by middleware before a request reaches the note service.
package http
