// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP API until it is cancelled or the process
// receives a termination signal, then shuts it down gracefully.
package server
