// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the
// application: identifier generation, HTTP response writing and the
// preconfigured outbound HTTP client.
package utils
