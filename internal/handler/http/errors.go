// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidJSON is returned for request bodies that cannot be decoded.
var ErrInvalidJSON = errors.New("invalid JSON was passed")

// errRouteNotFound answers paths, or path and method pairs, the API does
// not serve.
var errRouteNotFound = errors.New("route not found")
