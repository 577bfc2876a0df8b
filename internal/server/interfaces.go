// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle of the transport servers managed by this
// package.
type Server interface {
	// RunServer serves until a termination signal arrives and logs the
	// outcome.
	RunServer()

	// Run serves until ctx is done or a termination signal arrives. It
	// returns an error when the address cannot be bound or serving fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
