// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of a runnable application mode.
type Client interface {
	// Run starts the application and blocks until it exits or ctx is done.
	Run(ctx context.Context) error
}
