// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the variables named by the `env` and `envPrefix` tags of
// [StructuredConfig], e.g. STORAGE_FILE_PATH or SERVER_REQUEST_TIMEOUT.
// Unset variables leave their fields zero so lower-priority sources show
// through after merging.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
