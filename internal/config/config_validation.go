// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// applyDefaults fills every setting left empty by all sources.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.LogFile == "" {
		cfg.App.LogFile = DefaultLogFilePath
	}
	if cfg.Storage.File.Path == "" {
		cfg.Storage.File.Path = DefaultNotesFilePath
	}
	if cfg.Storage.OnCorrupt == "" {
		cfg.Storage.OnCorrupt = CorruptPolicyBackup
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultServerRequestTimeout
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterRequestTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.OnCorrupt {
	case CorruptPolicyBackup, CorruptPolicyFail:
	default:
		return fmt.Errorf("%w: unknown on-corrupt policy %q", ErrInvalidStorageConfigs, cfg.Storage.OnCorrupt)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if cfg.Adapter.HTTPAddress != "" {
		if _, err := url.Parse(cfg.Adapter.HTTPAddress); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
		}
	}

	return nil
}
