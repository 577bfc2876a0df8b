// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type appInfoService struct {
	version string
}

// NewAppInfoService serves the version reported by /api/version. The
// configured value is trimmed; a blank one is a configuration error.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, fmt.Errorf("%w: %q", ErrVersionIsNotSpecified, cfg.Version)
	}

	log.Debug().Str("version", version).Msg("app version configured")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
