// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-keeper/internal/client"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

func newRootCommand(info models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:           "notes",
		Short:         "Personal note keeper with an interactive console and an HTTP API",
		SilenceUsage: true,
		Args:          cobra.NoArgs,
	}
	flags := config.RegisterFlags(root.PersistentFlags())

	root.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(flags, info)
		if err != nil {
			return err
		}

		log, err := logger.NewFileLogger("console", cfg.App.LogFile)
		if err != nil {
			log.Warn().Err(err).Msg("console logs go to stderr")
		}

		app, err := client.NewApp(cfg, log, client.WithIO(cmd.InOrStdin(), cmd.OutOrStdout()))
		if err != nil {
			return err
		}
		return app.Console().Run(cmd.Context())
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "web",
			Short: "Serve the HTTP API until interrupted",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				fmt.Fprint(cmd.OutOrStdout(), info.String())

				cfg, err := loadConfig(flags, info)
				if err != nil {
					return err
				}

				log := logger.NewLogger("web")
				log.Debug().Any("config", cfg).Msg("received configs")

				app, err := client.NewApp(cfg, log, client.WithIO(cmd.InOrStdin(), cmd.OutOrStdout()))
				if err != nil {
					return err
				}
				return app.Web().Run(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprint(cmd.OutOrStdout(), info.String())
			},
		},
	)

	return root
}

// loadConfig merges all configuration sources. A release build reports its
// own version unless one is configured explicitly.
func loadConfig(flags *config.Flags, info models.AppBuildInfo) (*config.StructuredConfig, error) {
	cfg, err := config.GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	if cfg.App.Version == config.DefaultVersion && info.IsRelease() {
		cfg.App.Version = info.BuildVersion()
	}
	return cfg, nil
}
