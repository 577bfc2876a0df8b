// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/console"
	"github.com/MKhiriev/go-note-keeper/internal/handler"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/server"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

// App runs one of the application modes over a single configuration.
type App struct {
	cfg    *config.StructuredConfig
	logger *logger.Logger

	in  io.Reader
	out io.Writer

	consoleOpts []console.Option
}

// Option customises an [App].
type Option func(*App)

// WithIO replaces stdin and stdout of the console.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.in = in
		a.out = out
	}
}

// WithConsoleOptions passes options to the console, e.g. a clipboard.
func WithConsoleOptions(opts ...console.Option) Option {
	return func(a *App) {
		a.consoleOpts = append(a.consoleOpts, opts...)
	}
}

func NewApp(cfg *config.StructuredConfig, logger *logger.Logger, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, errNoConfig
	}

	a := &App{
		cfg:    cfg,
		logger: logger,
		in:     os.Stdin,
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Console returns the interactive mode: the menu runs until the user exits,
// and choosing to start the web server hands over to [App.Web] with the
// same store.
func (a *App) Console() Client {
	return clientFunc(a.runConsole)
}

// Web returns the mode serving the HTTP API until interrupted.
func (a *App) Web() Client {
	return clientFunc(a.runWeb)
}

type clientFunc func(ctx context.Context) error

func (f clientFunc) Run(ctx context.Context) error {
	return f(ctx)
}

func (a *App) runConsole(ctx context.Context) error {
	if a.cfg.Adapter.HTTPAddress != "" {
		return a.runRemoteConsole(ctx)
	}

	services, closeStore, err := a.openServices(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	action, err := console.New(services.NoteService, a.in, a.out, a.logger, a.consoleOpts...).Run(ctx)
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}

	if action == console.ActionStartWeb {
		return a.serve(ctx, services)
	}
	return nil
}

func (a *App) runRemoteConsole(ctx context.Context) error {
	remote, err := adapter.NewHTTPNoteAdapter(a.cfg.Adapter, a.logger)
	if err != nil {
		return fmt.Errorf("remote note store: %w", err)
	}
	notes := service.NewNoteValidationService().Wrap(remote)

	a.logger.Info().Str("address", a.cfg.Adapter.HTTPAddress).Msg("console uses a remote API")

	action, err := console.New(notes, a.in, a.out, a.logger, a.consoleOpts...).Run(ctx)
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}

	if action == console.ActionStartWeb {
		return errWebInRemoteMode
	}
	return nil
}

func (a *App) runWeb(ctx context.Context) error {
	services, closeStore, err := a.openServices(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	return a.serve(ctx, services)
}

func (a *App) serve(ctx context.Context, services *service.Services) error {
	handlers, err := handler.NewHandlers(services, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Fprintf(a.out, "Server running on http://%s\n", a.cfg.Server.HTTPAddress)
	return srv.Run(ctx)
}

// openServices loads the configured store. The returned func releases it.
func (a *App) openServices(ctx context.Context) (*service.Services, func(), error) {
	storages, err := store.NewStorages(ctx, a.cfg.Storage, a.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating storages: %w", err)
	}

	closeStore := func() {
		if cerr := storages.Close(); cerr != nil {
			a.logger.Err(cerr).Msg("error closing storages")
		}
	}

	services, err := service.NewServices(ctx, storages, *a.cfg, a.logger)
	if err != nil {
		closeStore()
		return nil, nil, fmt.Errorf("error creating services: %w", err)
	}

	return services, closeStore, nil
}
