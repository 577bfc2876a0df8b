// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/handler"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger

	// ready is closed once the listener is bound; addr is valid after that.
	ready chan struct{}
	addr  net.Addr
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoHandler
	}

	return newServer(handlers.HTTP.Init(), cfg, logger), nil
}

func newServer(h http.Handler, cfg config.Server, logger *logger.Logger) *server {
	return &server{
		httpServer: newHTTPServer(h, cfg, logger),
		logger:     logger,
		ready:      make(chan struct{}),
	}
}

func (s *server) RunServer() {
	if err := s.Run(context.Background()); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

func (s *server) Run(ctx context.Context) error {
	if s.httpServer == nil {
		return errNoHTTPServer
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	ln, err := s.httpServer.listen()
	if err != nil {
		return err
	}
	s.addr = ln.Addr()
	close(s.ready)

	s.logger.Info().Str("address", s.addr.String()).Msg("Launching HTTP server")

	served := make(chan error, 1)
	go func() {
		served <- s.httpServer.serve(ln)
	}()

	select {
	case err = <-served:
		return err
	case <-ctx.Done():
	}

	s.Shutdown()
	if err = <-served; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
