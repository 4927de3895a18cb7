// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/footystats/internal/logging"
)

// DefaultDrainTimeout bounds how long shutdown waits for in-flight requests.
const DefaultDrainTimeout = 10 * time.Second

// HTTPServer is the lifecycle surface of *http.Server.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs an HTTP server under suture.
//
// Serve starts ListenAndServe in a goroutine and waits for either context
// cancellation or a server error. On cancellation it stops accepting
// connections and drains in-flight requests for up to drainTimeout.
//
//	server := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
//	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Addr(), cfg.Server.ShutdownTimeout))
type HTTPServerService struct {
	server       HTTPServer
	addr         string
	drainTimeout time.Duration
}

// NewHTTPServerService creates a new HTTP server service wrapper. addr is
// only used in log lines.
func NewHTTPServerService(server HTTPServer, addr string, drainTimeout time.Duration) *HTTPServerService {
	if drainTimeout <= 0 {
		drainTimeout = DefaultDrainTimeout
	}
	return &HTTPServerService{
		server:       server,
		addr:         addr,
		drainTimeout: drainTimeout,
	}
}

// Serve implements suture.Service. It returns the server error if the
// listener fails, ctx.Err() after a clean drain, or a shutdown error if
// requests did not finish within the drain timeout.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logging.Info().Str("addr", h.addr).Msg("HTTP server listening")

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		logging.Info().Dur("drain_timeout", h.drainTimeout).Msg("HTTP server draining in-flight requests")

		// The original context is already canceled.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.drainTimeout)
		defer cancel()

		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}

		<-errCh
		logging.Info().Msg("HTTP server stopped")
		return ctx.Err()
	}
}

// String implements fmt.Stringer for suture's log messages.
func (h *HTTPServerService) String() string {
	return "http-server"
}
