// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/footystats/internal/api"
	"github.com/tomtom215/footystats/internal/cache"
	"github.com/tomtom215/footystats/internal/config"
	"github.com/tomtom215/footystats/internal/database"
	"github.com/tomtom215/footystats/internal/logging"
	"github.com/tomtom215/footystats/internal/supervisor"
	"github.com/tomtom215/footystats/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The default logger is already usable here.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("database", cfg.Database.String()).
		Str("cache", cfg.Cache.Backend).
		Msg("Starting Footystats")

	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pg, err := database.Open(cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open database")
	}

	values, err := cache.NewStore(ctx, cfg.Cache)
	if err != nil {
		_ = pg.Close()
		logging.Fatal().Err(err).Msg("Failed to initialize cache")
	}

	db := database.New(database.NewBreaker(pg, database.DefaultBreakerSettings()), values, cfg.Database.QueryTimeout)

	handler := api.NewHandler(db, cfg.API)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		// Leave room for the HTTP drain.
		ShutdownTimeout: cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(services.NewPoolMonitorService(pg, 0))
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))

	errCh := tree.ServeBackground(ctx)

	// errCh receives exactly one value and is never closed.
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish")
		serveErr = <-errCh
	case serveErr = <-errCh:
		stop()
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	if err := db.Close(); err != nil {
		logging.Err(err).Msg("Failed to close database")
	}
	if err := values.Close(); err != nil {
		logging.Err(err).Msg("Failed to close cache")
	}

	logging.Info().Msg("Footystats stopped")
}
