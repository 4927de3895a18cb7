// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

// Package testinfra provides container fixtures for integration tests.
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./internal/database/...
//
// # Postgres Container
//
// NewPostgresContainer starts a throwaway Postgres server with
// testcontainers-go and returns a config.DatabaseConfig pointing at it, so
// tests go through the same database.Open path as the server:
//
//	func TestMatchList(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    pg, err := testinfra.NewPostgresContainer(ctx, testinfra.WithInitSQL(schema, seed))
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    t.Cleanup(func() { testinfra.CleanupContainer(t, pg.Container) })
//	    ...
//	}
//
// Tests are skipped when Docker is unavailable. The first run pulls the
// image.
package testinfra
