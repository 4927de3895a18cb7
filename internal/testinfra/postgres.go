// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/tomtom215/footystats/internal/config"
)

const (
	// DefaultPostgresImage is the Postgres image used by integration tests.
	DefaultPostgresImage = "postgres:16-alpine"

	// DefaultPostgresPort is the container-side Postgres port.
	DefaultPostgresPort = "5432/tcp"

	defaultPostgresUser     = "footystats"
	defaultPostgresPassword = "footystats"
	defaultPostgresDatabase = "football"
)

// PostgresContainer is a running Postgres server for tests.
type PostgresContainer struct {
	testcontainers.Container
	Config config.DatabaseConfig
}

// PostgresOption configures the Postgres container.
type PostgresOption func(*postgresConfig)

type postgresConfig struct {
	image        string
	initSQL      []string
	startTimeout time.Duration
}

// WithPostgresImage sets a custom Postgres image.
func WithPostgresImage(image string) PostgresOption {
	return func(c *postgresConfig) {
		c.image = image
	}
}

// WithInitSQL runs the given scripts, in order, once the server accepts
// connections.
func WithInitSQL(scripts ...string) PostgresOption {
	return func(c *postgresConfig) {
		c.initSQL = append(c.initSQL, scripts...)
	}
}

// WithStartTimeout bounds how long to wait for the server to come up.
func WithStartTimeout(timeout time.Duration) PostgresOption {
	return func(c *postgresConfig) {
		c.startTimeout = timeout
	}
}

// NewPostgresContainer starts Postgres and returns its connection settings.
//
//	pg, err := testinfra.NewPostgresContainer(ctx, testinfra.WithInitSQL(schema, seed))
//	if err != nil {
//	    t.Fatal(err)
//	}
//	t.Cleanup(func() { testinfra.CleanupContainer(t, pg.Container) })
//	exec, err := database.Open(pg.Config)
func NewPostgresContainer(ctx context.Context, opts ...PostgresOption) (*PostgresContainer, error) {
	cfg := &postgresConfig{
		image:        DefaultPostgresImage,
		startTimeout: 90 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	req := testcontainers.ContainerRequest{
		Image:        cfg.image,
		ExposedPorts: []string{DefaultPostgresPort},
		Env: map[string]string{
			"POSTGRES_USER":     defaultPostgresUser,
			"POSTGRES_PASSWORD": defaultPostgresPassword,
			"POSTGRES_DB":       defaultPostgresDatabase,
		},
		// The server logs readiness twice: once for the init run, once for real.
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort(DefaultPostgresPort),
		).WithStartupTimeout(cfg.startTimeout),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("create postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, DefaultPostgresPort)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	pg := &PostgresContainer{
		Container: container,
		Config: config.DatabaseConfig{
			User:            defaultPostgresUser,
			Password:        defaultPostgresPassword,
			Host:            host,
			Port:            port.Int(),
			Name:            defaultPostgresDatabase,
			SSLMode:         "disable",
			MaxOpenConns:    4,
			MaxIdleConns:    2,
			ConnMaxLifetime: time.Minute,
			QueryTimeout:    10 * time.Second,
		},
	}

	if len(cfg.initSQL) > 0 {
		if err := pg.Exec(ctx, cfg.initSQL...); err != nil {
			_ = container.Terminate(ctx)
			return nil, err
		}
	}
	return pg, nil
}

// Exec runs SQL scripts against the container's database. Each script may
// hold several statements.
func (p *PostgresContainer) Exec(ctx context.Context, scripts ...string) error {
	db, err := sqlx.ConnectContext(ctx, "postgres", p.Config.DSN())
	if err != nil {
		return fmt.Errorf("connect to postgres container: %w", err)
	}
	defer db.Close()

	for i, script := range scripts {
		if _, err := db.ExecContext(ctx, script); err != nil {
			return fmt.Errorf("init script %d: %w", i, err)
		}
	}
	return nil
}
