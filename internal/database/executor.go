// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/tomtom215/footystats/internal/config"
	"github.com/tomtom215/footystats/internal/database/query"
	"github.com/tomtom215/footystats/internal/logging"
)

// connectTimeout bounds the initial ping in Open.
const connectTimeout = 5 * time.Second

// Executor runs parameterized SQL and returns every row as a column map.
// DB holds one instead of a package-level pool so that query assembly can be
// tested against a fake.
type Executor interface {
	Query(ctx context.Context, sql string, args ...interface{}) ([]query.Row, error)
	Ping(ctx context.Context) error
	Close() error
}

// Postgres is the production Executor backed by a lib/pq connection pool.
type Postgres struct {
	db *sqlx.DB
}

// Open creates the connection pool and verifies it with a ping.
func Open(cfg config.DatabaseConfig) (*Postgres, error) {
	db, err := sqlx.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.String(), err)
	}

	logging.Info().
		Str("database", cfg.String()).
		Int("max_open_conns", cfg.MaxOpenConns).
		Msg("Connected to Postgres")

	return &Postgres{db: db}, nil
}

// Query executes sqlText and scans every row with MapScan.
func (p *Postgres) Query(ctx context.Context, sqlText string, args ...interface{}) ([]query.Row, error) {
	rows, err := p.db.QueryxContext(ctx, sqlText, args...)
	if err != nil {
		return nil, err
	}
	defer closeWithLog(rows, "rows")

	out := []query.Row{}
	for rows.Next() {
		row := make(map[string]interface{})
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, normalizeRow(row))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats reports connection pool statistics.
func (p *Postgres) Stats() sql.DBStats {
	return p.db.Stats()
}

// Ping checks that a connection can be acquired.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close closes the pool, waiting for in-flight queries to finish.
func (p *Postgres) Close() error {
	return p.db.Close()
}

// normalizeRow converts the []byte values lib/pq returns for text and
// numeric columns into strings so they serialize as JSON strings rather
// than base64.
func normalizeRow(row map[string]interface{}) query.Row {
	for k, v := range row {
		if b, ok := v.([]byte); ok {
			row[k] = string(b)
		}
	}
	return query.Row(row)
}
