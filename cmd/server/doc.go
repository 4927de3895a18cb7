// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

/*
Package main is the entry point for the Footystats server.

Footystats serves read-only statistics over a PostgreSQL database of
international football results, goalscorers and countries. Every endpoint is a
GET under /api; Prometheus metrics are served at /metrics.

# Application Architecture

	RootSupervisor ("footystats")
	├── DataSupervisor ("data-layer")
	│   └── Pool monitor (connection pool gauges)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: koanf with defaults, config.yaml, .env and environment variables
 2. Logging: zerolog, bridged to slog for the supervisor
 3. Database: sqlx over lib/pq, wrapped in a gobreaker circuit breaker
 4. Cache: distinct-value lists in memory or Redis
 5. HTTP: chi router with CORS, httprate and Prometheus middleware

# Configuration

The database is configured with the same variables the historical deployment
used:

	DB_USER, DB_PASSWORD, DB_HOST, DB_PORT, DB_DATABASE, DB_SSLMODE

Other common variables are PORT (default 3001), CACHE_BACKEND (memory, redis
or none), REDIS_ADDR, CORS_ORIGINS and LOG_LEVEL. A config.yaml is read when
present.

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server stops
accepting connections and drains in-flight requests for
SHUTDOWN_TIMEOUT, then the database pool and cache are closed.

# Example Usage

	export DB_HOST=localhost DB_USER=postgres DB_PASSWORD=secret DB_DATABASE=football
	./footystats
	curl 'http://localhost:3001/api/head-to-head?team1_name=England&team2_name=Scotland'
*/
package main
