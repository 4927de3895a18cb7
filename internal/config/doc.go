// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

/*
Package config provides centralized configuration management for Footystats.

Configuration is layered with Koanf v2. A .env file in the working directory
is read first with godotenv (existing variables are never overridden), then
built-in defaults, an optional YAML file (CONFIG_PATH or ./config.yaml), and
finally the process environment.

# Environment Variables

Server:
  - PORT: Listen port (default: 3001)
  - HOST: Bind address (default: 0.0.0.0)
  - SHUTDOWN_TIMEOUT: Graceful drain (default: 10s)

Database (Postgres):
  - DB_USER, DB_PASSWORD (default: postgres / root)
  - DB_HOST, DB_PORT (default: localhost / 5432)
  - DB_DATABASE (default: MYE030)
  - DB_SSLMODE (default: disable)
  - DB_MAX_OPEN_CONNS (default: 10)
  - DB_QUERY_TIMEOUT (default: 30s)

API:
  - API_DEFAULT_PAGE_SIZE (default: 50)
  - API_MAX_PAGE_SIZE (default: 1000)

Cache:
  - CACHE_BACKEND: memory, redis or none (default: memory)
  - CACHE_TTL (default: 10m)
  - REDIS_ADDR, REDIS_PASSWORD, REDIS_DB

Security:
  - CORS_ORIGINS: comma-separated (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW (default: 1000 per 1m)
  - DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage Example

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Invalid configuration")
	}
	db, err := database.Open(cfg.Database)

# Thread Safety

Config is immutable after Load returns and is safe for concurrent reads.
*/
package config
