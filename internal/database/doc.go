// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

// Package database assembles and executes the read-only Postgres queries
// behind the Footystats API.
//
// # Overview
//
// DB is the single entry point used by the HTTP handlers. It owns no
// connection pool of its own: queries go through an injected Executor, which
// in production is a Postgres pool (sqlx + lib/pq) wrapped in a Breaker
// (sony/gobreaker). Tests substitute an in-memory fake and assert on the SQL
// text and bound values.
//
// # Organization
//
//   - database.go: DB, query execution, concurrent data + count paging
//   - executor.go: Executor interface and the Postgres implementation
//   - breaker.go: circuit breaker decorator
//   - views.go: the generic view dispatcher (SELECT DISTINCT * FROM view)
//   - matches.go: head-to-head, match list, country W/D/L timeline
//   - goals.go: goal timing, player goal search, player goal timeline
//   - countries.go: top countries by metric, country activity
//   - distinct.go: cached distinct-value lists
//
// Clause building (filters, sort, pagination, allow-lists) lives in the
// query subpackage.
//
// # SQL Safety
//
// Column names reach SQL text only from allow-lists or constants in this
// package. Every user-supplied value is a bound parameter. Each Plan is
// checked with query.Plan.Validate before it is sent.
//
// # Errors
//
//   - *ValidationError: a required parameter is missing or the metric is
//     unknown; no query was issued
//   - ErrNotFound: a single-row lookup matched nothing
//   - ErrCircuitOpen: the breaker is rejecting queries
//
// Anything else is a driver error, already logged with its SQL and values.
//
// # Usage Example
//
//	pg, err := database.Open(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	db := database.New(database.NewBreaker(pg, database.DefaultBreakerSettings()),
//	    store, cfg.Database.QueryTimeout)
//
//	page, err := db.QueryView(ctx, query.ResourceMatchDetails,
//	    query.FilterSpecFromValues(r.URL.Query()), r.URL.Query().Get("sort"),
//	    query.ParsePage(limit, offset, 50, 1000))
package database
