// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto at
package initialization and exposed by the API router at /metrics.

# Available Metrics

Database Metrics:
  - footystats_db_query_duration_seconds: Query execution time (histogram)
    Labels: operation (page, count, select, ping), resource
  - footystats_db_query_errors_total: Failed queries (counter)
    Labels: operation, resource, error_type (truncated to 50 chars)
  - footystats_db_rows_returned: Rows per query (histogram)
  - footystats_db_open_connections: Open pool connections (gauge)

API Metrics:
  - footystats_api_requests_total: Requests (counter)
    Labels: method, endpoint (chi route pattern), status_code
  - footystats_api_request_duration_seconds: Request latency (histogram)
  - footystats_api_active_requests: In-flight requests (gauge)
  - footystats_api_rate_limit_hits_total: Rate limited requests (counter)

Cache Metrics:
  - footystats_cache_hits_total / footystats_cache_misses_total
    Labels: backend (memory, redis)
  - footystats_cache_errors_total: Backend failures (counter)
  - footystats_cache_evictions_total: TTL expiries (counter)

Circuit Breaker Metrics:
  - footystats_circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - footystats_circuit_breaker_requests_total: Labels name, result
  - footystats_circuit_breaker_state_transitions_total

# Usage Example

	start := time.Now()
	rows, err := exec.Query(ctx, plan.SQL, plan.Args...)
	metrics.RecordDBQuery("page", string(plan.Resource), time.Since(start), err)

# Thread Safety

All recording functions are safe for concurrent use.
*/
package metrics
