// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

/*
Package middleware provides the service's own HTTP middleware.

CORS, rate limiting, compression, panic recovery and real-IP handling come
from chi, go-chi/cors and go-chi/httprate and are assembled in the api
package. This package adds:

  - RequestID: reuses or generates X-Request-ID and stores it for logging.Ctx
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled by
    chi route pattern so path parameters do not explode cardinality
  - SlowRequests: warn-level log line for requests over a latency threshold

All three have the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.SlowRequests(middleware.DefaultSlowRequestThreshold))
*/
package middleware
