// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/footystats/internal/logging"
)

// DefaultSlowRequestThreshold is the latency above which requests are logged.
const DefaultSlowRequestThreshold = time.Second

// SlowRequests logs, at warn level, every request slower than threshold,
// together with its route pattern and query string.
func SlowRequests(threshold time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := &metricsResponseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(wrapper, r)

			duration := time.Since(start)
			if duration <= threshold {
				return
			}
			logging.Ctx(r.Context()).Warn().
				Str("method", r.Method).
				Str("route", routePattern(r)).
				Str("query", logging.SanitizeValue(r.URL.RawQuery)).
				Int("status", wrapper.statusCode).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("threshold_ms", threshold.Milliseconds()).
				Msg("Slow request detected")
		})
	}
}
