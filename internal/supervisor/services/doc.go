// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

// Package services adapts long-running components to suture.Service.
//
//   - HTTPServerService: *http.Server with graceful drain on shutdown
//   - PoolMonitorService: periodic connection pool gauges
package services
