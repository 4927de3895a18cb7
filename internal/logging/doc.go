// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

// Package logging provides centralized zerolog-based structured logging for Footystats.
//
// # Overview
//
// The package provides:
//   - A global zerolog logger configured from LOG_LEVEL, LOG_FORMAT and LOG_CALLER
//   - Request-scoped loggers carrying the request_id set by the API middleware
//   - An slog adapter so the suture supervisor tree logs through zerolog
//   - Sanitizers for user-supplied values written to logs
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})
//
//	logging.Info().Int("port", cfg.Server.Port).Msg("Server listening")
//	logging.Ctx(ctx).Error().Err(err).Str("resource", "match_details").Msg("Query failed")
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send(). Prefer structured fields
// over Msgf. Pass request values through SanitizeValue before logging them.
package logging
