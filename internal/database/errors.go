// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package database

import (
	"errors"
	"io"

	"github.com/tomtom215/footystats/internal/logging"
)

var (
	// ErrNotFound is returned by single-row lookups that matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrCircuitOpen is returned while the breaker rejects queries.
	ErrCircuitOpen = errors.New("database circuit breaker is open")
)

// Client-facing messages for rejected requests.
const (
	MsgTeamsRequired   = "Both team1_name and team2_name query parameters are required."
	MsgScorerRequired  = "scorerName query parameter is required."
	MsgCountryRequired = "countryName query parameter is required."
	MsgInvalidMetric   = "Invalid metric specified."
	MsgCountryNotFound = "Country not found or no activity recorded."
)

// ValidationError reports a request that cannot be turned into a query.
// No SQL is issued when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// closeWithLog closes a resource and logs any error
// Use this for cleanup operations where errors should be acknowledged but not fail the operation
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error
// Use this for cleanup operations in error paths where Close() errors are not actionable
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
