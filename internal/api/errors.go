// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/footystats/internal/database"
	"github.com/tomtom215/footystats/internal/logging"
)

// Error categories sent in the "error" field of server-side failures.
const (
	categoryInternal    = "Internal Server Error"
	categoryUnavailable = "Service Unavailable"
)

// respondError maps an error from the store to its HTTP response. The store
// has already logged the SQL and arguments of failed executions.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case database.IsValidation(err):
		// Plan builders return validation errors unwrapped.
		respondBadRequest(w, r, err.Error())

	case errors.Is(err, database.ErrNotFound):
		respondJSON(w, r, http.StatusNotFound, MessageResponse{Message: database.MsgCountryNotFound})

	case errors.Is(err, database.ErrCircuitOpen):
		respondJSON(w, r, http.StatusServiceUnavailable, ErrorResponse{
			Error:   categoryUnavailable,
			Details: err.Error(),
		})

	case errors.Is(err, context.Canceled) && r.Context().Err() != nil:
		// Client went away; nobody reads the body.
		logging.Ctx(r.Context()).Debug().Str("path", r.URL.Path).Msg("Request canceled by client")
		w.WriteHeader(statusClientClosedRequest)

	default:
		respondJSON(w, r, http.StatusInternalServerError, ErrorResponse{
			Error:   categoryInternal,
			Details: err.Error(),
		})
	}
}

// statusClientClosedRequest is the nginx convention for a request the client
// abandoned. It only shows up in metrics and access logs.
const statusClientClosedRequest = 499
