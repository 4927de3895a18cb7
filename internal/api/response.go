// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/footystats/internal/database/query"
	"github.com/tomtom215/footystats/internal/logging"
)

// DataResponse wraps non-paginated results.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// ErrorResponse is the body of 400, 500 and 503 responses. Details is
// omitted for client errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is the body of the welcome and not-found responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse is the body of the health endpoints.
type StatusResponse struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime,omitempty"`
}

// respondJSON sends a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.CtxErr(r.Context(), err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.CtxErr(r.Context(), err).Msg("Failed to write JSON response")
	}
}

// respondData sends { "data": ... }. A nil row slice is sent as [].
func respondData(w http.ResponseWriter, r *http.Request, data interface{}) {
	if rows, ok := data.([]query.Row); ok && rows == nil {
		data = []query.Row{}
	}
	respondJSON(w, r, http.StatusOK, DataResponse{Data: data})
}

// respondPage sends the paginated envelope.
func respondPage(w http.ResponseWriter, r *http.Request, page *query.ResultPage) {
	respondJSON(w, r, http.StatusOK, page)
}

// respondValues sends a bare JSON array.
func respondValues(w http.ResponseWriter, r *http.Request, values []interface{}) {
	if values == nil {
		values = []interface{}{}
	}
	respondJSON(w, r, http.StatusOK, values)
}

// respondBadRequest sends { "error": message } with 400.
func respondBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	respondJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: message})
}
