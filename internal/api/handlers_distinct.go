// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package api

import (
	"net/http"

	"github.com/tomtom215/footystats/internal/database"
)

// Distinct returns a handler for one distinct-value list, served as a bare
// JSON array. Only the scorers list reads q.
func (h *Handler) Distinct(kind database.DistinctKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := h.store.Distinct(r.Context(), kind, r.URL.Query().Get("q"))
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondValues(w, r, values)
	}
}
