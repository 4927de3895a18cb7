// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// TopCountries handles GET /api/top-countries/{metric}.
//
// @Summary Top 10 countries by metric
// @Tags Countries
// @Produce json
// @Param metric path string true "matches, goals, wins, draws, losses or win_ratio"
// @Param continent query string false "Continent (substring, case-insensitive)"
// @Param region_name query string false "Region (substring, case-insensitive)"
// @Param sub_region_name query string false "Sub-region (substring, case-insensitive)"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
func (h *Handler) TopCountries(w http.ResponseWriter, r *http.Request) {
	params, verr := bindTopCountries(chi.URLParam(r, "metric"), r.URL.Query())
	if verr != nil {
		respondBadRequest(w, r, verr.Message())
		return
	}

	rows, err := h.store.TopCountries(r.Context(), params)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, r, rows)
}

// CountryActivity handles GET /api/country-activity. An unknown country is
// a 404 with a { "message" } body.
func (h *Handler) CountryActivity(w http.ResponseWriter, r *http.Request) {
	country, verr := bindCountry(r.URL.Query())
	if verr != nil {
		respondBadRequest(w, r, verr.Message())
		return
	}

	row, err := h.store.CountryActivity(r.Context(), country)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, r, row)
}
