// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package api

import (
	"net/http"
)

// HeadToHead handles GET /api/head-to-head.
//
// @Summary Every meeting between two teams
// @Tags Matches
// @Produce json
// @Param team1_name query string true "First team (exact name, case-insensitive)"
// @Param team2_name query string true "Second team (exact name, case-insensitive)"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
func (h *Handler) HeadToHead(w http.ResponseWriter, r *http.Request) {
	params, verr := bindHeadToHead(r.URL.Query())
	if verr != nil {
		respondBadRequest(w, r, verr.Message())
		return
	}

	rows, err := h.store.HeadToHead(r.Context(), params)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, r, rows)
}

// MatchList handles GET /api/match-list.
//
// @Summary Search matches
// @Tags Matches
// @Produce json
// @Param homeTeam query string false "Home team"
// @Param awayTeam query string false "Away team"
// @Param team query string false "Either side"
// @Success 200 {object} query.ResultPage
func (h *Handler) MatchList(w http.ResponseWriter, r *http.Request) {
	result, err := h.store.MatchList(r.Context(), h.bindMatchList(r.URL.Query()))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondPage(w, r, result)
}

// CountryWDLTimeline handles GET /api/country-wdl-timeline.
func (h *Handler) CountryWDLTimeline(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	country, verr := bindCountry(values)
	if verr != nil {
		respondBadRequest(w, r, verr.Message())
		return
	}

	rows, err := h.store.CountryWDLTimeline(r.Context(), country, yearRange(values))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, r, rows)
}
