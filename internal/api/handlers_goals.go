// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package api

import (
	"net/http"
)

// GoalTiming handles GET /api/goal-timing.
func (h *Handler) GoalTiming(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.GoalTiming(r.Context(), bindGoalTiming(r.URL.Query()))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, r, rows)
}

// PlayerGoals handles GET /api/player-goals. scorerName is optional here;
// without it every goal matches. The default page size is 100.
//
// @Summary Search individual goals
// @Tags Goals
// @Produce json
// @Param scorerName query string false "Scorer (substring, case-insensitive)"
// @Param tournament query string false "Tournament (substring, case-insensitive)"
// @Success 200 {object} query.ResultPage
func (h *Handler) PlayerGoals(w http.ResponseWriter, r *http.Request) {
	result, err := h.store.PlayerGoals(r.Context(), h.bindPlayerGoals(r.URL.Query()))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondPage(w, r, result)
}

// PlayerGoalTimeline handles GET /api/player-goal-timeline.
func (h *Handler) PlayerGoalTimeline(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	scorer, verr := bindScorer(values)
	if verr != nil {
		respondBadRequest(w, r, verr.Message())
		return
	}

	rows, err := h.store.PlayerGoalTimeline(r.Context(), scorer, yearRange(values))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondData(w, r, rows)
}
