// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package api

import (
	"net/http"

	"github.com/tomtom215/footystats/internal/database/query"
)

// viewRoutes maps list endpoints to the view they page through.
var viewRoutes = []struct {
	path     string
	resource query.Resource
}{
	{"/match-details", query.ResourceMatchDetails},
	{"/goal-details", query.ResourceGoalDetails},
	{"/tournament-summary", query.ResourceTournamentSummary},
	{"/country-performance", query.ResourceCountryPerformance},
	{"/team-tournament-performance", query.ResourceTeamTournamentPerformance},
	{"/country-profiles", query.ResourceCountryProfile},
	{"/yearly-summary", query.ResourceYearlySummary},
	{"/scorer-summary", query.ResourceScorerSummary},
}

// View returns a handler serving one page of a view. Every query parameter
// other than sort, limit and offset is a candidate filter; parameters that
// are not allow-listed for the view are ignored.
//
// @Summary List rows of a summary view
// @Tags Views
// @Produce json
// @Param sort query string false "column:direction, comma separated"
// @Param limit query int false "Page size"
// @Param offset query int false "Rows to skip"
// @Param startYear query int false "Inclusive lower year bound"
// @Param endYear query int false "Inclusive upper year bound"
// @Success 200 {object} query.ResultPage
// @Failure 500 {object} ErrorResponse
func (h *Handler) View(resource query.Resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values := r.URL.Query()
		result, err := h.store.QueryView(
			r.Context(),
			resource,
			query.FilterSpecFromValues(values),
			values.Get(query.ParamSort),
			h.page(values, h.pages.DefaultPageSize),
		)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondPage(w, r, result)
	}
}
