// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

/*
Package api provides the HTTP layer of the football statistics service.

All data endpoints are read-only GETs under /api. Handlers bind query
parameters, validate required inputs with the validation package and call a
Store (implemented by *database.DB); they never build SQL.

# Endpoints

Paginated views, { "data": [...], "pagination": {...} }:

	/api/match-details             /api/country-profiles
	/api/goal-details              /api/yearly-summary
	/api/tournament-summary        /api/scorer-summary
	/api/country-performance       /api/team-tournament-performance

Hand-built queries:

	/api/head-to-head              team1_name, team2_name required
	/api/goal-timing               { "data": [...] }
	/api/player-goals              paginated, default limit 100
	/api/match-list                paginated
	/api/player-goal-timeline      scorerName required
	/api/country-wdl-timeline      countryName required
	/api/top-countries/{metric}    top 10
	/api/country-activity          { "data": {...} } or 404

Distinct-value lists are bare arrays: /api/distinct-tournaments,
-countries, -scorers (optional q), -cities, -match-years, -scoring-years,
-active-years and -continents.

Operational: /api (welcome), /api/health (database ping), /api/health/live
and /metrics (Prometheus).

# Errors

	400 { "error": "<message>" }                      missing or invalid parameter
	404 { "message": "<text>" }                       unknown country
	500 { "error": "Internal Server Error", "details": "<driver message>" }
	503 { "error": "Service Unavailable", "details": "..." }  breaker open
*/
package api
