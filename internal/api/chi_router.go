// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/footystats/internal/database"
	"github.com/tomtom215/footystats/internal/middleware"
)

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.SlowRequests(middleware.DefaultSlowRequestThreshold))
	r.Use(chimiddleware.Compress(5, "application/json"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusNotFound, MessageResponse{Message: "Not Found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method Not Allowed"})
	})

	r.Method(http.MethodGet, "/metrics", router.metrics)

	r.Route("/api", func(r chi.Router) {
		r.Use(APISecurityHeaders())

		// ========================
		// Health Endpoints
		// ========================
		// Not rate limited so monitoring never trips the limiter.
		r.Get("/health", router.handler.Health)
		r.Get("/health/live", router.handler.HealthLive)

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())

			r.Get("/", router.handler.Welcome)
			router.registerViewRoutes(r)
			router.registerQueryRoutes(r)
			router.registerDistinctRoutes(r)
		})
	})

	return r
}

// registerViewRoutes adds one paginated list per summary view.
func (router *Router) registerViewRoutes(r chi.Router) {
	for _, route := range viewRoutes {
		r.Get(route.path, router.handler.View(route.resource))
	}
}

// registerQueryRoutes adds the endpoints backed by hand-built queries.
func (router *Router) registerQueryRoutes(r chi.Router) {
	h := router.handler

	r.Get("/head-to-head", h.HeadToHead)
	r.Get("/goal-timing", h.GoalTiming)
	r.Get("/player-goals", h.PlayerGoals)
	r.Get("/match-list", h.MatchList)
	r.Get("/player-goal-timeline", h.PlayerGoalTimeline)
	r.Get("/country-wdl-timeline", h.CountryWDLTimeline)
	r.Get("/top-countries/{metric}", h.TopCountries)
	r.Get("/country-activity", h.CountryActivity)
}

// registerDistinctRoutes adds /distinct-<kind> for every distinct list.
func (router *Router) registerDistinctRoutes(r chi.Router) {
	for _, kind := range database.DistinctKinds {
		r.Get("/distinct-"+string(kind), router.handler.Distinct(kind))
	}
}
