// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/footystats/internal/logging"
)

// WelcomeMessage is the body of GET /api.
const WelcomeMessage = "Welcome to the Football Stats API!"

// Welcome handles GET /api.
func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, MessageResponse{Message: WelcomeMessage})
}

// Health handles readiness requests. It returns 200 only while the database
// answers a ping.
//
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} StatusResponse "Database reachable"
// @Failure 503 {object} ErrorResponse "Database unreachable"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Health check failed: database unreachable")
		respondJSON(w, r, http.StatusServiceUnavailable, ErrorResponse{
			Error:   categoryUnavailable,
			Details: err.Error(),
		})
		return
	}

	respondJSON(w, r, http.StatusOK, StatusResponse{
		Status: "ok",
		Uptime: time.Since(h.startTime).Seconds(),
	})
}

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive, regardless of the database.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, StatusResponse{
		Status: "alive",
		Uptime: time.Since(h.startTime).Seconds(),
	})
}
