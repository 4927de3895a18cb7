// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package api

import (
	"context"
	"time"

	"github.com/tomtom215/footystats/internal/config"
	"github.com/tomtom215/footystats/internal/database"
	"github.com/tomtom215/footystats/internal/database/query"
)

// Store is the query surface the handlers need. *database.DB implements it.
type Store interface {
	Ping(ctx context.Context) error
	QueryView(ctx context.Context, resource query.Resource, filters query.FilterSpec, sort string, page query.Page) (*query.ResultPage, error)
	HeadToHead(ctx context.Context, p database.HeadToHeadParams) ([]query.Row, error)
	GoalTiming(ctx context.Context, p database.GoalTimingParams) ([]query.Row, error)
	PlayerGoals(ctx context.Context, p database.PlayerGoalsParams) (*query.ResultPage, error)
	MatchList(ctx context.Context, p database.MatchListParams) (*query.ResultPage, error)
	PlayerGoalTimeline(ctx context.Context, scorerName string, years query.YearRange) ([]query.Row, error)
	CountryWDLTimeline(ctx context.Context, countryName string, years query.YearRange) ([]query.Row, error)
	TopCountries(ctx context.Context, p database.TopCountriesParams) ([]query.Row, error)
	CountryActivity(ctx context.Context, countryName string) (query.Row, error)
	Distinct(ctx context.Context, kind database.DistinctKind, q string) ([]interface{}, error)
}

var _ Store = (*database.DB)(nil)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files by resource:
//   - handlers_views.go: view-backed list endpoints
//   - handlers_matches.go: head-to-head, match list, W/D/L timeline
//   - handlers_goals.go: goal timing, player goals, player timeline
//   - handlers_countries.go: top countries, country activity
//   - handlers_distinct.go: distinct-value lists
//   - handlers_health.go: welcome, health and liveness
type Handler struct {
	store     Store
	pages     config.APIConfig
	startTime time.Time
}

// NewHandler creates a handler over store. Page sizes come from cfg; zero
// values fall back to the package defaults.
func NewHandler(store Store, cfg config.APIConfig) *Handler {
	if cfg.DefaultPageSize < 1 {
		cfg.DefaultPageSize = query.DefaultLimit
	}
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		cfg.MaxPageSize = query.DefaultMaxLimit
	}
	return &Handler{
		store:     store,
		pages:     cfg,
		startTime: time.Now(),
	}
}
