// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package api

import (
	"net/url"

	"github.com/tomtom215/footystats/internal/database"
	"github.com/tomtom215/footystats/internal/database/query"
	"github.com/tomtom215/footystats/internal/validation"
)

// Request structs carry the validated query parameters of the endpoints that
// have required inputs. The `query` tag names the parameter in validation
// messages and `msg` pins the exact message clients see.

// HeadToHeadRequest holds /head-to-head parameters. team1Name and team2Name
// are accepted as aliases.
type HeadToHeadRequest struct {
	Team1 string `query:"team1_name" validate:"notblank" msg:"Both team1_name and team2_name query parameters are required."`
	Team2 string `query:"team2_name" validate:"notblank" msg:"Both team1_name and team2_name query parameters are required."`
	Sort  string `query:"sort"`
}

// ScorerRequest holds /player-goal-timeline parameters.
type ScorerRequest struct {
	ScorerName string `query:"scorerName" validate:"notblank" msg:"scorerName query parameter is required."`
}

// CountryRequest holds /country-wdl-timeline and /country-activity parameters.
type CountryRequest struct {
	CountryName string `query:"countryName" validate:"notblank" msg:"countryName query parameter is required."`
}

// TopCountriesRequest holds the {metric} path segment and geography filters.
type TopCountriesRequest struct {
	Metric        string `query:"metric" validate:"oneof=matches goals wins draws losses win_ratio win-ratio" msg:"Invalid metric specified."`
	Continent     string `query:"continent"`
	RegionName    string `query:"region_name"`
	SubRegionName string `query:"sub_region_name"`
}

// firstParam returns the first non-empty value among names.
func firstParam(values url.Values, names ...string) string {
	for _, name := range names {
		if v := values.Get(name); v != "" {
			return v
		}
	}
	return ""
}

// yearRange reads startYear and endYear. Non-integer values are ignored.
func yearRange(values url.Values) query.YearRange {
	return query.ParseYearRange(values.Get(query.ParamStartYear), values.Get(query.ParamEndYear))
}

// page reads limit and offset with the given default limit.
func (h *Handler) page(values url.Values, defaultLimit int) query.Page {
	return query.ParsePage(values.Get(query.ParamLimit), values.Get(query.ParamOffset), defaultLimit, h.pages.MaxPageSize)
}

func bindHeadToHead(values url.Values) (database.HeadToHeadParams, *validation.RequestValidationError) {
	req := HeadToHeadRequest{
		Team1: firstParam(values, "team1_name", "team1Name"),
		Team2: firstParam(values, "team2_name", "team2Name"),
		Sort:  values.Get(query.ParamSort),
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return database.HeadToHeadParams{}, verr
	}
	return database.HeadToHeadParams{
		Team1: req.Team1,
		Team2: req.Team2,
		Years: yearRange(values),
		Sort:  req.Sort,
	}, nil
}

func bindScorer(values url.Values) (string, *validation.RequestValidationError) {
	req := ScorerRequest{ScorerName: values.Get("scorerName")}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return "", verr
	}
	return req.ScorerName, nil
}

func bindCountry(values url.Values) (string, *validation.RequestValidationError) {
	req := CountryRequest{CountryName: values.Get("countryName")}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return "", verr
	}
	return req.CountryName, nil
}

func bindTopCountries(metric string, values url.Values) (database.TopCountriesParams, *validation.RequestValidationError) {
	req := TopCountriesRequest{
		Metric:        metric,
		Continent:     values.Get("continent"),
		RegionName:    values.Get("region_name"),
		SubRegionName: values.Get("sub_region_name"),
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return database.TopCountriesParams{}, verr
	}
	m, _ := database.ParseMetric(req.Metric)
	return database.TopCountriesParams{
		Metric:        m,
		Continent:     req.Continent,
		RegionName:    req.RegionName,
		SubRegionName: req.SubRegionName,
	}, nil
}

func (h *Handler) bindMatchList(values url.Values) database.MatchListParams {
	return database.MatchListParams{
		HomeTeam:   values.Get("homeTeam"),
		AwayTeam:   values.Get("awayTeam"),
		Team:       values.Get("team"),
		Tournament: values.Get("tournament"),
		City:       values.Get("city"),
		Country:    values.Get("country"),
		Years:      yearRange(values),
		Sort:       values.Get(query.ParamSort),
		Page:       h.page(values, h.pages.DefaultPageSize),
	}
}

func (h *Handler) bindPlayerGoals(values url.Values) database.PlayerGoalsParams {
	return database.PlayerGoalsParams{
		Scorer:     values.Get("scorerName"),
		Tournament: values.Get("tournament"),
		Years:      yearRange(values),
		Sort:       values.Get(query.ParamSort),
		Page:       h.page(values, query.DefaultPlayerGoalsLimit),
	}
}

func bindGoalTiming(values url.Values) database.GoalTimingParams {
	return database.GoalTimingParams{
		Tournament: values.Get("tournament"),
		Years:      yearRange(values),
	}
}
