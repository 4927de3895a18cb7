// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/footystats/internal/database/query"
)

// Metric ranks countries in TopCountries.
type Metric string

// Supported ranking metrics.
const (
	MetricMatches  Metric = "matches"
	MetricGoals    Metric = "goals"
	MetricWins     Metric = "wins"
	MetricDraws    Metric = "draws"
	MetricLosses   Metric = "losses"
	MetricWinRatio Metric = "win_ratio"
)

// Metrics lists the valid metric names in display order.
var Metrics = []Metric{MetricMatches, MetricGoals, MetricWins, MetricDraws, MetricLosses, MetricWinRatio}

// ParseMetric resolves a path segment to a Metric. "win-ratio" is accepted
// as an alias of win_ratio.
func ParseMetric(s string) (Metric, bool) {
	if s == "win-ratio" {
		return MetricWinRatio, true
	}
	for _, m := range Metrics {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// winRatio is the percentage of matches won, 0 for a country without matches.
const winRatio = "CASE WHEN cp.matches_played > 0 " +
	"THEN ROUND((cp.wins::DECIMAL / cp.matches_played) * 100, 2) ELSE 0 END"

// TopCountriesParams selects the ranking metric and optional geography filters.
// Year ranges are not supported for this ranking.
type TopCountriesParams struct {
	Metric        Metric
	Continent     string
	RegionName    string
	SubRegionName string
}

// TopCountries returns the top countries by metric, highest first.
func (db *DB) TopCountries(ctx context.Context, p TopCountriesParams) ([]query.Row, error) {
	plan, err := topCountriesPlan(p)
	if err != nil {
		return nil, err
	}
	return db.run(ctx, "select", plan)
}

func topCountriesPlan(p TopCountriesParams) (query.Plan, error) {
	metric, ok := ParseMetric(string(p.Metric))
	if !ok {
		return query.Plan{}, invalid(MsgInvalidMetric)
	}

	columns := []string{
		"cp.country_name",
		"cp.matches_played AS matches",
		"cp.wins",
		"cp.draws",
		"cp.losses",
		"cp.goals_scored AS goals",
		"cp.goals_conceded",
		"c.continent",
		"c.region_name",
		"c.sub_region_name",
	}
	if metric == MetricWinRatio {
		columns = append(columns, winRatio+" AS "+string(MetricWinRatio))
	}

	wb := query.NewWhereBuilder()
	if p.Continent != "" {
		wb.AddClause("c.continent ILIKE ?", query.Contains(p.Continent))
	}
	if p.RegionName != "" {
		wb.AddClause("c.region_name ILIKE ?", query.Contains(p.RegionName))
	}
	if p.SubRegionName != "" {
		wb.AddClause("c.sub_region_name ILIKE ?", query.Contains(p.SubRegionName))
	}

	// Each metric is also the alias of its output column.
	b := where(query.Psql.Select(columns...).Distinct().
		From("country_performance cp").
		Join("countries c ON cp.country_id = c.country_id"), wb).
		OrderBy(query.QuoteIdent(string(metric))+" DESC NULLS LAST", "cp.country_name ASC").
		Limit(query.TopCountriesLimit)
	return query.FromSqlizer(query.ResourceTopCountries, b)
}

// CountryActivity returns the activity summary of the first country, by name,
// whose name contains countryName. It returns ErrNotFound when none does.
func (db *DB) CountryActivity(ctx context.Context, countryName string) (query.Row, error) {
	plan, err := countryActivityPlan(countryName)
	if err != nil {
		return nil, err
	}
	rows, err := db.run(ctx, "select", plan)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("country activity %q: %w", countryName, ErrNotFound)
	}
	return rows[0], nil
}

func countryActivityPlan(countryName string) (query.Plan, error) {
	if countryName == "" {
		return query.Plan{}, invalid(MsgCountryRequired)
	}
	b := query.Psql.Select("first_year_active", "last_year_active", "distinct_years_played").
		From(string(query.ResourceCountryActivity)).
		Where("country_name ILIKE ?", query.Contains(countryName)).
		OrderBy("country_name").
		Limit(1)
	return query.FromSqlizer(query.ResourceCountryActivity, b)
}
