// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package database

import (
	"context"

	"github.com/tomtom215/footystats/internal/database/query"
)

// GoalTimingParams filters the goal timing distribution.
type GoalTimingParams struct {
	Tournament string
	Years      query.YearRange
}

// GoalTiming counts goals per time segment, segments in match order.
func (db *DB) GoalTiming(ctx context.Context, p GoalTimingParams) ([]query.Row, error) {
	plan, err := goalTimingPlan(p)
	if err != nil {
		return nil, err
	}
	return db.run(ctx, "select", plan)
}

func goalTimingPlan(p GoalTimingParams) (query.Plan, error) {
	wb := query.NewWhereBuilder()
	if p.Tournament != "" {
		wb.AddILike("tournament", p.Tournament)
	}
	addYearRange(wb, query.QuoteIdent("tournament_year"), p.Years)

	b := where(query.Psql.Select("time_segment", "COUNT(*) AS count").
		From(string(query.ResourceGoalTiming)), wb).
		GroupBy("time_segment").
		OrderBy("MIN(minute)")
	return query.FromSqlizer(query.ResourceGoalTiming, b)
}

// PlayerGoalsParams filters the goal search. An empty Scorer matches all scorers.
type PlayerGoalsParams struct {
	Scorer     string
	Tournament string
	Years      query.YearRange
	Sort       string
	Page       query.Page
}

// PlayerGoals returns one page of individual goals with the match context.
func (db *DB) PlayerGoals(ctx context.Context, p PlayerGoalsParams) (*query.ResultPage, error) {
	data, count, err := playerGoalsPlans(p)
	if err != nil {
		return nil, err
	}
	return db.runPage(ctx, data, count, p.Page)
}

func playerGoalsFilter(p PlayerGoalsParams) *query.WhereBuilder {
	wb := query.NewWhereBuilder()
	if p.Scorer != "" {
		wb.AddClause("g.scorer ILIKE ?", query.Contains(p.Scorer))
	}
	addYearRange(wb, matchYear, p.Years)
	if p.Tournament != "" {
		wb.AddClause("m.tournament ILIKE ?", query.Contains(p.Tournament))
	}
	return wb
}

// playerGoalsPlans selects DISTINCT rows keyed by goal_id. The country joins
// can fan out; DISTINCT collapses the copies and the count is taken over the
// same DISTINCT set.
func playerGoalsPlans(p PlayerGoalsParams) (data, count query.Plan, err error) {
	base := where(query.Psql.Select(
		"g.goal_id",
		"m.match_date",
		"m.tournament",
		"ht.display_name AS home_team",
		"at.display_name AS away_team",
		"m.home_score",
		"m.away_score",
		"st.display_name AS scoring_team",
		"g.minute",
		"g.own_goal",
		"g.penalty",
		"g.scorer",
	).Distinct().
		From("goals g").
		Join("matches m ON g.match_id = m.match_id").
		LeftJoin("countries st ON g.team_id = st.country_id").
		LeftJoin("countries ht ON m.home_team_id = ht.country_id").
		LeftJoin("countries at ON m.away_team_id = at.country_id"),
		playerGoalsFilter(p))

	order := query.ParseSort(p.Sort, query.PlayerGoalsSort).
		Or(query.ByExpr("m.match_date", query.Desc), query.ByExpr("g.scorer", query.Asc)).
		WithTieBreak(query.ByExpr("g.goal_id", query.Asc))

	data, err = query.FromSqlizer(query.ResourcePlayerGoals, paginate(base.OrderBy(order.Strings()...), p.Page))
	if err != nil {
		return query.Plan{}, query.Plan{}, err
	}
	count, err = countPlan(query.ResourcePlayerGoals, base)
	if err != nil {
		return query.Plan{}, query.Plan{}, err
	}
	return data, count, nil
}

// PlayerGoalTimeline counts a scorer's goals per year, ascending. Years
// without goals are omitted.
func (db *DB) PlayerGoalTimeline(ctx context.Context, scorerName string, years query.YearRange) ([]query.Row, error) {
	plan, err := playerGoalTimelinePlan(scorerName, years)
	if err != nil {
		return nil, err
	}
	return db.run(ctx, "select", plan)
}

func playerGoalTimelinePlan(scorerName string, years query.YearRange) (query.Plan, error) {
	if scorerName == "" {
		return query.Plan{}, invalid(MsgScorerRequired)
	}

	wb := query.NewWhereBuilder().AddClause("g.scorer ILIKE ?", query.Contains(scorerName))
	addYearRange(wb, matchYear, years)

	b := query.Psql.Select(matchYear+"::int AS year", "COUNT(*) AS goals_scored").
		From("goals g").
		Join("matches m ON g.match_id = m.match_id").
		Where(wb).
		GroupBy(matchYear + "::int").
		OrderBy("year ASC")
	return query.FromSqlizer(query.ResourcePlayerGoalTimeline, b)
}
