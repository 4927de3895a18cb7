// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package database

import (
	"context"

	"github.com/tomtom215/footystats/internal/database/query"
)

// matchYear is the calendar year of a match row aliased m.
const matchYear = "EXTRACT(YEAR FROM m.match_date)"

// HeadToHeadParams selects the meetings between two teams.
type HeadToHeadParams struct {
	Team1 string
	Team2 string
	Years query.YearRange
	Sort  string
}

// HeadToHead returns every meeting between the two teams regardless of which
// side either played. The result is not paginated.
func (db *DB) HeadToHead(ctx context.Context, p HeadToHeadParams) ([]query.Row, error) {
	plan, err := headToHeadPlan(p)
	if err != nil {
		return nil, err
	}
	return db.run(ctx, "select", plan)
}

func headToHeadPlan(p HeadToHeadParams) (query.Plan, error) {
	if p.Team1 == "" || p.Team2 == "" {
		return query.Plan{}, invalid(MsgTeamsRequired)
	}

	wb := query.NewWhereBuilder().AddClause(
		"((team1_name ILIKE ? AND team2_name ILIKE ?) OR (team1_name ILIKE ? AND team2_name ILIKE ?))",
		p.Team1, p.Team2, p.Team2, p.Team1,
	)
	addYearRange(wb, query.QuoteIdent("tournament_year"), p.Years)

	order := query.ParseSort(p.Sort, query.HeadToHeadSort).Or(query.By("match_date", query.Desc))

	b := query.Psql.Select("*").
		From(string(query.ResourceHeadToHead)).
		Where(wb).
		OrderBy(order.Strings()...)
	return query.FromSqlizer(query.ResourceHeadToHead, b)
}

// MatchListParams filters the match search. Team matches either side;
// HomeTeam and AwayTeam apply independently and may be combined with it.
type MatchListParams struct {
	HomeTeam   string
	AwayTeam   string
	Team       string
	Tournament string
	City       string
	Country    string
	Years      query.YearRange
	Sort       string
	Page       query.Page
}

// MatchList returns one page of matches with team and venue names resolved.
func (db *DB) MatchList(ctx context.Context, p MatchListParams) (*query.ResultPage, error) {
	data, count, err := matchListPlans(p)
	if err != nil {
		return nil, err
	}
	return db.runPage(ctx, data, count, p.Page)
}

func matchListFilter(p MatchListParams) *query.WhereBuilder {
	wb := query.NewWhereBuilder()
	if p.HomeTeam != "" {
		wb.AddClause("ht.display_name ILIKE ?", query.Contains(p.HomeTeam))
	}
	if p.AwayTeam != "" {
		wb.AddClause("at.display_name ILIKE ?", query.Contains(p.AwayTeam))
	}
	if p.Team != "" {
		pattern := query.Contains(p.Team)
		wb.AddClause("(ht.display_name ILIKE ? OR at.display_name ILIKE ?)", pattern, pattern)
	}
	if p.Tournament != "" {
		wb.AddClause("m.tournament ILIKE ?", query.Contains(p.Tournament))
	}
	addYearRange(wb, matchYear, p.Years)
	if p.City != "" {
		wb.AddClause("m.city ILIKE ?", query.Contains(p.City))
	}
	if p.Country != "" {
		wb.AddClause("mc.display_name ILIKE ?", query.Contains(p.Country))
	}
	return wb
}

// matchListPlans builds the data and count queries from one filter so the
// two cannot drift apart.
func matchListPlans(p MatchListParams) (data, count query.Plan, err error) {
	base := where(query.Psql.Select(
		"m.match_id",
		"m.match_date",
		"m.tournament",
		"ht.display_name AS home_team",
		"at.display_name AS away_team",
		"m.home_score",
		"m.away_score",
		"m.city",
		"mc.display_name AS country",
		"m.neutral",
	).Distinct().
		From("matches m").
		LeftJoin("countries ht ON m.home_team_id = ht.country_id").
		LeftJoin("countries at ON m.away_team_id = at.country_id").
		LeftJoin("countries mc ON m.country_id = mc.country_id"),
		matchListFilter(p))

	order := query.ParseSort(p.Sort, query.MatchListSort).
		Or(query.ByExpr("m.match_date", query.Desc)).
		WithTieBreak(query.ByExpr("m.match_id", query.Asc))

	data, err = query.FromSqlizer(query.ResourceMatchList, paginate(base.OrderBy(order.Strings()...), p.Page))
	if err != nil {
		return query.Plan{}, query.Plan{}, err
	}
	count, err = countPlan(query.ResourceMatchList, base)
	if err != nil {
		return query.Plan{}, query.Plan{}, err
	}
	return data, count, nil
}

// matchResultsCTE classifies every match once from each side's perspective.
const matchResultsCTE = `WITH match_results AS (
	SELECT EXTRACT(YEAR FROM m.match_date)::int AS year,
		m.home_team_id AS team_id,
		CASE WHEN m.home_score > m.away_score THEN 1 ELSE 0 END AS win,
		CASE WHEN m.home_score = m.away_score THEN 1 ELSE 0 END AS draw,
		CASE WHEN m.home_score < m.away_score THEN 1 ELSE 0 END AS loss
	FROM matches m
	UNION ALL
	SELECT EXTRACT(YEAR FROM m.match_date)::int AS year,
		m.away_team_id AS team_id,
		CASE WHEN m.away_score > m.home_score THEN 1 ELSE 0 END AS win,
		CASE WHEN m.away_score = m.home_score THEN 1 ELSE 0 END AS draw,
		CASE WHEN m.away_score < m.home_score THEN 1 ELSE 0 END AS loss
	FROM matches m
)`

// CountryWDLTimeline returns wins, draws and losses per year for countries
// matching countryName. Years without matches are omitted.
func (db *DB) CountryWDLTimeline(ctx context.Context, countryName string, years query.YearRange) ([]query.Row, error) {
	plan, err := countryWDLTimelinePlan(countryName, years)
	if err != nil {
		return nil, err
	}
	return db.run(ctx, "select", plan)
}

func countryWDLTimelinePlan(countryName string, years query.YearRange) (query.Plan, error) {
	if countryName == "" {
		return query.Plan{}, invalid(MsgCountryRequired)
	}

	wb := query.NewWhereBuilder().AddClause("c.display_name ILIKE ?", query.Contains(countryName))
	addYearRange(wb, "mr.year", years)

	b := query.Psql.Select(
		"mr.year",
		"SUM(mr.win) AS wins",
		"SUM(mr.draw) AS draws",
		"SUM(mr.loss) AS losses",
	).Prefix(matchResultsCTE).
		From("match_results mr").
		Join("countries c ON mr.team_id = c.country_id").
		Where(wb).
		GroupBy("mr.year").
		OrderBy("mr.year ASC")
	return query.FromSqlizer(query.ResourceCountryWDLTimeline, b)
}
