// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package database

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/footystats/internal/database/query"
)

func TestGoalTimingPlan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   GoalTimingParams
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "no filters",
			params:   GoalTimingParams{},
			wantSQL:  "SELECT time_segment, COUNT(*) AS count FROM goal_timing_distribution GROUP BY time_segment ORDER BY MIN(minute)",
			wantArgs: []interface{}{},
		},
		{
			name:   "tournament and years",
			params: GoalTimingParams{Tournament: "Copa", Years: years("1950", "1970")},
			wantSQL: `SELECT time_segment, COUNT(*) AS count FROM goal_timing_distribution ` +
				`WHERE "tournament" ILIKE $1 AND "tournament_year" >= $2 AND "tournament_year" <= $3 ` +
				`GROUP BY time_segment ORDER BY MIN(minute)`,
			wantArgs: []interface{}{"%Copa%", 1950, 1970},
		},
		{
			name:     "unparseable year dropped",
			params:   GoalTimingParams{Years: years("nineteen", "1970")},
			wantSQL:  `SELECT time_segment, COUNT(*) AS count FROM goal_timing_distribution WHERE "tournament_year" <= $1 GROUP BY time_segment ORDER BY MIN(minute)`,
			wantArgs: []interface{}{1970},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			plan, err := goalTimingPlan(tt.params)
			if err != nil {
				t.Fatal(err)
			}
			if plan.SQL != tt.wantSQL {
				t.Errorf("SQL =\n%s\nwant\n%s", plan.SQL, tt.wantSQL)
			}
			if !reflect.DeepEqual(plan.Args, tt.wantArgs) {
				t.Errorf("args = %#v, want %#v", plan.Args, tt.wantArgs)
			}
		})
	}
}

func TestPlayerGoalsPlans(t *testing.T) {
	t.Parallel()

	p := PlayerGoalsParams{
		Scorer:     "Pelé",
		Tournament: "World Cup",
		Years:      years("1958", "1970"),
		Page:       query.Page{Limit: query.DefaultPlayerGoalsLimit},
	}
	data, count, err := playerGoalsPlans(p)
	if err != nil {
		t.Fatal(err)
	}

	wantWhere := "WHERE g.scorer ILIKE $1 AND EXTRACT(YEAR FROM m.match_date) >= $2 AND " +
		"EXTRACT(YEAR FROM m.match_date) <= $3 AND m.tournament ILIKE $4"
	for _, plan := range []query.Plan{data, count} {
		if !strings.Contains(plan.SQL, wantWhere) {
			t.Errorf("SQL missing shared filter: %s", plan.SQL)
		}
		if !reflect.DeepEqual(plan.Args, []interface{}{"%Pelé%", 1958, 1970, "%World Cup%"}) {
			t.Errorf("args = %v", plan.Args)
		}
	}

	if !strings.HasPrefix(data.SQL, "SELECT DISTINCT g.goal_id, m.match_date,") {
		t.Errorf("data SQL = %s", data.SQL)
	}
	for _, join := range []string{
		"FROM goals g JOIN matches m ON g.match_id = m.match_id",
		"LEFT JOIN countries st ON g.team_id = st.country_id",
		"LEFT JOIN countries ht ON m.home_team_id = ht.country_id",
		"LEFT JOIN countries at ON m.away_team_id = at.country_id",
	} {
		if !strings.Contains(data.SQL, join) || !strings.Contains(count.SQL, join) {
			t.Errorf("missing %q", join)
		}
	}
	if !strings.HasSuffix(data.SQL, "ORDER BY m.match_date DESC, g.scorer ASC, g.goal_id ASC LIMIT 100 OFFSET 0") {
		t.Errorf("data SQL = %s", data.SQL)
	}
	if !strings.HasPrefix(count.SQL, "SELECT COUNT(*) AS total FROM (SELECT DISTINCT g.goal_id,") {
		t.Errorf("count SQL = %s", count.SQL)
	}
}

func TestPlayerGoalsPlans_AllScorers(t *testing.T) {
	t.Parallel()

	data, count, err := playerGoalsPlans(PlayerGoalsParams{Page: query.Page{Limit: 100}})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(data.SQL, "WHERE") || strings.Contains(count.SQL, "WHERE") {
		t.Errorf("no filter expected:\n%s\n%s", data.SQL, count.SQL)
	}
}

func TestPlayerGoalsPlans_Sort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sort string
		want string
	}{
		{"minute:desc", `ORDER BY "minute" DESC, g.goal_id ASC`},
		{"scorer:ASC,home_team:desc", `ORDER BY "scorer" ASC, "home_team" DESC, g.goal_id ASC`},
		{"goal_id:desc", `ORDER BY m.match_date DESC, g.scorer ASC, g.goal_id ASC`},
	}
	for _, tt := range tests {
		data, _, err := playerGoalsPlans(PlayerGoalsParams{Sort: tt.sort, Page: query.Page{Limit: 100}})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(data.SQL, tt.want+" LIMIT") {
			t.Errorf("sort %q: SQL = %s, want %s", tt.sort, data.SQL, tt.want)
		}
	}
}

func TestPlayerGoals(t *testing.T) {
	t.Parallel()

	rows := []query.Row{
		{"goal_id": "g1", "scorer": "Pelé"},
		{"goal_id": "g2", "scorer": "Pelé"},
	}
	exec := &fakeExecutor{respond: pagedResponder(rows, 12)}
	page, err := New(exec, nil, 0).PlayerGoals(context.Background(), PlayerGoalsParams{
		Scorer: "Pelé",
		Page:   query.Page{Limit: 5, Offset: 10},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Data) != 2 {
		t.Errorf("rows = %d, want 2 (no rows dropped)", len(page.Data))
	}
	if page.Pagination.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", page.Pagination.TotalPages)
	}
}

func TestPlayerGoalTimelinePlan(t *testing.T) {
	t.Parallel()

	plan, err := playerGoalTimelinePlan("Klose", years("2002", "2014"))
	if err != nil {
		t.Fatal(err)
	}
	want := "SELECT EXTRACT(YEAR FROM m.match_date)::int AS year, COUNT(*) AS goals_scored " +
		"FROM goals g JOIN matches m ON g.match_id = m.match_id " +
		"WHERE g.scorer ILIKE $1 AND EXTRACT(YEAR FROM m.match_date) >= $2 AND EXTRACT(YEAR FROM m.match_date) <= $3 " +
		"GROUP BY EXTRACT(YEAR FROM m.match_date)::int ORDER BY year ASC"
	if plan.SQL != want {
		t.Errorf("SQL =\n%s\nwant\n%s", plan.SQL, want)
	}
	if !reflect.DeepEqual(plan.Args, []interface{}{"%Klose%", 2002, 2014}) {
		t.Errorf("args = %v", plan.Args)
	}
}

func TestPlayerGoalTimeline_SparseSeries(t *testing.T) {
	t.Parallel()

	series := []query.Row{
		{"year": int64(2010), "goals_scored": int64(3)},
		{"year": int64(2015), "goals_scored": int64(1)},
	}
	exec := &fakeExecutor{respond: func(string, []interface{}) ([]query.Row, error) { return series, nil }}

	got, err := New(exec, nil, 0).PlayerGoalTimeline(context.Background(), "Scorer", query.YearRange{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, series) {
		t.Errorf("got %v, want exactly the two data points", got)
	}
}

func TestPlayerGoalTimeline_RequiresScorer(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{}
	_, err := New(exec, nil, 0).PlayerGoalTimeline(context.Background(), "", query.YearRange{})
	if !IsValidation(err) || err.Error() != MsgScorerRequired {
		t.Errorf("err = %v", err)
	}
	if len(exec.calls()) != 0 {
		t.Error("no query should be issued")
	}
}
