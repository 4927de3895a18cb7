// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package database

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/footystats/internal/database/query"
)

func TestParseMetric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   Metric
		wantOK bool
	}{
		{"matches", MetricMatches, true},
		{"goals", MetricGoals, true},
		{"wins", MetricWins, true},
		{"draws", MetricDraws, true},
		{"losses", MetricLosses, true},
		{"win_ratio", MetricWinRatio, true},
		{"win-ratio", MetricWinRatio, true},
		{"goal_difference", "", false},
		{"", "", false},
		{`wins" DESC; DROP TABLE countries; --`, "", false},
	}
	for _, tt := range tests {
		got, ok := ParseMetric(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseMetric(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestTopCountriesPlan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		metric      Metric
		wantOrder   string
		wantRatio   bool
		description string
	}{
		{MetricMatches, `ORDER BY "matches" DESC NULLS LAST`, false, "matches alias"},
		{MetricGoals, `ORDER BY "goals" DESC NULLS LAST`, false, "goals alias"},
		{MetricLosses, `ORDER BY "losses" DESC NULLS LAST`, false, "direct column"},
		{MetricWinRatio, `ORDER BY "win_ratio" DESC NULLS LAST`, true, "calculated column"},
		{Metric("win-ratio"), `ORDER BY "win_ratio" DESC NULLS LAST`, true, "alias"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			t.Parallel()
			plan, err := topCountriesPlan(TopCountriesParams{Metric: tt.metric})
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(plan.SQL, tt.wantOrder+", cp.country_name ASC LIMIT 10") {
				t.Errorf("SQL = %s", plan.SQL)
			}
			if got := strings.Contains(plan.SQL, winRatio+" AS win_ratio"); got != tt.wantRatio {
				t.Errorf("win_ratio column present = %v, want %v", got, tt.wantRatio)
			}
			if !strings.HasPrefix(plan.SQL, "SELECT DISTINCT cp.country_name, cp.matches_played AS matches,") {
				t.Errorf("SQL = %s", plan.SQL)
			}
			if strings.Contains(plan.SQL, "WHERE") {
				t.Errorf("no filters expected: %s", plan.SQL)
			}
		})
	}
}

func TestTopCountriesPlan_WinRatioGuardsZeroMatches(t *testing.T) {
	t.Parallel()

	if !strings.HasPrefix(winRatio, "CASE WHEN cp.matches_played > 0 ") || !strings.HasSuffix(winRatio, "ELSE 0 END") {
		t.Errorf("win ratio must yield 0 for zero matches: %s", winRatio)
	}
}

func TestTopCountriesPlan_GeographyFilters(t *testing.T) {
	t.Parallel()

	plan, err := topCountriesPlan(TopCountriesParams{
		Metric:        MetricWins,
		Continent:     "Europe",
		RegionName:    "Western",
		SubRegionName: "Nordic",
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "FROM country_performance cp JOIN countries c ON cp.country_id = c.country_id " +
		"WHERE c.continent ILIKE $1 AND c.region_name ILIKE $2 AND c.sub_region_name ILIKE $3 ORDER BY"
	if !strings.Contains(plan.SQL, want) {
		t.Errorf("SQL = %s", plan.SQL)
	}
	if !reflect.DeepEqual(plan.Args, []interface{}{"%Europe%", "%Western%", "%Nordic%"}) {
		t.Errorf("args = %v", plan.Args)
	}
}

func TestTopCountries_WinRatioScenario(t *testing.T) {
	t.Parallel()

	// The database computes the ratio; the assembler must pass the ranking
	// through untouched, zero-match countries included.
	ranked := []query.Row{
		{"country_name": "A", "matches": int64(10), "wins": int64(7), "win_ratio": "70.00"},
		{"country_name": "B", "matches": int64(0), "wins": int64(0), "win_ratio": "0"},
	}
	exec := &fakeExecutor{respond: func(string, []interface{}) ([]query.Row, error) { return ranked, nil }}

	got, err := New(exec, nil, 0).TopCountries(context.Background(), TopCountriesParams{Metric: MetricWinRatio})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0]["country_name"] != "A" || got[1]["win_ratio"] != "0" {
		t.Errorf("got %v", got)
	}
}

func TestTopCountries_InvalidMetric(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{}
	_, err := New(exec, nil, 0).TopCountries(context.Background(), TopCountriesParams{Metric: "points"})
	if !IsValidation(err) || err.Error() != MsgInvalidMetric {
		t.Errorf("err = %v", err)
	}
	if len(exec.calls()) != 0 {
		t.Error("no query should be issued")
	}
}

func TestCountryActivityPlan(t *testing.T) {
	t.Parallel()

	plan, err := countryActivityPlan("Brazil")
	if err != nil {
		t.Fatal(err)
	}
	want := "SELECT first_year_active, last_year_active, distinct_years_played FROM country_activity_summary " +
		"WHERE country_name ILIKE $1 ORDER BY country_name LIMIT 1"
	if plan.SQL != want {
		t.Errorf("SQL =\n%s\nwant\n%s", plan.SQL, want)
	}
	if !reflect.DeepEqual(plan.Args, []interface{}{"%Brazil%"}) {
		t.Errorf("args = %v", plan.Args)
	}
}

func TestCountryActivity(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		row := query.Row{"first_year_active": int64(1914), "last_year_active": int64(2022), "distinct_years_played": int64(95)}
		exec := &fakeExecutor{respond: func(string, []interface{}) ([]query.Row, error) { return []query.Row{row}, nil }}
		got, err := New(exec, nil, 0).CountryActivity(context.Background(), "Brazil")
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, row) {
			t.Errorf("got %v", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		_, err := New(&fakeExecutor{}, nil, 0).CountryActivity(context.Background(), "Atlantis")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()
		exec := &fakeExecutor{}
		_, err := New(exec, nil, 0).CountryActivity(context.Background(), "")
		if !IsValidation(err) || err.Error() != MsgCountryRequired {
			t.Errorf("err = %v", err)
		}
		if len(exec.calls()) != 0 {
			t.Error("no query should be issued")
		}
	})
}
