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
	"time"

	"github.com/tomtom215/footystats/internal/cache"
	"github.com/tomtom215/footystats/internal/database/query"
)

func TestDistinctLookups_SQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind DistinctKind
		want string
	}{
		{DistinctTournaments, "SELECT DISTINCT tournament FROM matches ORDER BY tournament"},
		{DistinctCountries, "SELECT DISTINCT display_name FROM countries WHERE status <> 'Unrecognized' ORDER BY display_name"},
		{DistinctScorers, "SELECT DISTINCT scorer FROM goals WHERE scorer IS NOT NULL AND scorer <> '' ORDER BY scorer LIMIT 5000"},
		{DistinctCities, "SELECT DISTINCT city FROM matches WHERE city IS NOT NULL AND city <> '' ORDER BY city"},
		{DistinctMatchYears, "SELECT DISTINCT EXTRACT(YEAR FROM match_date)::int AS year FROM matches ORDER BY year DESC"},
		{DistinctScoringYears, "SELECT DISTINCT year FROM (SELECT first_scoring_year AS year FROM scorer_summary " +
			"UNION SELECT last_scoring_year AS year FROM scorer_summary) AS years WHERE year IS NOT NULL ORDER BY year DESC"},
		{DistinctActiveYears, "SELECT DISTINCT year FROM (SELECT first_year_active AS year FROM country_profile " +
			"UNION SELECT last_year_active AS year FROM country_profile) AS years WHERE year IS NOT NULL ORDER BY year DESC"},
		{DistinctContinents, "SELECT DISTINCT continent FROM countries WHERE continent IS NOT NULL AND continent <> '' ORDER BY continent"},
	}

	if len(tests) != len(DistinctKinds) {
		t.Fatalf("test covers %d kinds, %d registered", len(tests), len(DistinctKinds))
	}

	for _, tt := range tests {
		plan, err := query.FromSqlizer(query.ResourceDistinct, distinctLookups[tt.kind].build(""))
		if err != nil {
			t.Fatalf("%s: %v", tt.kind, err)
		}
		if plan.SQL != tt.want {
			t.Errorf("%s SQL =\n%s\nwant\n%s", tt.kind, plan.SQL, tt.want)
		}
		if len(plan.Args) != 0 {
			t.Errorf("%s args = %v", tt.kind, plan.Args)
		}
	}
}

func TestDistinctScorers_Query(t *testing.T) {
	t.Parallel()

	plan, err := query.FromSqlizer(query.ResourceDistinct, distinctLookups[DistinctScorers].build("Müller"))
	if err != nil {
		t.Fatal(err)
	}
	want := "SELECT DISTINCT scorer FROM goals WHERE scorer IS NOT NULL AND scorer <> '' AND scorer ILIKE $1 ORDER BY scorer LIMIT 5000"
	if plan.SQL != want {
		t.Errorf("SQL = %s", plan.SQL)
	}
	if !reflect.DeepEqual(plan.Args, []interface{}{"%Müller%"}) {
		t.Errorf("args = %v", plan.Args)
	}
}

func TestDistinct_ExtractsColumnAndCaches(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{respond: func(string, []interface{}) ([]query.Row, error) {
		return []query.Row{{"year": int64(2022)}, {"year": int64(2018)}}, nil
	}}
	store := cache.New(time.Minute)
	defer store.Close()
	db := New(exec, store, 0)

	want := []interface{}{int64(2022), int64(2018)}
	for i := 0; i < 3; i++ {
		got, err := db.Distinct(context.Background(), DistinctMatchYears, "")
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("call %d: got %v, want %v", i, got, want)
		}
	}

	if n := len(exec.calls()); n != 1 {
		t.Errorf("issued %d queries, want 1 (then cache hits)", n)
	}
	if stats := store.GetStats(); stats.Hits != 2 || stats.Misses != 1 {
		t.Errorf("cache stats = %+v", stats)
	}
}

func TestDistinct_QueryScopesCacheKey(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{respond: func(_ string, args []interface{}) ([]query.Row, error) {
		if len(args) == 0 {
			return []query.Row{{"scorer": "Gerd Müller"}, {"scorer": "Pelé"}}, nil
		}
		return []query.Row{{"scorer": "Gerd Müller"}}, nil
	}}
	store := cache.New(time.Minute)
	defer store.Close()
	db := New(exec, store, 0)
	ctx := context.Background()

	all, err := db.Distinct(ctx, DistinctScorers, "")
	if err != nil {
		t.Fatal(err)
	}
	some, err := db.Distinct(ctx, DistinctScorers, "Müll")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || len(some) != 1 {
		t.Errorf("all=%v some=%v", all, some)
	}

	// q is meaningless for cities and must not fragment the cache.
	if _, err := db.Distinct(ctx, DistinctCities, "x"); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Distinct(ctx, DistinctCities, "y"); err != nil {
		t.Fatal(err)
	}

	calls := exec.calls()
	if len(calls) != 3 {
		t.Fatalf("issued %d queries, want 3", len(calls))
	}
	if strings.Contains(calls[2].SQL, "ILIKE") {
		t.Errorf("cities query used q: %s", calls[2].SQL)
	}
}

func TestDistinct_FilteredScorersBypassCache(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{respond: func(string, []interface{}) ([]query.Row, error) {
		return []query.Row{{"scorer": "Gerd Müller"}}, nil
	}}
	store := cache.New(time.Minute)
	defer store.Close()
	db := New(exec, store, 0)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := db.Distinct(ctx, DistinctScorers, "Müll"); err != nil {
			t.Fatal(err)
		}
	}
	for _, q := range []string{"a", "b", "c", "d"} {
		if _, err := db.Distinct(ctx, DistinctScorers, q); err != nil {
			t.Fatal(err)
		}
	}

	if n := len(exec.calls()); n != 7 {
		t.Errorf("issued %d queries, want 7 (one per filtered call)", n)
	}
	stats := store.GetStats()
	if stats.TotalKeys != 0 {
		t.Errorf("filtered lookups stored %d cache entries, want 0", stats.TotalKeys)
	}
	if stats.Hits != 0 || stats.Misses != 0 {
		t.Errorf("filtered lookups touched the cache: %+v", stats)
	}

	// The unfiltered list is still cached.
	for i := 0; i < 2; i++ {
		if _, err := db.Distinct(ctx, DistinctScorers, ""); err != nil {
			t.Fatal(err)
		}
	}
	if n := len(exec.calls()); n != 8 {
		t.Errorf("issued %d queries, want 8", n)
	}
	if got := store.GetStats().TotalKeys; got != 1 {
		t.Errorf("TotalKeys = %d, want 1", got)
	}
}

func TestDistinct_UnknownKind(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{}
	if _, err := New(exec, nil, 0).Distinct(context.Background(), "players", ""); err == nil {
		t.Error("expected error")
	}
	if len(exec.calls()) != 0 {
		t.Error("no query should be issued")
	}
}
