// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package query

import (
	"strings"
	"testing"
)

func TestParseSort_Clause(t *testing.T) {
	t.Parallel()

	allowed := AllowList{Sort: []string{"match_date", "home_team", "tournament_year"}}

	tests := []struct {
		name string
		sort string
		want string
	}{
		{"empty", "", ""},
		{"default direction", "match_date", ` ORDER BY "match_date" ASC`},
		{"explicit desc", "match_date:desc", ` ORDER BY "match_date" DESC`},
		{"case-insensitive direction", "home_team:DeSc", ` ORDER BY "home_team" DESC`},
		{"multiple", "tournament_year:desc,home_team:asc", ` ORDER BY "tournament_year" DESC, "home_team" ASC`},
		{"disallowed column dropped", "password:asc,match_date:desc", ` ORDER BY "match_date" DESC`},
		{"invalid direction dropped", "match_date:sideways,home_team", ` ORDER BY "home_team" ASC`},
		{"empty direction dropped", "match_date:", ""},
		{"nothing survives", "nope,also:bad", ""},
		{"spaces around entries", " match_date:desc , home_team ", ` ORDER BY "match_date" DESC, "home_team" ASC`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseSort(tt.sort, allowed).Clause(); got != tt.want {
				t.Errorf("ParseSort(%q).Clause() = %q, want %q", tt.sort, got, tt.want)
			}
		})
	}
}

func TestParseSort_InjectionSafety(t *testing.T) {
	t.Parallel()

	allowed := AllowList{Sort: []string{"match_date"}}
	attacks := []string{
		"match_date; DROP TABLE matches",
		"(SELECT 1):asc",
		`match_date" DESC, "x`,
		"match_date:desc; --",
	}

	for _, attack := range attacks {
		clause := ParseSort(attack, allowed).Clause()
		if strings.Contains(clause, "DROP") || strings.Contains(clause, "SELECT") || strings.Contains(clause, "--") {
			t.Errorf("sort %q leaked into %q", attack, clause)
		}
	}
}

func TestSortTerms_OrAndTieBreak(t *testing.T) {
	t.Parallel()

	fallback := []SortTerm{ByExpr("m.match_date", Desc)}

	terms := ParseSort("", MatchListSort).Or(fallback...).WithTieBreak(ByExpr("m.match_id", Asc))
	if got := terms.Clause(); got != " ORDER BY m.match_date DESC, m.match_id ASC" {
		t.Errorf("default clause = %q", got)
	}

	terms = ParseSort("home_team:desc", MatchListSort).Or(fallback...).WithTieBreak(ByExpr("m.match_id", Asc))
	if got := terms.Clause(); got != ` ORDER BY "home_team" DESC, m.match_id ASC` {
		t.Errorf("requested clause = %q", got)
	}

	// A tie-break column already in the sort is not repeated.
	terms = SortTerms{By("year", Desc)}.WithTieBreak(By("year", Asc), By("tournament", Asc))
	if got := terms.Clause(); got != ` ORDER BY "year" DESC, "tournament" ASC` {
		t.Errorf("dedup clause = %q", got)
	}
}

func TestSortTerms_Strings(t *testing.T) {
	t.Parallel()

	got := SortTerms{By("year", Asc), ByExpr("MIN(minute)", Asc)}.Strings()
	if len(got) != 2 || got[0] != `"year" ASC` || got[1] != "MIN(minute) ASC" {
		t.Errorf("Strings() = %v", got)
	}
}
