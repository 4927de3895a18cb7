// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package query

import "testing"

func TestViews_Registered(t *testing.T) {
	t.Parallel()

	resources := []Resource{
		ResourceMatchDetails, ResourceGoalDetails, ResourceTournamentSummary,
		ResourceCountryPerformance, ResourceTeamTournamentPerformance,
		ResourceCountryProfile, ResourceYearlySummary, ResourceScorerSummary,
	}

	for _, r := range resources {
		spec, ok := LookupView(r)
		if !ok {
			t.Errorf("%s not registered", r)
			continue
		}
		if spec.View != string(r) {
			t.Errorf("%s: view name %q", r, spec.View)
		}
		if len(spec.Allow.Sort) == 0 || len(spec.Allow.Filter) == 0 {
			t.Errorf("%s: empty allow-list", r)
		}
		if len(spec.Key) == 0 {
			t.Errorf("%s: no tie-break key", r)
		}
		// Key columns must be known columns of the view.
		for _, k := range spec.Key {
			if !spec.Allow.CanSort(k) && !spec.Allow.CanFilter(k) {
				t.Errorf("%s: key column %q not in allow-lists", r, k)
			}
		}
	}

	if _, ok := LookupView(ResourcePlayerGoals); ok {
		t.Error("player goals is not view-backed")
	}
}

func TestYearColumnsFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		resource Resource
		want     YearColumns
		wantOK   bool
	}{
		{ResourceScorerSummary, YearColumns{"first_scoring_year", "last_scoring_year"}, true},
		{ResourceCountryProfile, YearColumns{"first_year_active", "last_year_active"}, true},
		{ResourceTournamentSummary, YearColumns{"year", "year"}, true},
		{ResourceYearlySummary, YearColumns{"year", "year"}, true},
		{ResourceMatchDetails, YearColumns{"tournament_year", "tournament_year"}, true},
		{ResourceGoalDetails, YearColumns{"tournament_year", "tournament_year"}, true},
		{ResourceTeamTournamentPerformance, YearColumns{"tournament_year", "tournament_year"}, true},
		{ResourceCountryPerformance, YearColumns{}, false},
	}

	for _, tt := range tests {
		spec, _ := LookupView(tt.resource)
		got, ok := YearColumnsFor(tt.resource, spec.Allow)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("YearColumnsFor(%s) = (%+v, %v), want (%+v, %v)", tt.resource, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestAllowList_Lookup(t *testing.T) {
	t.Parallel()

	a := AllowList{
		Filter: []Column{Text("city"), Boolean("neutral")},
		Sort:   []string{"match_date"},
	}

	if c, ok := a.FilterColumn("neutral"); !ok || c.Kind != KindBoolean {
		t.Errorf("FilterColumn(neutral) = %+v, %v", c, ok)
	}
	if a.CanFilter("match_date") {
		t.Error("match_date is sort-only")
	}
	if !a.CanSort("match_date") || a.CanSort("city") {
		t.Error("CanSort mismatch")
	}
	if a.GenericYearColumn() != "" {
		t.Error("no year column expected")
	}
}
