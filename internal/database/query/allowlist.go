// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package query

// ColumnKind selects how a filter value is compared against a column.
type ColumnKind int

const (
	// KindText columns use a case-insensitive substring match.
	KindText ColumnKind = iota
	// KindInteger columns use exact equality with a parsed integer.
	KindInteger
	// KindBoolean columns accept only the literals "true" and "false".
	KindBoolean
)

// Column is a filterable column and its comparison kind.
type Column struct {
	Name string
	Kind ColumnKind
}

// Text and friends are shorthands for registry literals.
func Text(name string) Column    { return Column{Name: name, Kind: KindText} }
func Integer(name string) Column { return Column{Name: name, Kind: KindInteger} }
func Boolean(name string) Column { return Column{Name: name, Kind: KindBoolean} }

// AllowList holds the columns a resource permits in filters and in sort
// expressions. Every identifier interpolated into SQL text comes from here.
type AllowList struct {
	Filter []Column
	Sort   []string
}

// FilterColumn returns the allow-listed filter column with the given name.
func (a AllowList) FilterColumn(name string) (Column, bool) {
	for _, c := range a.Filter {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// CanFilter reports whether name is an allow-listed filter column.
func (a AllowList) CanFilter(name string) bool {
	_, ok := a.FilterColumn(name)
	return ok
}

// CanSort reports whether name is an allow-listed sort column.
func (a AllowList) CanSort(name string) bool {
	for _, s := range a.Sort {
		if s == name {
			return true
		}
	}
	return false
}

// GenericYearColumn returns the column startYear/endYear apply to when the
// resource has no remapping: "year" if filterable, else "tournament_year",
// else "".
func (a AllowList) GenericYearColumn() string {
	switch {
	case a.CanFilter("year"):
		return "year"
	case a.CanFilter("tournament_year"):
		return "tournament_year"
	default:
		return ""
	}
}

// Resource names a logical API resource. For view-backed resources it equals
// the view name.
type Resource string

// View-backed resources.
const (
	ResourceMatchDetails              Resource = "match_details"
	ResourceGoalDetails               Resource = "goal_details"
	ResourceTournamentSummary         Resource = "tournament_summary"
	ResourceCountryPerformance        Resource = "country_performance"
	ResourceTeamTournamentPerformance Resource = "team_tournament_performance"
	ResourceCountryProfile            Resource = "country_profile"
	ResourceYearlySummary             Resource = "yearly_match_summary"
	ResourceScorerSummary             Resource = "scorer_summary"
)

// Specialized resources.
const (
	ResourceHeadToHead         Resource = "head_to_head_stats"
	ResourceGoalTiming         Resource = "goal_timing_distribution"
	ResourcePlayerGoals        Resource = "player_goals"
	ResourceMatchList          Resource = "match_list"
	ResourcePlayerGoalTimeline Resource = "player_goal_timeline"
	ResourceCountryWDLTimeline Resource = "country_wdl_timeline"
	ResourceTopCountries       Resource = "top_countries"
	ResourceCountryActivity    Resource = "country_activity_summary"
	ResourceDistinct           Resource = "distinct"
)

// YearColumns names the columns startYear (>=) and endYear (<=) compare against.
type YearColumns struct {
	Start string
	End   string
}

// yearRemaps holds resources whose year range spans two different columns.
var yearRemaps = map[Resource]YearColumns{
	ResourceScorerSummary:  {Start: "first_scoring_year", End: "last_scoring_year"},
	ResourceCountryProfile: {Start: "first_year_active", End: "last_year_active"},
}

// YearColumnsFor resolves the year-range columns for a resource: its remap if
// one exists, otherwise the allow-list's generic year column on both ends.
func YearColumnsFor(resource Resource, allowed AllowList) (YearColumns, bool) {
	if cols, ok := yearRemaps[resource]; ok {
		return cols, true
	}
	if col := allowed.GenericYearColumn(); col != "" {
		return YearColumns{Start: col, End: col}, true
	}
	return YearColumns{}, false
}

// ViewSpec describes a resource served straight from one database view.
type ViewSpec struct {
	Resource Resource
	View     string
	Allow    AllowList
	// Key is a set of columns unique per row, appended to every ORDER BY so
	// pages never overlap.
	Key []string
}

var views = map[Resource]ViewSpec{
	ResourceMatchDetails: {
		Resource: ResourceMatchDetails,
		View:     "match_details",
		Allow: AllowList{
			Filter: []Column{
				Text("tournament"), Integer("tournament_year"), Text("home_team"),
				Text("away_team"), Text("match_city"), Text("match_country"),
			},
			Sort: []string{"match_date", "tournament_year", "home_team", "away_team", "home_score", "away_score"},
		},
		Key: []string{"match_date", "home_team", "away_team"},
	},
	ResourceGoalDetails: {
		Resource: ResourceGoalDetails,
		View:     "goal_details",
		Allow: AllowList{
			Filter: []Column{
				Text("tournament"), Integer("tournament_year"), Text("scorer_name"),
				Text("scoring_team"), Text("team_conceded"), Boolean("is_penalty"), Boolean("is_own_goal"),
			},
			Sort: []string{"match_date", "tournament_year", "scorer_name", "scoring_team", "goal_minute"},
		},
		Key: []string{"match_date", "scoring_team", "team_conceded", "goal_minute", "scorer_name"},
	},
	ResourceTournamentSummary: {
		Resource: ResourceTournamentSummary,
		View:     "tournament_summary",
		Allow: AllowList{
			Filter: []Column{Text("tournament"), Integer("year")},
			Sort:   []string{"year", "tournament", "total_matches", "total_goals", "avg_goals_per_match"},
		},
		Key: []string{"year", "tournament"},
	},
	ResourceCountryPerformance: {
		Resource: ResourceCountryPerformance,
		View:     "country_performance",
		Allow: AllowList{
			Filter: []Column{Text("country_name")},
			Sort: []string{
				"country_name", "matches_played", "wins", "draws", "losses",
				"goals_scored", "goals_conceded", "goal_difference",
			},
		},
		Key: []string{"country_name"},
	},
	ResourceTeamTournamentPerformance: {
		Resource: ResourceTeamTournamentPerformance,
		View:     "team_tournament_performance",
		Allow: AllowList{
			Filter: []Column{Text("tournament"), Integer("tournament_year"), Text("team_name")},
			Sort: []string{
				"tournament_year", "tournament", "team_name", "matches_played", "wins", "draws",
				"losses", "goals_scored", "goals_conceded", "goal_difference",
			},
		},
		Key: []string{"tournament_year", "tournament", "team_name"},
	},
	ResourceCountryProfile: {
		Resource: ResourceCountryProfile,
		View:     "country_profile",
		Allow: AllowList{
			Filter: []Column{
				Text("country_name"), Text("continent"), Text("region_name"),
				Text("sub_region_name"), Text("developed_or_developing"),
			},
			Sort: []string{
				"country_name", "continent", "region_name", "sub_region_name",
				"first_year_active", "last_year_active", "distinct_years_played",
				"matches_played", "wins", "draws", "losses", "goals_scored", "goals_conceded",
				"goal_difference", "total_score", "home_wins", "away_wins",
				"wins_per_active_year", "score_per_active_year",
			},
		},
		Key: []string{"country_name"},
	},
	ResourceYearlySummary: {
		Resource: ResourceYearlySummary,
		View:     "yearly_match_summary",
		Allow: AllowList{
			Filter: []Column{Integer("year")},
			Sort:   []string{"year", "total_matches", "draw_matches", "penalty_shootout_matches"},
		},
		Key: []string{"year"},
	},
	ResourceScorerSummary: {
		Resource: ResourceScorerSummary,
		View:     "scorer_summary",
		Allow: AllowList{
			Filter: []Column{Text("scorer_name")},
			Sort:   []string{"scorer_name", "total_goals", "first_scoring_year", "last_scoring_year", "max_goals_in_match"},
		},
		Key: []string{"scorer_name"},
	},
}

// LookupView returns the view spec registered for a resource.
func LookupView(resource Resource) (ViewSpec, bool) {
	spec, ok := views[resource]
	return spec, ok
}

// Sort allow-lists for the specialized assemblers. Sort names refer to output
// columns of their SELECT lists.
var (
	HeadToHeadSort  = AllowList{Sort: []string{"match_date", "tournament_year", "team1_score", "team2_score"}}
	PlayerGoalsSort = AllowList{Sort: []string{"match_date", "tournament", "minute", "home_team", "away_team", "scorer"}}
	MatchListSort   = AllowList{Sort: []string{
		"match_date", "tournament", "home_team", "away_team", "home_score", "away_score", "city", "country",
	}}
)
