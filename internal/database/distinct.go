// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package database

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/tomtom215/footystats/internal/cache"
	"github.com/tomtom215/footystats/internal/database/query"
)

// DistinctKind names a distinct-value list.
type DistinctKind string

// Distinct-value lists, named after their URL suffix.
const (
	DistinctTournaments  DistinctKind = "tournaments"
	DistinctCountries    DistinctKind = "countries"
	DistinctScorers      DistinctKind = "scorers"
	DistinctCities       DistinctKind = "cities"
	DistinctMatchYears   DistinctKind = "match-years"
	DistinctScoringYears DistinctKind = "scoring-years"
	DistinctActiveYears  DistinctKind = "active-years"
	DistinctContinents   DistinctKind = "continents"
)

// DistinctKinds lists every kind in route order.
var DistinctKinds = []DistinctKind{
	DistinctTournaments, DistinctCountries, DistinctScorers, DistinctCities,
	DistinctMatchYears, DistinctScoringYears, DistinctActiveYears, DistinctContinents,
}

type distinctLookup struct {
	column string
	// build receives the optional substring filter; only scorers use it.
	build func(q string) sq.SelectBuilder
}

func nonEmpty(column string) string {
	return column + " IS NOT NULL AND " + column + " <> ''"
}

// yearUnion selects the distinct non-null years appearing in either column.
func yearUnion(table, first, last string) sq.SelectBuilder {
	from := fmt.Sprintf("(SELECT %s AS year FROM %s UNION SELECT %s AS year FROM %s) AS years",
		first, table, last, table)
	return query.Psql.Select("year").Distinct().
		From(from).
		Where("year IS NOT NULL").
		OrderBy("year DESC")
}

var distinctLookups = map[DistinctKind]distinctLookup{
	DistinctTournaments: {
		column: "tournament",
		build: func(string) sq.SelectBuilder {
			return query.Psql.Select("tournament").Distinct().From("matches").OrderBy("tournament")
		},
	},
	DistinctCountries: {
		column: "display_name",
		build: func(string) sq.SelectBuilder {
			return query.Psql.Select("display_name").Distinct().
				From("countries").
				Where("status <> 'Unrecognized'").
				OrderBy("display_name")
		},
	},
	DistinctScorers: {
		column: "scorer",
		build: func(q string) sq.SelectBuilder {
			b := query.Psql.Select("scorer").Distinct().
				From("goals").
				Where(nonEmpty("scorer"))
			if q != "" {
				b = b.Where("scorer ILIKE ?", query.Contains(q))
			}
			return b.OrderBy("scorer").Limit(query.DistinctScorersLimit)
		},
	},
	DistinctCities: {
		column: "city",
		build: func(string) sq.SelectBuilder {
			return query.Psql.Select("city").Distinct().
				From("matches").
				Where(nonEmpty("city")).
				OrderBy("city")
		},
	},
	DistinctMatchYears: {
		column: "year",
		build: func(string) sq.SelectBuilder {
			return query.Psql.Select("EXTRACT(YEAR FROM match_date)::int AS year").Distinct().
				From("matches").
				OrderBy("year DESC")
		},
	},
	DistinctScoringYears: {
		column: "year",
		build: func(string) sq.SelectBuilder {
			return yearUnion("scorer_summary", "first_scoring_year", "last_scoring_year")
		},
	},
	DistinctActiveYears: {
		column: "year",
		build: func(string) sq.SelectBuilder {
			return yearUnion("country_profile", "first_year_active", "last_year_active")
		},
	},
	DistinctContinents: {
		column: "continent",
		build: func(string) sq.SelectBuilder {
			return query.Psql.Select("continent").Distinct().
				From("countries").
				Where(nonEmpty("continent")).
				OrderBy("continent")
		},
	},
}

// Distinct returns the sorted, de-duplicated values of one column. q narrows
// the scorers list and is ignored by every other kind. Full lists are served
// from the cache while fresh; filtered scorer lists always hit the database
// so client-chosen q values cannot grow the cache.
func (db *DB) Distinct(ctx context.Context, kind DistinctKind, q string) ([]interface{}, error) {
	lookup, ok := distinctLookups[kind]
	if !ok {
		return nil, fmt.Errorf("unknown distinct list %q", kind)
	}
	if kind != DistinctScorers {
		q = ""
	}

	cacheable := q == ""
	key := cache.GenerateKey("distinct:"+string(kind), map[string]string{"q": q})
	if cacheable {
		if values, ok := db.values.Get(ctx, key); ok {
			return values, nil
		}
	}

	plan, err := query.FromSqlizer(query.ResourceDistinct, lookup.build(q))
	if err != nil {
		return nil, err
	}
	rows, err := db.run(ctx, "distinct", plan)
	if err != nil {
		return nil, err
	}

	values := make([]interface{}, len(rows))
	for i, row := range rows {
		values[i] = row[lookup.column]
	}
	if cacheable {
		db.values.Set(ctx, key, values)
	}
	return values, nil
}
