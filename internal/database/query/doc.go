// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

// Package query provides SQL query building utilities for the database package.
//
// It turns HTTP query-string parameters into parameterized Postgres fragments
// for the football statistics views, and it owns the per-resource column
// allow-lists that keep request text out of SQL.
//
// # Overview
//
// Four pieces compose into every paginated query:
//
//   - AllowList / ViewSpec: which columns a resource may filter and sort on
//   - BuildFilter: FilterSpec -> WhereBuilder (predicate + bound values)
//   - ParseSort: "col:dir,col:dir" -> SortTerms (ORDER BY)
//   - ParsePage: limit/offset -> Page, and NewResultPage for the response
//
// # Usage Example
//
//	spec, _ := query.LookupView(query.ResourceMatchDetails)
//	wb := query.BuildFilter(query.FilterSpecFromValues(r.URL.Query()), spec.Allow, spec.Resource)
//	where, args := wb.Build()
//	// where: `"tournament" ILIKE $1 AND "tournament_year" >= $2`
//	// args:  ["%World Cup%", 2010]
//
// # Year Ranges
//
// startYear and endYear are resource-aware. scorer_summary maps them to
// first_scoring_year >= and last_scoring_year <=; country_profile maps them to
// first_year_active >= and last_year_active <=. Other views use "year" when it
// is filterable, otherwise "tournament_year", otherwise nothing. Both bounds
// are inclusive.
//
// # SQL Injection Prevention
//
// Identifiers only ever come from the allow-lists in this package and are
// double-quoted with QuoteIdent. Filter values are always bound parameters.
// Unknown filter names and invalid sort entries are dropped silently.
//
// # Placeholders
//
// WhereBuilder clauses use "?" and are renumbered to $1..$N on Build.
// WhereBuilder also implements squirrel.Sqlizer, so a predicate built here can
// be shared by a data query and its count query. Plan.Validate checks that a
// finished statement uses exactly $1..$len(args).
//
// # Thread Safety
//
// Builders are request-scoped and not thread-safe. The registry is read-only.
package query
