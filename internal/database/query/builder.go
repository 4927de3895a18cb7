// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

// Package query provides SQL query building utilities for the database package.
// It owns the column allow-lists and turns request parameters into parameterized
// Postgres fragments.
package query

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// WhereBuilder constructs SQL WHERE clauses with parameterized arguments.
// Clauses are written with "?" markers and renumbered to Postgres "$N"
// placeholders on Build, so fragments compose without tracking an index.
//
// Example usage:
//
//	wb := query.NewWhereBuilder()
//	wb.AddComparison("tournament_year", ">=", 2010)
//	wb.AddILike("tournament", "World Cup")
//	whereClause, args := wb.Build()
//	// "tournament_year" >= $1 AND "tournament" ILIKE $2
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder creates a new WhereBuilder instance.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		clauses: []string{},
		args:    []interface{}{},
	}
}

// AddClause adds a raw WHERE clause with its arguments.
// The clause must contain exactly one "?" per argument.
//
// Parameters:
//   - clause: SQL condition fragment (e.g., "m.city ILIKE ?")
//   - args: Arguments to bind to placeholders in the clause
func (wb *WhereBuilder) AddClause(clause string, args ...interface{}) *WhereBuilder {
	wb.clauses = append(wb.clauses, clause)
	wb.args = append(wb.args, args...)
	return wb
}

// AddComparison adds `"column" op ?` for a quoted column name.
func (wb *WhereBuilder) AddComparison(column, op string, value interface{}) *WhereBuilder {
	return wb.AddClause(fmt.Sprintf("%s %s ?", QuoteIdent(column), op), value)
}

// AddILike adds a case-insensitive substring match on a quoted column.
// The value is wrapped in wildcards and bound, never interpolated.
func (wb *WhereBuilder) AddILike(column, value string) *WhereBuilder {
	return wb.AddClause(QuoteIdent(column)+" ILIKE ?", Contains(value))
}

// Build constructs the final WHERE predicate and returns it with arguments.
// Clauses are joined with "AND" and placeholders are numbered from $1.
// Returns ("", []) if no clauses were added.
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "", []interface{}{}
	}
	predicate, err := sq.Dollar.ReplacePlaceholders(strings.Join(wb.clauses, " AND "))
	if err != nil {
		// ReplacePlaceholders only fails on a writer error; strings.Builder never returns one.
		return "", []interface{}{}
	}
	return predicate, wb.args
}

// ToSql implements squirrel.Sqlizer so a builder can be passed to
// SelectBuilder.Where. The "?" markers are left for squirrel to number.
func (wb *WhereBuilder) ToSql() (string, []interface{}, error) {
	return strings.Join(wb.clauses, " AND "), wb.args, nil
}

// IsEmpty returns true if no clauses have been added.
func (wb *WhereBuilder) IsEmpty() bool {
	return len(wb.clauses) == 0
}

// QuoteIdent double-quotes a Postgres identifier, escaping embedded quotes.
// Only allow-listed names reach this function.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Contains wraps a value in "%" wildcards for ILIKE.
func Contains(value string) string {
	return "%" + value + "%"
}
