// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package query

import (
	"strings"
)

// Direction is a SQL sort direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// SortTerm is one ORDER BY entry. Column terms are quoted allow-listed names;
// expression terms are trusted SQL written in code (e.g. "m.match_date").
type SortTerm struct {
	Column     string
	Expression string
	Direction  Direction
}

// By returns a term ordering by a quoted column.
func By(column string, dir Direction) SortTerm {
	return SortTerm{Column: column, Direction: dir}
}

// ByExpr returns a term ordering by a trusted SQL expression.
func ByExpr(expr string, dir Direction) SortTerm {
	return SortTerm{Expression: expr, Direction: dir}
}

// String renders the term as `"col" DIR` or `expr DIR`.
func (t SortTerm) String() string {
	if t.Expression != "" {
		return t.Expression + " " + string(t.Direction)
	}
	return QuoteIdent(t.Column) + " " + string(t.Direction)
}

// key identifies the ordered value for duplicate detection.
func (t SortTerm) key() string {
	if t.Expression != "" {
		return t.Expression
	}
	return t.Column
}

// SortTerms is an ordered ORDER BY list.
type SortTerms []SortTerm

// ParseSort parses "col1:dir1,col2:dir2" against an allow-list.
//
// The direction defaults to ascending when an entry has no ":" and is matched
// case-insensitively against asc/desc. Entries with a column outside the
// allow-list or any other direction are dropped, not substituted.
func ParseSort(sort string, allowed AllowList) SortTerms {
	if sort == "" {
		return nil
	}

	var terms SortTerms
	for _, entry := range strings.Split(sort, ",") {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		column := parts[0]
		direction := "asc"
		if len(parts) > 1 {
			direction = parts[1]
		}

		if !allowed.CanSort(column) {
			continue
		}
		switch strings.ToLower(direction) {
		case "asc":
			terms = append(terms, By(column, Asc))
		case "desc":
			terms = append(terms, By(column, Desc))
		}
	}
	return terms
}

// Or returns fallback when no terms survived parsing.
func (s SortTerms) Or(fallback ...SortTerm) SortTerms {
	if len(s) == 0 {
		return fallback
	}
	return s
}

// WithTieBreak appends the given terms unless the same column or expression
// is already ordered on. Tie-break terms make page boundaries deterministic
// when the requested sort key is not unique.
func (s SortTerms) WithTieBreak(tieBreak ...SortTerm) SortTerms {
	seen := make(map[string]bool, len(s)+len(tieBreak))
	out := make(SortTerms, 0, len(s)+len(tieBreak))
	for _, t := range s {
		seen[t.key()] = true
		out = append(out, t)
	}
	for _, t := range tieBreak {
		if seen[t.key()] {
			continue
		}
		seen[t.key()] = true
		out = append(out, t)
	}
	return out
}

// Strings renders each term, for squirrel's OrderBy.
func (s SortTerms) Strings() []string {
	out := make([]string, len(s))
	for i, t := range s {
		out[i] = t.String()
	}
	return out
}

// Clause renders " ORDER BY ..." or "" when empty.
func (s SortTerms) Clause() string {
	if len(s) == 0 {
		return ""
	}
	return " ORDER BY " + strings.Join(s.Strings(), ", ")
}
