// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package query

import (
	"fmt"
	"regexp"
	"strconv"

	sq "github.com/Masterminds/squirrel"
)

// Plan is a ready-to-execute statement: SQL text with $N placeholders, its
// bound values in placeholder order, and the resource it serves.
type Plan struct {
	SQL      string
	Args     []interface{}
	Resource Resource
}

// Psql is a squirrel statement builder emitting Postgres placeholders.
var Psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// FromSqlizer renders a squirrel builder into a Plan.
func FromSqlizer(resource Resource, s sq.Sqlizer) (Plan, error) {
	sqlText, args, err := s.ToSql()
	if err != nil {
		return Plan{}, fmt.Errorf("build %s query: %w", resource, err)
	}
	if args == nil {
		args = []interface{}{}
	}
	return Plan{SQL: sqlText, Args: args, Resource: resource}, nil
}

var placeholderRe = regexp.MustCompile(`\$(\d+)`)

// Validate checks that the placeholders in the SQL text are exactly
// $1..$len(Args). A placeholder may appear more than once.
func (p Plan) Validate() error {
	seen := make(map[int]bool)
	for _, m := range placeholderRe.FindAllStringSubmatch(p.SQL, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return fmt.Errorf("%s: bad placeholder %q", p.Resource, m[0])
		}
		if n < 1 || n > len(p.Args) {
			return fmt.Errorf("%s: placeholder $%d out of range for %d args", p.Resource, n, len(p.Args))
		}
		seen[n] = true
	}
	if len(seen) != len(p.Args) {
		return fmt.Errorf("%s: %d distinct placeholders for %d args", p.Resource, len(seen), len(p.Args))
	}
	return nil
}
