// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package database

import (
	"context"
	"strings"
	"sync"

	"github.com/tomtom215/footystats/internal/database/query"
)

type recordedQuery struct {
	SQL  string
	Args []interface{}
	// HasDeadline records whether the context carried a deadline.
	HasDeadline bool
}

// fakeExecutor records every query and answers through respond.
type fakeExecutor struct {
	mu      sync.Mutex
	queries []recordedQuery
	respond func(sql string, args []interface{}) ([]query.Row, error)
	pingErr error
	closed  bool
}

func (f *fakeExecutor) Query(ctx context.Context, sqlText string, args ...interface{}) ([]query.Row, error) {
	_, hasDeadline := ctx.Deadline()

	f.mu.Lock()
	f.queries = append(f.queries, recordedQuery{SQL: sqlText, Args: args, HasDeadline: hasDeadline})
	respond := f.respond
	f.mu.Unlock()

	if respond == nil {
		return []query.Row{}, nil
	}
	return respond(sqlText, args)
}

func (f *fakeExecutor) Ping(context.Context) error {
	return f.pingErr
}

func (f *fakeExecutor) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeExecutor) calls() []recordedQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]recordedQuery, len(f.queries))
	copy(out, f.queries)
	return out
}

// pagedResponder answers count queries with total and everything else with rows.
func pagedResponder(rows []query.Row, total int64) func(string, []interface{}) ([]query.Row, error) {
	return func(sqlText string, _ []interface{}) ([]query.Row, error) {
		if isCountQuery(sqlText) {
			return []query.Row{{countAlias: total}}, nil
		}
		return rows, nil
	}
}

func isCountQuery(sqlText string) bool {
	return strings.HasPrefix(sqlText, "SELECT COUNT(*)")
}
