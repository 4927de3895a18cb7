// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package database

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/footystats/internal/cache"
	"github.com/tomtom215/footystats/internal/database/query"
	"github.com/tomtom215/footystats/internal/logging"
	"github.com/tomtom215/footystats/internal/metrics"
)

// DB assembles and runs the read queries behind every API endpoint.
type DB struct {
	exec         Executor
	values       cache.Store
	queryTimeout time.Duration
}

// New returns a DB running queries on exec. values caches distinct-value
// lists and may be nil. A zero queryTimeout leaves queries bounded only by
// the caller's context.
func New(exec Executor, values cache.Store, queryTimeout time.Duration) *DB {
	if values == nil {
		values = cache.Noop{}
	}
	return &DB{exec: exec, values: values, queryTimeout: queryTimeout}
}

// Ping checks database connectivity.
func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()
	return db.exec.Ping(ctx)
}

// Close closes the executor.
func (db *DB) Close() error {
	return db.exec.Close()
}

func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.queryTimeout)
}

// run executes a single plan. Failures are logged with the SQL text and the
// sanitized bound values.
func (db *DB) run(ctx context.Context, operation string, plan query.Plan) ([]query.Row, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	qctx, cancel := db.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.exec.Query(qctx, plan.SQL, plan.Args...)
	metrics.RecordDBQuery(operation, string(plan.Resource), time.Since(start), err)

	if err != nil {
		event := logging.Ctx(ctx).Error()
		if errors.Is(err, context.Canceled) || errors.Is(err, ErrCircuitOpen) {
			event = logging.Ctx(ctx).Warn()
		}
		event.Err(err).
			Str("resource", string(plan.Resource)).
			Str("operation", operation).
			Str("sql", plan.SQL).
			Strs("args", logging.SanitizeArgs(plan.Args)).
			Msg("Query failed")
		return nil, fmt.Errorf("%s %s: %w", plan.Resource, operation, err)
	}

	metrics.RecordRows(string(plan.Resource), len(rows))
	logging.Ctx(ctx).Debug().
		Str("resource", string(plan.Resource)).
		Str("operation", operation).
		Int("rows", len(rows)).
		Dur("duration", time.Since(start)).
		Msg("Query executed")
	return rows, nil
}

// runPage issues the data and count queries concurrently. They are separate
// round trips and are not wrapped in a transaction.
func (db *DB) runPage(ctx context.Context, data, count query.Plan, page query.Page) (*query.ResultPage, error) {
	var (
		rows  []query.Row
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = db.run(gctx, "select", data)
		return err
	})
	g.Go(func() error {
		countRows, err := db.run(gctx, "count", count)
		if err != nil {
			return err
		}
		total, err = countFrom(countRows)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return query.NewResultPage(rows, total, page), nil
}

// countAlias names the single column of every count query.
const countAlias = "total"

// countPlan counts the rows base would return, DISTINCT included, so the
// total always agrees with what paging through base yields.
func countPlan(resource query.Resource, base sq.SelectBuilder) (query.Plan, error) {
	return query.FromSqlizer(resource,
		query.Psql.Select("COUNT(*) AS "+countAlias).FromSelect(base, "counted"))
}

// countFrom extracts the count from a single-row result.
func countFrom(rows []query.Row) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	switch v := rows[0][countAlias].(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case []byte:
		return strconv.ParseInt(string(v), 10, 64)
	case string:
		return strconv.ParseInt(v, 10, 64)
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("unexpected count type %T", v)
	}
}

// where adds wb to b only when it holds at least one clause.
func where(b sq.SelectBuilder, wb *query.WhereBuilder) sq.SelectBuilder {
	if wb.IsEmpty() {
		return b
	}
	return b.Where(wb)
}

// addYearRange adds inclusive bounds on expr.
func addYearRange(wb *query.WhereBuilder, expr string, years query.YearRange) {
	if years.Start != nil {
		wb.AddClause(expr+" >= ?", *years.Start)
	}
	if years.End != nil {
		wb.AddClause(expr+" <= ?", *years.End)
	}
}

func paginate(b sq.SelectBuilder, page query.Page) sq.SelectBuilder {
	return b.Limit(uint64(page.Limit)).Offset(uint64(page.Offset))
}
