// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/footystats/internal/database/query"
)

// QueryView serves one page of a summary view. Filters and sort entries the
// view does not allow are dropped silently.
func (db *DB) QueryView(ctx context.Context, resource query.Resource, filters query.FilterSpec, sort string, page query.Page) (*query.ResultPage, error) {
	spec, ok := query.LookupView(resource)
	if !ok {
		return nil, fmt.Errorf("unknown view resource %q", resource)
	}

	data, count, err := viewPlans(spec, filters, sort, page)
	if err != nil {
		return nil, err
	}
	return db.runPage(ctx, data, count, page)
}

// viewPlans builds SELECT DISTINCT * over the view and the matching count.
// The view's key columns always end the ORDER BY so pages never overlap.
func viewPlans(spec query.ViewSpec, filters query.FilterSpec, sort string, page query.Page) (data, count query.Plan, err error) {
	wb := query.BuildFilter(filters, spec.Allow, spec.Resource)

	keys := make([]query.SortTerm, len(spec.Key))
	for i, k := range spec.Key {
		keys[i] = query.By(k, query.Asc)
	}
	order := query.ParseSort(sort, spec.Allow).WithTieBreak(keys...)

	base := where(query.Psql.Select("*").Distinct().From(query.QuoteIdent(spec.View)), wb)

	data, err = query.FromSqlizer(spec.Resource, paginate(base.OrderBy(order.Strings()...), page))
	if err != nil {
		return query.Plan{}, query.Plan{}, err
	}
	count, err = countPlan(spec.Resource, base)
	if err != nil {
		return query.Plan{}, query.Plan{}, err
	}
	return data, count, nil
}
