// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package api

import (
	"context"
	"sync"

	"github.com/tomtom215/footystats/internal/database"
	"github.com/tomtom215/footystats/internal/database/query"
)

// fakeStore records the last call and returns canned results.
type fakeStore struct {
	mu sync.Mutex

	pingErr error
	err     error
	rows    []query.Row
	page    *query.ResultPage
	row     query.Row
	values  []interface{}

	calls    []string
	lastArgs []interface{}
}

func (f *fakeStore) record(name string, args ...interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	f.lastArgs = args
}

func (f *fakeStore) called() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeStore) arg(i int) interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i >= len(f.lastArgs) {
		return nil
	}
	return f.lastArgs[i]
}

func (f *fakeStore) pageOrEmpty(p query.Page) *query.ResultPage {
	if f.page != nil {
		return f.page
	}
	return query.NewResultPage(f.rows, int64(len(f.rows)), p)
}

func (f *fakeStore) Ping(context.Context) error {
	f.record("Ping")
	return f.pingErr
}

func (f *fakeStore) QueryView(_ context.Context, resource query.Resource, filters query.FilterSpec, sort string, page query.Page) (*query.ResultPage, error) {
	f.record("QueryView", resource, filters, sort, page)
	if f.err != nil {
		return nil, f.err
	}
	return f.pageOrEmpty(page), nil
}

func (f *fakeStore) HeadToHead(_ context.Context, p database.HeadToHeadParams) ([]query.Row, error) {
	f.record("HeadToHead", p)
	return f.rows, f.err
}

func (f *fakeStore) GoalTiming(_ context.Context, p database.GoalTimingParams) ([]query.Row, error) {
	f.record("GoalTiming", p)
	return f.rows, f.err
}

func (f *fakeStore) PlayerGoals(_ context.Context, p database.PlayerGoalsParams) (*query.ResultPage, error) {
	f.record("PlayerGoals", p)
	if f.err != nil {
		return nil, f.err
	}
	return f.pageOrEmpty(p.Page), nil
}

func (f *fakeStore) MatchList(_ context.Context, p database.MatchListParams) (*query.ResultPage, error) {
	f.record("MatchList", p)
	if f.err != nil {
		return nil, f.err
	}
	return f.pageOrEmpty(p.Page), nil
}

func (f *fakeStore) PlayerGoalTimeline(_ context.Context, scorerName string, years query.YearRange) ([]query.Row, error) {
	f.record("PlayerGoalTimeline", scorerName, years)
	return f.rows, f.err
}

func (f *fakeStore) CountryWDLTimeline(_ context.Context, countryName string, years query.YearRange) ([]query.Row, error) {
	f.record("CountryWDLTimeline", countryName, years)
	return f.rows, f.err
}

func (f *fakeStore) TopCountries(_ context.Context, p database.TopCountriesParams) ([]query.Row, error) {
	f.record("TopCountries", p)
	return f.rows, f.err
}

func (f *fakeStore) CountryActivity(_ context.Context, countryName string) (query.Row, error) {
	f.record("CountryActivity", countryName)
	if f.err != nil {
		return nil, f.err
	}
	return f.row, nil
}

func (f *fakeStore) Distinct(_ context.Context, kind database.DistinctKind, q string) ([]interface{}, error) {
	f.record("Distinct", kind, q)
	return f.values, f.err
}

var _ Store = (*fakeStore)(nil)
