// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/footystats/internal/cache"
	"github.com/tomtom215/footystats/internal/database/query"
)

func TestCountFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    []query.Row
		want    int64
		wantErr bool
	}{
		{"int64", []query.Row{{countAlias: int64(42)}}, 42, false},
		{"int", []query.Row{{countAlias: 7}}, 7, false},
		{"bytes", []query.Row{{countAlias: []byte("1200")}}, 1200, false},
		{"string", []query.Row{{countAlias: "3"}}, 3, false},
		{"no rows", nil, 0, false},
		{"null", []query.Row{{countAlias: nil}}, 0, false},
		{"garbage", []query.Row{{countAlias: "many"}}, 0, true},
		{"float", []query.Row{{countAlias: 1.5}}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := countFrom(tt.rows)
			if (err != nil) != tt.wantErr {
				t.Fatalf("countFrom error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("countFrom = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRun_RejectsMalformedPlan(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{}
	db := New(exec, nil, 0)

	plan := query.Plan{SQL: "SELECT * FROM matches WHERE city = $1 AND tournament = $2", Args: []interface{}{"Paris"}, Resource: "test"}
	if _, err := db.run(context.Background(), "select", plan); err == nil {
		t.Fatal("expected placeholder mismatch error")
	}
	if len(exec.calls()) != 0 {
		t.Error("malformed plan must not reach the executor")
	}
}

func TestRun_AppliesQueryTimeout(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{}
	plan := query.Plan{SQL: "SELECT 1", Args: []interface{}{}, Resource: "test"}

	if _, err := New(exec, nil, time.Second).run(context.Background(), "select", plan); err != nil {
		t.Fatal(err)
	}
	if _, err := New(exec, nil, 0).run(context.Background(), "select", plan); err != nil {
		t.Fatal(err)
	}

	calls := exec.calls()
	if !calls[0].HasDeadline {
		t.Error("configured timeout should set a deadline")
	}
	if calls[1].HasDeadline {
		t.Error("zero timeout should not set a deadline")
	}
}

func TestRun_WrapsDriverError(t *testing.T) {
	t.Parallel()

	driverErr := errors.New(`pq: syntax error at or near "FORM"`)
	exec := &fakeExecutor{respond: func(string, []interface{}) ([]query.Row, error) { return nil, driverErr }}

	_, err := New(exec, nil, 0).run(context.Background(), "select",
		query.Plan{SQL: "SELECT * FORM matches", Args: []interface{}{}, Resource: query.ResourceMatchList})
	if !errors.Is(err, driverErr) {
		t.Errorf("err = %v, want wrapped driver error", err)
	}
}

func TestNew_DefaultsToNoopCache(t *testing.T) {
	t.Parallel()

	db := New(&fakeExecutor{}, nil, 0)
	if db.values.Backend() != cache.BackendNone {
		t.Errorf("backend = %s, want none", db.values.Backend())
	}
}

func TestPingAndClose(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{}
	db := New(exec, nil, time.Second)
	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping = %v", err)
	}

	exec.pingErr = errors.New("connection refused")
	if err := db.Ping(context.Background()); err == nil {
		t.Error("expected ping error")
	}

	if err := db.Close(); err != nil || !exec.closed {
		t.Errorf("Close = %v, closed = %v", err, exec.closed)
	}
}
