// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/footystats/internal/database/query"
	"github.com/tomtom215/footystats/internal/logging"
	"github.com/tomtom215/footystats/internal/metrics"
)

// BreakerName is the breaker's metrics label.
const BreakerName = "postgres"

// BreakerSettings tunes the circuit breaker around the executor.
type BreakerSettings struct {
	// MinRequests is the number of requests in the window before tripping is considered.
	MinRequests uint32
	// FailureRatio opens the circuit when reached.
	FailureRatio float64
	// Interval resets the counts while closed.
	Interval time.Duration
	// Timeout is how long the circuit stays open before probing.
	Timeout time.Duration
}

// DefaultBreakerSettings opens after a 60% failure rate over at least 10 queries
// and probes again after 30 seconds.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MinRequests:  10,
		FailureRatio: 0.6,
		Interval:     time.Minute,
		Timeout:      30 * time.Second,
	}
}

// Breaker is an Executor that stops sending queries to an unhealthy database.
// While open, Query fails fast with ErrCircuitOpen.
type Breaker struct {
	next Executor
	cb   *gobreaker.CircuitBreaker[[]query.Row]
}

// NewBreaker wraps next with a circuit breaker.
func NewBreaker(next Executor, s BreakerSettings) *Breaker {
	metrics.CircuitBreakerState.WithLabelValues(BreakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]query.Row](gobreaker.Settings{
		Name:        BreakerName,
		MaxRequests: 3,
		Interval:    s.Interval,
		Timeout:     s.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= s.FailureRatio
			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		// A client hanging up is not a database failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", stateToString(from)).
				Str("to", stateToString(to)).
				Msg("[CIRCUIT BREAKER] State transition")
			metrics.RecordCircuitBreakerTransition(name, stateToString(from), stateToString(to), stateToInt(to))
		},
	})

	return &Breaker{next: next, cb: cb}
}

// Query runs the query through the breaker.
func (b *Breaker) Query(ctx context.Context, sqlText string, args ...interface{}) ([]query.Row, error) {
	rows, err := b.cb.Execute(func() ([]query.Row, error) {
		return b.next.Query(ctx, sqlText, args...)
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordCircuitBreakerResult(BreakerName, "rejected")
		return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	case err != nil:
		metrics.RecordCircuitBreakerResult(BreakerName, "failure")
		return nil, err
	}
	metrics.RecordCircuitBreakerResult(BreakerName, "success")
	return rows, nil
}

// Ping bypasses the breaker so health checks see the real database state.
func (b *Breaker) Ping(ctx context.Context) error {
	return b.next.Ping(ctx)
}

// Close closes the wrapped executor.
func (b *Breaker) Close() error {
	return b.next.Close()
}

// State returns the current breaker state.
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

func stateToInt(state gobreaker.State) int {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
