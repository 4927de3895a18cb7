// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package cache

import (
	"context"
	"fmt"

	"github.com/tomtom215/footystats/internal/config"
)

// Store backend names, also used as the metrics label.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// Store caches flat value lists such as the distinct-value lookups. A store
// failure is never an error to callers: Get reports a miss and Set drops the
// value.
type Store interface {
	Get(ctx context.Context, key string) ([]interface{}, bool)
	Set(ctx context.Context, key string, values []interface{})
	Backend() string
	Close() error
}

// NewStore builds the backend selected by cfg.Backend.
func NewStore(ctx context.Context, cfg config.CacheConfig) (Store, error) {
	switch cfg.Backend {
	case config.CacheBackendMemory, "":
		return New(cfg.TTL), nil
	case config.CacheBackendRedis:
		return NewRedis(ctx, cfg.Redis, cfg.TTL)
	case config.CacheBackendNone:
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// Noop is a Store that never holds anything.
type Noop struct{}

// Get always misses.
func (Noop) Get(context.Context, string) ([]interface{}, bool) { return nil, false }

// Set discards values.
func (Noop) Set(context.Context, string, []interface{}) {}

// Backend returns "none".
func (Noop) Backend() string { return BackendNone }

// Close is a no-op.
func (Noop) Close() error { return nil }
