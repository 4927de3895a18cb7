// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/tomtom215/footystats/internal/metrics"
)

// DefaultPoolMonitorInterval is how often pool gauges are refreshed.
const DefaultPoolMonitorInterval = 15 * time.Second

// PoolStatser reports connection pool statistics. *database.Postgres
// implements it.
type PoolStatser interface {
	Stats() sql.DBStats
}

// PoolMonitorService publishes connection pool gauges on a fixed interval.
type PoolMonitorService struct {
	pool     PoolStatser
	interval time.Duration
}

// NewPoolMonitorService creates a pool monitor. A non-positive interval uses
// DefaultPoolMonitorInterval.
func NewPoolMonitorService(pool PoolStatser, interval time.Duration) *PoolMonitorService {
	if interval <= 0 {
		interval = DefaultPoolMonitorInterval
	}
	return &PoolMonitorService{pool: pool, interval: interval}
}

// Serve implements suture.Service.
func (p *PoolMonitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.record()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.record()
		}
	}
}

func (p *PoolMonitorService) record() {
	stats := p.pool.Stats()
	metrics.RecordPoolStats(stats.OpenConnections, stats.InUse)
}

// String implements fmt.Stringer for suture's log messages.
func (p *PoolMonitorService) String() string {
	return "pool-monitor"
}
