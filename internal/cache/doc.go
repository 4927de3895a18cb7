// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

/*
Package cache stores the value lists behind the distinct-value lookups.

The football dataset is read-only, so the lists that populate selection
controls (tournaments, countries, scorers, cities, years, continents) are
cached for CACHE_TTL instead of being recomputed on every page load.

# Backends

  - memory: Cache, a TTL map guarded by sync.RWMutex with a background sweep
  - redis: RedisStore, go-redis/v8 with JSON payloads, shared between replicas
  - none: Noop, always misses

All three satisfy Store. Store methods never fail the caller: a Redis outage
degrades to cache misses and the lookup falls through to Postgres.

# Usage Example

	store, err := cache.NewStore(ctx, cfg.Cache)
	if err != nil {
	    return err
	}
	defer store.Close()

	key := cache.GenerateKey("distinct:scorers", map[string]string{"q": q})
	if values, ok := store.Get(ctx, key); ok {
	    return values, nil
	}

# Metrics

Hits and misses are counted per backend in footystats_cache_hits_total and
footystats_cache_misses_total.
*/
package cache
