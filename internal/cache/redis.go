// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package cache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"

	"github.com/tomtom215/footystats/internal/config"
	"github.com/tomtom215/footystats/internal/logging"
	"github.com/tomtom215/footystats/internal/metrics"
)

// keyPrefix namespaces every key this service writes.
const keyPrefix = "footystats:"

// pingTimeout bounds the connectivity check in NewRedis.
const pingTimeout = 5 * time.Second

// RedisStore is a Store shared between API replicas. Values are JSON encoded.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to Redis and verifies the connection with PING.
func NewRedis(ctx context.Context, cfg config.RedisConfig, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr, err)
	}

	logging.Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("Redis cache connected")
	return &RedisStore{client: client, ttl: ttl}, nil
}

// Get returns the cached list. Redis errors are logged and reported as a miss.
func (s *RedisStore) Get(ctx context.Context, key string) ([]interface{}, bool) {
	data, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordCacheLookup(BackendRedis, false)
		return nil, false
	}
	if err != nil {
		metrics.RecordCacheError(BackendRedis, "get")
		logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("Redis get failed")
		return nil, false
	}

	values, err := decodeValues(data)
	if err != nil {
		metrics.RecordCacheError(BackendRedis, "decode")
		logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("Discarding undecodable cache entry")
		return nil, false
	}

	metrics.RecordCacheLookup(BackendRedis, true)
	return values, true
}

// Set stores values with the configured TTL.
func (s *RedisStore) Set(ctx context.Context, key string, values []interface{}) {
	data, err := encodeValues(values)
	if err != nil {
		metrics.RecordCacheError(BackendRedis, "encode")
		return
	}
	if err := s.client.Set(ctx, keyPrefix+key, data, s.ttl).Err(); err != nil {
		metrics.RecordCacheError(BackendRedis, "set")
		logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("Redis set failed")
	}
}

// Backend returns "redis".
func (s *RedisStore) Backend() string {
	return BackendRedis
}

// Close releases the client's connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func encodeValues(values []interface{}) ([]byte, error) {
	if values == nil {
		values = []interface{}{}
	}
	return json.Marshal(values)
}

// decodeValues keeps numbers as json.Number so integer years survive the
// round trip without turning into floats.
func decodeValues(data []byte) ([]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var values []interface{}
	if err := dec.Decode(&values); err != nil {
		return nil, err
	}
	if values == nil {
		values = []interface{}{}
	}
	return values, nil
}
