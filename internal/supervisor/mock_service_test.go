// Footystats - Historical Football Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footystats

package supervisor

import (
	"context"
	"sync"
	"sync/atomic"
)

// mockService is a configurable suture.Service for tree tests.
type mockService struct {
	name       string
	starts     atomic.Int32
	stops      atomic.Int32
	mu         sync.Mutex
	err        error
	failsLeft  int
	startedSig chan struct{}
}

func newMockService(name string) *mockService {
	return &mockService{name: name, startedSig: make(chan struct{}, 16)}
}

// failTimes makes the next n Serve calls return err immediately.
func (m *mockService) failTimes(n int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failsLeft = n
	m.err = err
}

func (m *mockService) Serve(ctx context.Context) error {
	m.starts.Add(1)
	defer m.stops.Add(1)

	select {
	case m.startedSig <- struct{}{}:
	default:
	}

	m.mu.Lock()
	if m.failsLeft > 0 {
		m.failsLeft--
		err := m.err
		m.mu.Unlock()
		return err
	}
	m.mu.Unlock()

	<-ctx.Done()
	return ctx.Err()
}

func (m *mockService) String() string {
	return m.name
}
