// File: api/testing.go
// Package api provides mock/testing utilities for the core contracts.
// License: Apache-2.0

package api

import "time"

// MockTickSource is a test and mock-friendly implementation of TickSource.
type MockTickSource struct {
	SubscribeFunc func(TickHandler) (Cancelable, error)
	CloseFunc     func() error
}

func (m *MockTickSource) Subscribe(h TickHandler) (Cancelable, error) { return m.SubscribeFunc(h) }
func (m *MockTickSource) Close() error                                { return m.CloseFunc() }

// MockClock is a fixed or scripted Clock.
type MockClock struct {
	NowFunc func() time.Duration
}

func (m *MockClock) Now() time.Duration { return m.NowFunc() }

// MockCancelable records cancellation for assertions.
type MockCancelable struct {
	Cancelled bool
	DoneCh    chan struct{}
}

func (m *MockCancelable) Cancel() error {
	m.Cancelled = true
	return nil
}

func (m *MockCancelable) Done() <-chan struct{} { return m.DoneCh }
