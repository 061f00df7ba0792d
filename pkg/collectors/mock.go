package collectors

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

// MockCollector implements Collector for testing. All fields are configurable
// and it tracks how many times Collect has been called.
type MockCollector struct {
	name     string
	interval time.Duration
	format   string

	mu        sync.RWMutex
	values    value.Values
	err       error
	callCount atomic.Int64

	// CollectFunc, if set, overrides the default Collect behavior.
	// This allows tests to inject dynamic behavior (e.g., return different
	// values on each call, or block until a signal).
	CollectFunc func(ctx context.Context) (value.Values, error)
}

// MockCollectorOption configures a MockCollector.
type MockCollectorOption func(*MockCollector)

// WithValues sets the values returned by Collect.
func WithValues(vs value.Values) MockCollectorOption {
	return func(m *MockCollector) { m.values = vs }
}

// WithError sets the error returned by Collect.
func WithError(err error) MockCollectorOption {
	return func(m *MockCollector) { m.err = err }
}

// WithFormat sets DefaultFormat.
func WithFormat(format string) MockCollectorOption {
	return func(m *MockCollector) { m.format = format }
}

// WithCollectFunc sets a custom function for Collect.
func WithCollectFunc(fn func(ctx context.Context) (value.Values, error)) MockCollectorOption {
	return func(m *MockCollector) { m.CollectFunc = fn }
}

// NewMockCollector creates a mock collector with the given name, interval,
// and options.
func NewMockCollector(name string, interval time.Duration, opts ...MockCollectorOption) *MockCollector {
	m := &MockCollector{
		name:     name,
		interval: interval,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the collector name.
func (m *MockCollector) Name() string { return m.name }

// Interval returns the configured collection interval.
func (m *MockCollector) Interval() time.Duration { return m.interval }

// DefaultFormat returns the configured default template.
func (m *MockCollector) DefaultFormat() string { return m.format }

// SetValues updates the returned values (thread-safe).
func (m *MockCollector) SetValues(vs value.Values) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = vs
}

// SetError updates the returned error (thread-safe).
func (m *MockCollector) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Collect performs a mock collection. It increments the call counter and
// returns the configured values and error, or delegates to CollectFunc if set.
func (m *MockCollector) Collect(ctx context.Context) (value.Values, error) {
	m.callCount.Add(1)

	if m.CollectFunc != nil {
		return m.CollectFunc(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values, m.err
}

// CallCount returns how many times Collect has been called.
func (m *MockCollector) CallCount() int64 {
	return m.callCount.Load()
}
