package collectors

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

// Registry manages source factories and the running collector of each
// block. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	sources    map[string]Factory
	collectors map[string]Collector
	statuses   map[string]*CollectorStatus
}

// NewRegistry returns an empty registry ready for source registration.
func NewRegistry() *Registry {
	return &Registry{
		sources:    make(map[string]Factory),
		collectors: make(map[string]Collector),
		statuses:   make(map[string]*CollectorStatus),
	}
}

// RegisterSource makes a factory available under name. It returns an error
// if the name is taken.
func (r *Registry) RegisterSource(name string, f Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sources[name]; exists {
		return fmt.Errorf("source %q already registered", name)
	}
	r.sources[name] = f
	return nil
}

// Sources returns the sorted source names.
func (r *Registry) Sources() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.sources)
}

// Build creates a collector from the named source and registers it under
// block.
func (r *Registry) Build(block, source string, opts Options) (Collector, error) {
	r.mu.RLock()
	f, ok := r.sources[source]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown source %q (have %v)", source, r.Sources())
	}
	c, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("source %q: %w", source, err)
	}
	if err := r.Register(block, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Register adds a collector under a block name. It returns an error if the
// name is already registered.
func (r *Registry) Register(name string, c Collector) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.collectors[name]; exists {
		return fmt.Errorf("collector %q already registered", name)
	}

	r.collectors[name] = c
	r.statuses[name] = &CollectorStatus{
		Name:    name,
		Healthy: true,
	}
	return nil
}

// Unregister removes a collector by name. It is a no-op if the name is not
// found.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.collectors, name)
	delete(r.statuses, name)
}

// Get returns the collector with the given name, or false if not found.
func (r *Registry) Get(name string) (Collector, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.collectors[name]
	return c, ok
}

// List returns a sorted slice of all registered collector names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.collectors)
}

// Collect runs the named collector once and records the outcome in its
// status.
func (r *Registry) Collect(ctx context.Context, name string) (value.Values, error) {
	c, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("collector %q not registered", name)
	}
	start := time.Now()
	vs, err := c.Collect(ctx)
	latency := time.Since(start)

	r.updateStatus(name, func(s *CollectorStatus) {
		s.LastRun = start
		s.LastLatency = latency
		s.LastError = err
		s.RunCount++
		// Partial results keep the collector healthy.
		s.Healthy = err == nil || vs != nil
		if err != nil {
			s.ErrorCount++
		}
	})
	return vs, err
}

// Status returns a copy of the runtime status for the named collector, or
// false if the collector is not registered.
func (r *Registry) Status(name string) (CollectorStatus, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.statuses[name]
	if !ok {
		return CollectorStatus{}, false
	}
	return *s, true
}

// AllStatus returns a copy of all collector statuses, sorted by name.
func (r *Registry) AllStatus() []CollectorStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]CollectorStatus, 0, len(r.statuses))
	for _, s := range r.statuses {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// updateStatus updates the status entry for the named collector. Caller must
// NOT hold the lock; this method acquires it.
func (r *Registry) updateStatus(name string, fn func(s *CollectorStatus)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.statuses[name]; ok {
		fn(s)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
