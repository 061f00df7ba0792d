// Package collectors defines the interfaces and registry for pulsebar data
// sources. Each collector produces a value.Values map that a block renders
// through its format template.
package collectors

import (
	"context"
	"time"

	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

// Collector is the interface all data sources implement. Implementations live
// in sub-packages (e.g., pkg/collectors/sysmetrics) and are created through
// a Factory registered under a source name.
type Collector interface {
	// Name returns the source name (e.g., "cpu").
	Name() string

	// Collect performs one collection cycle. A collector that gathers several
	// metrics may return partial values together with an error.
	Collect(ctx context.Context) (value.Values, error)

	// Interval returns how often the values change.
	Interval() time.Duration

	// DefaultFormat is the template used when a block sets no format.
	DefaultFormat() string
}

// Options carries the per-block settings a Factory may use.
type Options struct {
	// Interval overrides the collector's default when positive.
	Interval time.Duration
	// Thresholds colors percentage values.
	Thresholds Thresholds
	// Values feeds collectors that publish fixed text.
	Values map[string]string
}

// Factory builds a collector for one block.
type Factory func(Options) (Collector, error)

// CollectorStatus tracks the runtime state of a single collector. The
// registry updates it after every collection cycle.
type CollectorStatus struct {
	Name        string
	Healthy     bool
	LastRun     time.Time
	LastError   error
	RunCount    int64
	ErrorCount  int64
	LastLatency time.Duration
}
