package sysmetrics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/greshake/i3status-rust-sub000/pkg/collectors"
	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

// Collector publishes one view of the system metrics. It satisfies
// collectors.Collector.
type Collector struct {
	cfg    Config
	view   view
	sample func(ctx context.Context, parts part, mount string) (Metrics, part, error)
}

// New creates the collector for a source name. Zero-value fields in cfg are
// replaced with defaults.
func New(source string, cfg Config) (*Collector, error) {
	v, ok := views[source]
	if !ok {
		return nil, fmt.Errorf("sysmetrics: unknown source %q (have %v)", source, Sources())
	}
	def := DefaultConfig()
	if cfg.FastInterval <= 0 {
		cfg.FastInterval = def.FastInterval
	}
	if cfg.SlowInterval <= 0 {
		cfg.SlowInterval = def.SlowInterval
	}
	if cfg.Mount == "" {
		cfg.Mount = def.Mount
	}
	if cfg.Thresholds == (collectors.Thresholds{}) {
		cfg.Thresholds = def.Thresholds
	}
	return &Collector{cfg: cfg, view: v, sample: sample}, nil
}

// Sources lists the source names this package provides.
func Sources() []string {
	names := make([]string, 0, len(views))
	for n := range views {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Factory returns a collectors.Factory for source. Options.Interval
// replaces the view's interval and Options.Values["mount"] picks the disk
// mount point.
func Factory(source string) collectors.Factory {
	return func(o collectors.Options) (collectors.Collector, error) {
		cfg := Config{
			Mount:      o.Values["mount"],
			Thresholds: o.Thresholds,
		}
		if o.Interval > 0 {
			cfg.FastInterval, cfg.SlowInterval = o.Interval, o.Interval
		}
		return New(source, cfg)
	}
}

// Name returns the source name.
func (c *Collector) Name() string { return c.view.name }

// Interval returns the polling interval of the view.
func (c *Collector) Interval() time.Duration {
	if c.view.slow {
		return c.cfg.SlowInterval
	}
	return c.cfg.FastInterval
}

// DefaultFormat returns the view's default template.
func (c *Collector) DefaultFormat() string { return c.view.format }

// Collect samples the view's metrics. Partial failures return the values of
// the parts that succeeded alongside the error. A cancelled context returns
// immediately.
func (c *Collector) Collect(ctx context.Context) (value.Values, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, ok, err := c.sample(ctx, c.view.parts, c.cfg.Mount)
	if ok&c.view.parts == 0 {
		return nil, err
	}
	return c.view.values(m, ok, c.cfg.Thresholds), err
}
