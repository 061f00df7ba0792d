// Package clock publishes the local time.
package clock

import (
	"context"
	"fmt"
	"time"

	"github.com/greshake/i3status-rust-sub000/pkg/collectors"
	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

// Collector publishes "time" as a datetime value and "icon" as the time
// icon. Values["timezone"] selects an IANA zone instead of the local one.
type Collector struct {
	loc      *time.Location
	interval time.Duration
	now      func() time.Time
}

// New returns a clock in loc. A nil loc means time.Local.
func New(loc *time.Location, interval time.Duration) *Collector {
	if loc == nil {
		loc = time.Local
	}
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Collector{loc: loc, interval: interval, now: time.Now}
}

// Factory is the collectors.Factory for the "time" source.
func Factory(o collectors.Options) (collectors.Collector, error) {
	var loc *time.Location
	if tz := o.Values["timezone"]; tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("clock: %w", err)
		}
		loc = l
	}
	return New(loc, o.Interval), nil
}

func (c *Collector) Name() string { return "time" }

// Interval is only a fallback; a seconds format makes the bar refresh
// every second through the template's own interval.
func (c *Collector) Interval() time.Duration { return c.interval }

func (c *Collector) DefaultFormat() string { return " $icon $time.datetime(f:'%a %d/%m %R') " }

func (c *Collector) Collect(ctx context.Context) (value.Values, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return value.Values{
		"icon": value.Icon("time"),
		"time": value.Datetime(c.now().In(c.loc)),
	}, nil
}
