package collectors

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/greshake/i3status-rust-sub000/pkg/parse"
	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

// Static publishes fixed text values. It is the "static" source and doubles
// as a demo block.
type Static struct {
	values value.Values
	format string
}

// NewStatic returns a collector publishing values as text. Keys named icon
// are published as icon references. Keys a template cannot name are left
// out of the default format.
func NewStatic(values map[string]string) *Static {
	vs := make(value.Values, len(values))
	keys := make([]string, 0, len(values))
	for k, v := range values {
		if k == "icon" {
			vs[k] = value.Icon(v)
		} else {
			vs[k] = value.Text(v)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		if !parse.IsIdentifier(k) {
			continue
		}
		b.WriteString(" $")
		b.WriteString(k)
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	return &Static{values: vs, format: b.String()}
}

// StaticFactory is the Factory for the "static" source. Every key must be
// usable as a placeholder name.
func StaticFactory(o Options) (Collector, error) {
	for k := range o.Values {
		if !parse.IsIdentifier(k) {
			return nil, fmt.Errorf("static: key %q is not a valid placeholder name", k)
		}
	}
	return NewStatic(o.Values), nil
}

func (s *Static) Name() string { return "static" }

// Interval is zero: static values never change.
func (s *Static) Interval() time.Duration { return 0 }

// DefaultFormat shows every value in key order.
func (s *Static) DefaultFormat() string { return s.format }

// Collect returns a copy of the values.
func (s *Static) Collect(ctx context.Context) (value.Values, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make(value.Values, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out, nil
}
