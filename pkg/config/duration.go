package config

import (
	"fmt"
	"math"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Duration is a block update interval. A config may spell it as a duration
// string ("500ms", "1m30s") or as a bare number of seconds, so both
// interval = 5 and interval = "5s" work.
type Duration struct {
	time.Duration
}

var (
	_ toml.Unmarshaler = (*Duration)(nil)
	_ yaml.Unmarshaler = (*Duration)(nil)
)

// UnmarshalText parses a duration string. Empty text keeps the collector's
// own interval.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("interval %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("interval %q is negative", s)
	}
	d.Duration = parsed
	return nil
}

// UnmarshalTOML accepts TOML strings, integers and floats.
func (d *Duration) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		return d.UnmarshalText([]byte(v))
	case int64:
		return d.setSeconds(float64(v))
	case float64:
		return d.setSeconds(v)
	default:
		return fmt.Errorf("interval: want seconds or a duration string, got %T", v)
	}
}

// UnmarshalYAML accepts YAML scalars; numeric ones count seconds.
func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: interval must be a scalar", n.Line)
	}
	switch n.Tag {
	case "!!int", "!!float":
		var secs float64
		if err := n.Decode(&secs); err != nil {
			return err
		}
		return d.setSeconds(secs)
	case "!!null":
		d.Duration = 0
		return nil
	}
	return d.UnmarshalText([]byte(n.Value))
}

func (d *Duration) setSeconds(secs float64) error {
	if math.IsNaN(secs) || secs < 0 || secs > math.MaxInt64/float64(time.Second) {
		return fmt.Errorf("interval %v is not a usable number of seconds", secs)
	}
	d.Duration = time.Duration(secs * float64(time.Second))
	return nil
}

// MarshalText writes the Go duration form, which UnmarshalText reads back.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}
