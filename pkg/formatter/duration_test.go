package formatter

import (
	"errors"
	"testing"
	"time"

	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

func ms(n int64) value.Value { return value.Duration(time.Duration(n) * time.Millisecond) }

func TestDurationFormat(t *testing.T) {
	const day = 24 * 3600 * 1000
	tests := []struct {
		name string
		args []Arg
		in   value.Value
		want string
	}{
		{"truncated", kv("max_unit", "h", "min_unit", "s", "units", "2", "round_up", "false"), ms(3725000), "1h 2m"},
		{"rounded up", kv("max_unit", "h", "min_unit", "s", "units", "2"), ms(3725000), "1h 3m"},
		{"defaults", nil, ms(3725000), "1h 3m"},
		{"exact value is not rounded", kv("max_unit", "h", "min_unit", "s", "units", "2"), ms(3720000), "1h 2m"},
		{"zero keeps two places", nil, ms(0), "0m 0s"},
		{"leading zero place", nil, ms(5000), "0m 5s"},
		{"no leading zeroes", kv("leading_zeroes", "false"), ms(5000), "5s"},
		{"unit space", kv("max_unit", "h", "units", "2", "round_up", "false", "unit_space", "true"), ms(3725000), "1 h 2 m"},
		{"explicit pad", kv("max_unit", "h", "units", "3", "pad_with", "0"), ms(3665000), "1h 01m 05s"},
		{"years and weeks", nil, ms(400 * day), "1y 5w"},
		{"folded into max unit", kv("max_unit", "d", "round_up", "false"), ms(400 * day), "400d 0h"},
		{"one unit", kv("units", "1", "round_up", "false"), ms(3725000), "1h"},
		{"milliseconds", kv("max_unit", "s", "min_unit", "ms", "round_up", "false"), ms(1500), "1s 500ms"},
		{"hms", kv("hms", "true"), ms(3725000), "1:02:05"},
		{"hms truncated", kv("hms", "true", "round_up", "false"), ms(3725999), "1:02:05"},
		{"hms millis", kv("hms", "true", "min_unit", "ms"), ms(3725450), "1:02:05.450"},
		{"hms folds days", kv("hms", "true"), ms(25 * 3600 * 1000), "25:00:00"},
		{"hms minutes only", kv("hms", "true", "max_unit", "m"), ms(3725000), "62:05"},
		{"seconds number", nil, value.Number(90, value.UnitSeconds), "1m 30s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustFormatter(t, "duration", tt.args...)
			got, err := f.Format(tt.in, nil)
			if err != nil {
				t.Fatalf("Format: %v", err)
			}
			if got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDurationAlias(t *testing.T) {
	f := mustFormatter(t, "dur", kv("hms", "true")...)
	if f.Name() != "duration" {
		t.Errorf("Name() = %q, want duration", f.Name())
	}
}

func TestDurationInterval(t *testing.T) {
	tests := []struct {
		args []Arg
		want time.Duration
	}{
		{nil, time.Second},
		{kv("min_unit", "m"), time.Minute},
		{kv("hms", "true", "min_unit", "ms"), time.Millisecond},
	}
	for _, tt := range tests {
		if got := mustFormatter(t, "duration", tt.args...).Interval(); got != tt.want {
			t.Errorf("Interval() with %v = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestDurationRejects(t *testing.T) {
	f := mustFormatter(t, "duration")
	var ife *IncompatibleFormatterError
	if _, err := f.Format(value.Text("1h"), nil); !errors.As(err, &ife) {
		t.Errorf("text: error = %v, want *IncompatibleFormatterError", err)
	}
	if _, err := f.Format(value.Number(3, value.UnitBytes), nil); !errors.As(err, &ife) {
		t.Errorf("bytes: error = %v, want *IncompatibleFormatterError", err)
	}
	var oor *NumberOutOfRangeError
	if _, err := f.Format(value.Number(-1, value.UnitSeconds), nil); !errors.As(err, &oor) {
		t.Errorf("negative seconds: error = %v, want *NumberOutOfRangeError", err)
	}
}

func TestDurationArgErrors(t *testing.T) {
	tests := []struct {
		args []Arg
		key  string
	}{
		{kv("max_unit", "h", "min_unit", "d"), "min_unit"},
		{kv("units", "0"), "units"},
		{kv("max_unit", "h", "min_unit", "s", "units", "4"), "units"},
		{kv("hms", "true", "max_unit", "d"), "max_unit"},
		{kv("max_unit", "fortnight"), "max_unit"},
		{kv("round_up", "sometimes"), "round_up"},
	}
	for _, tt := range tests {
		_, err := New("duration", tt.args)
		var ae *ArgError
		if !errors.As(err, &ae) {
			t.Errorf("New(duration, %v) error = %v, want *ArgError", tt.args, err)
			continue
		}
		if ae.Key != tt.key {
			t.Errorf("New(duration, %v) key = %q, want %q", tt.args, ae.Key, tt.key)
		}
	}
}
