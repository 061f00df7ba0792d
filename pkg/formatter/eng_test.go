package formatter

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

func mustFormatter(t *testing.T, name string, args ...Arg) Formatter {
	t.Helper()
	f, err := New(name, args)
	if err != nil {
		t.Fatalf("New(%q, %v): %v", name, args, err)
	}
	return f
}

// kv builds an argument list from alternating keys and values.
func kv(pairs ...string) []Arg {
	args := make([]Arg, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		args = append(args, Arg{Key: pairs[i], Value: pairs[i+1]})
	}
	return args
}

func TestEngFormat(t *testing.T) {
	tests := []struct {
		name string
		args []Arg
		in   value.Value
		want string
	}{
		{"small count at width 1", kv("w", "1"), value.Number(3, value.UnitNone), "3"},
		{"default width pads", nil, value.Number(5, value.UnitNone), " 5"},
		{"carry at width 2", kv("w", "2"), value.Number(9.95, value.UnitNone), "10"},
		{"carry widens at width 1", kv("w", "1"), value.Number(9.95, value.UnitNone), "10"},
		{"negative carry at width 2", kv("w", "2"), value.Number(-9.96, value.UnitNone), "-10"},
		{"negative carry at width 3", kv("w", "3"), value.Number(-99.96, value.UnitNone), "-100"},
		{"carry loses a decimal", kv("w", "3"), value.Number(9.96, value.UnitNone), " 10"},
		{"decimals fill width", kv("w", "4"), value.Number(3.14159, value.UnitNone), "3.14"},
		{"fraction", kv("w", "3"), value.Number(0.5, value.UnitNone), "0.5"},
		{"integer with decimal", kv("w", "4"), value.Number(42, value.UnitNone), "42.0"},
		{"percent", nil, value.Number(42, value.UnitPercent), "42%"},
		{"percent never scales", kv("w", "3"), value.Number(999.4, value.UnitPercent), "999%"},
		{"percent carry", kv("w", "3"), value.Number(999.7, value.UnitPercent), "1000%"},
		{"largest prefix", kv("w", "3"), value.Number(5e15, value.UnitBytes), "5000TB"},
		{"kilobytes", kv("w", "3"), value.Number(1234, value.UnitBytes), "1.2kB"},
		{"carry moves prefix", kv("w", "3"), value.Number(999.7, value.UnitNone), "1.0k"},
		{"binary prefix", kv("w", "3", "p", "Ki"), value.Number(2048, value.UnitBytes), "2.0KiB"},
		{"binary carry", kv("w", "3", "p", "Ki"), value.Number(1023.9*1024, value.UnitBytes), "1.0MiB"},
		{"forced prefix", kv("w", "3", "p", "M", "force_prefix", "true"), value.Number(1234, value.UnitBytes), "0.0MB"},
		{"convert to bits", kv("w", "3", "u", "b"), value.Number(1000, value.UnitBytes), "8.0kb"},
		{"label unitless", kv("w", "2", "u", "W"), value.Number(7, value.UnitNone), " 7W"},
		{"milli prefix", kv("w", "3"), value.Number(0.5, value.UnitHertz), "500mHz"},
		{"hide unit", kv("w", "3", "hide_unit", "true"), value.Number(1234, value.UnitBytes), "1.2k"},
		{"hide prefix", kv("w", "3", "hide_prefix", "true"), value.Number(1234, value.UnitBytes), "1.2B"},
		{"prefix space", kv("w", "3", "prefix_space", "true"), value.Number(1234, value.UnitBytes), "1.2 kB"},
		{"prefix space without prefix", kv("w", "2", "prefix_space", "true"), value.Number(12, value.UnitBytes), "12 B"},
		{"unit space", kv("w", "3", "unit_space", "true"), value.Number(1234, value.UnitBytes), "1.2k B"},
		{"negative", kv("w", "4"), value.Number(-3.14159, value.UnitNone), "-3.1"},
		{"negative zero", nil, value.Number(-0.001, value.UnitNone), " 0"},
		{"zero pad", kv("pad_with", "0"), value.Number(5, value.UnitNone), "05"},
		{"zero pad after sign", kv("w", "3", "pad_with", "0"), value.Number(-5, value.UnitNone), "-05"},
		{"custom pad", kv("pad_with", "_"), value.Number(5, value.UnitNone), "_5"},
		{"in range", kv("range", "0..100"), value.Number(100, value.UnitNone), "100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustFormatter(t, "eng", tt.args...)
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

func TestEngWidthInvariant(t *testing.T) {
	vals := []float64{0, 0.04, 0.5, 0.95, 0.999, 1, 4.44, 9.5, 9.95, 9.999, -0.5}
	for w := 1; w <= 5; w++ {
		f := mustFormatter(t, "eng", kv("w", strconv.Itoa(w))...)
		for _, v := range vals {
			got, err := f.Format(value.Number(v, value.UnitNone), nil)
			if err != nil {
				t.Fatalf("w=%d Format(%v): %v", w, v, err)
			}
			digits := strings.Map(func(r rune) rune {
				if r >= '0' && r <= '9' {
					return r
				}
				return -1
			}, got)
			// Only a carry to the next power of ten may take one extra digit.
			carry := len(digits) == w+1 && strings.Trim(digits, "0") == "1"
			if len(digits) > w && !carry {
				t.Errorf("w=%d Format(%v) = %q has %d digits", w, v, got, len(digits))
			}
		}
	}
}

func TestEngErrors(t *testing.T) {
	tests := []struct {
		name       string
		args       []Arg
		in         value.Value
		outOfRange bool
	}{
		{"text", nil, value.Text("x"), false},
		{"duration", nil, value.Duration(5), false},
		{"bad conversion", kv("u", "B"), value.Number(5, value.UnitDegrees), false},
		{"above range", kv("range", "0..100"), value.Number(150, value.UnitNone), true},
		{"below open range", kv("range", "0.."), value.Number(-1, value.UnitNone), true},
		{"nan", nil, value.Number(math.NaN(), value.UnitNone), true},
		{"inf", nil, value.Number(math.Inf(1), value.UnitNone), true},
		{"beyond largest prefix", kv("w", "3"), value.Number(1e18, value.UnitNone), true},
		{"max float", kv("w", "3"), value.Number(math.MaxFloat64, value.UnitBytes), true},
		{"negative beyond largest prefix", nil, value.Number(-1e17, value.UnitNone), true},
		{"percent beyond width", kv("w", "2"), value.Number(12345, value.UnitPercent), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustFormatter(t, "eng", tt.args...)
			_, err := f.Format(tt.in, nil)
			var ife *IncompatibleFormatterError
			var oor *NumberOutOfRangeError
			switch {
			case tt.outOfRange && !errors.As(err, &oor):
				t.Errorf("error = %v, want *NumberOutOfRangeError", err)
			case !tt.outOfRange && !errors.As(err, &ife):
				t.Errorf("error = %v, want *IncompatibleFormatterError", err)
			}
		})
	}
}

func TestEngArgErrors(t *testing.T) {
	tests := []struct {
		args []Arg
		key  string
	}{
		{kv("w", "0"), "width"},
		{kv("w", "two"), "width"},
		{kv("u", "furlongs"), "unit"},
		{kv("p", "X"), "prefix"},
		{kv("force_prefix", "true"), "force_prefix"},
		{kv("pad_with", "ab"), "pad_with"},
		{kv("range", "5..1"), "range"},
		{kv("range", "5"), "range"},
		{kv("hide_unit", "maybe"), "hide_unit"},
		{kv("colour", "red"), "colour"},
		{kv("w", "2", "width", "3"), "width"},
	}
	for _, tt := range tests {
		_, err := New("eng", tt.args)
		var ae *ArgError
		if !errors.As(err, &ae) {
			t.Errorf("New(eng, %v) error = %v, want *ArgError", tt.args, err)
			continue
		}
		if ae.Key != tt.key {
			t.Errorf("New(eng, %v) key = %q, want %q", tt.args, ae.Key, tt.key)
		}
	}
}

func TestParseRange(t *testing.T) {
	lo, hi, err := parseRange("..10")
	if err != nil || !math.IsInf(lo, -1) || hi != 10 {
		t.Errorf("parseRange(..10) = %v, %v, %v", lo, hi, err)
	}
	lo, hi, err = parseRange("-5..5")
	if err != nil || lo != -5 || hi != 5 {
		t.Errorf("parseRange(-5..5) = %v, %v, %v", lo, hi, err)
	}
}
