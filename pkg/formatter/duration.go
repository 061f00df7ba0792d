package formatter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

// durUnit indexes durUnits, largest first.
type durUnit int

const (
	durYear durUnit = iota
	durWeek
	durDay
	durHour
	durMinute
	durSecond
	durMilli
)

var durUnits = [...]struct {
	name  string
	ms    int64
	width int // zero-padded width of a place below the first one
}{
	durYear:   {"y", 365 * 24 * 3600 * 1000, 0},
	durWeek:   {"w", 7 * 24 * 3600 * 1000, 2},
	durDay:    {"d", 24 * 3600 * 1000, 1},
	durHour:   {"h", 3600 * 1000, 2},
	durMinute: {"m", 60 * 1000, 2},
	durSecond: {"s", 1000, 2},
	durMilli:  {"ms", 1, 3},
}

func parseDurUnit(s string) (durUnit, error) {
	for i, u := range durUnits {
		if u.name == s {
			return durUnit(i), nil
		}
	}
	return 0, fmt.Errorf("unknown unit %q, expected one of y w d h m s ms", s)
}

// durationFormatter prints elapsed time either as labelled places
// ("1d 3h") or as a clock ("1:02:03.450").
type durationFormatter struct {
	hms           bool
	maxUnit       durUnit
	minUnit       durUnit
	units         int
	roundUp       bool
	unitSpace     bool
	pad           rune
	padExplicit   bool
	leadingZeroes bool
}

var durationAliases = map[string]string{
	"hms":            "hms",
	"max_unit":       "max_unit",
	"min_unit":       "min_unit",
	"units":          "units",
	"round_up":       "round_up",
	"unit_space":     "unit_space",
	"pad_with":       "pad_with",
	"leading_zeroes": "leading_zeroes",
}

func newDuration(args []Arg) (Formatter, error) {
	r, err := readArgs("duration", args, durationAliases)
	if err != nil {
		return nil, err
	}
	f := &durationFormatter{
		hms:           r.flag("hms", false),
		roundUp:       r.flag("round_up", true),
		unitSpace:     r.flag("unit_space", false),
		leadingZeroes: r.flag("leading_zeroes", true),
		padExplicit:   r.has("pad_with"),
	}
	defMax, defMin, defPad := durYear, durSecond, ' '
	if f.hms {
		defMax, defPad = durHour, '0'
	}
	f.pad = r.char("pad_with", defPad)
	units := r.integer("units", 0)
	if r.err != nil {
		return nil, r.err
	}
	if f.maxUnit, err = durUnitArg(r, "max_unit", defMax); err != nil {
		return nil, err
	}
	if f.minUnit, err = durUnitArg(r, "min_unit", defMin); err != nil {
		return nil, err
	}

	fail := func(key, msg string) error {
		return &ArgError{Formatter: "duration", Key: key, Err: errors.New(msg)}
	}
	if f.hms {
		if f.maxUnit < durHour {
			return nil, fail("max_unit", "hms notation supports h, m, s and ms only")
		}
		if f.minUnit < durHour {
			return nil, fail("min_unit", "hms notation supports h, m, s and ms only")
		}
	}
	if f.minUnit < f.maxUnit {
		return nil, fail("min_unit", fmt.Sprintf("min_unit %s is larger than max_unit %s",
			durUnits[f.minUnit].name, durUnits[f.maxUnit].name))
	}

	window := int(f.minUnit-f.maxUnit) + 1
	switch {
	case !r.has("units"):
		f.units = 2
		if f.hms {
			f.units = window
		}
		f.units = min(f.units, window)
	case units < 1:
		return nil, fail("units", "must be at least 1")
	case units > window:
		return nil, fail("units", fmt.Sprintf("%d units do not fit between %s and %s",
			units, durUnits[f.maxUnit].name, durUnits[f.minUnit].name))
	default:
		f.units = units
	}
	return f, nil
}

func durUnitArg(r *argReader, key string, def durUnit) (durUnit, error) {
	if !r.has(key) {
		return def, nil
	}
	u, err := parseDurUnit(r.text(key, ""))
	if err != nil {
		return 0, &ArgError{Formatter: "duration", Key: key, Err: err}
	}
	return u, nil
}

func (f *durationFormatter) Name() string { return "duration" }

// Interval is the size of the smallest unit ever shown.
func (f *durationFormatter) Interval() time.Duration {
	return time.Duration(durUnits[f.minUnit].ms) * time.Millisecond
}

func (f *durationFormatter) Format(v value.Value, _ Config) (string, error) {
	var ms int64
	switch v.Kind() {
	case value.KindDuration:
		ms = v.Duration().Milliseconds()
	case value.KindNumber:
		n, unit := v.Number()
		if unit != value.UnitSeconds {
			return "", incompatible("duration", v)
		}
		if n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
			return "", &NumberOutOfRangeError{Formatter: "duration", Value: n}
		}
		ms = int64(n * 1000)
	default:
		return "", incompatible("duration", v)
	}

	places, start, end := f.window(ms)
	if f.roundUp {
		ms += durUnits[end].ms - 1
		places, start, end = f.window(ms)
	}
	if f.hms {
		return f.clock(places, start, end), nil
	}
	return f.labelled(places, start, end), nil
}

// window splits ms into places from maxUnit down to minUnit and picks the
// range of places to show. Time above maxUnit is folded into it and time
// below minUnit is dropped.
func (f *durationFormatter) window(ms int64) (places [len(durUnits)]int64, start, end durUnit) {
	rest := ms
	for u := f.maxUnit; u <= f.minUnit; u++ {
		size := durUnits[u].ms
		places[u] = rest / size
		rest -= places[u] * size
	}

	first := f.minUnit
	for u := f.maxUnit; u <= f.minUnit; u++ {
		if places[u] != 0 {
			first = u
			break
		}
	}
	start = first
	if f.leadingZeroes {
		// Keep zero places on the left when the value is too small to fill
		// the requested number of units.
		start = max(f.maxUnit, min(first, f.minUnit-durUnit(f.units)+1))
	}
	end = min(start+durUnit(f.units)-1, f.minUnit)
	return places, start, end
}

func (f *durationFormatter) labelled(places [len(durUnits)]int64, start, end durUnit) string {
	var b strings.Builder
	for u := start; u <= end; u++ {
		if u > start {
			b.WriteByte(' ')
		}
		n := strconv.FormatInt(places[u], 10)
		if u > start && f.padExplicit {
			durPad(&b, f.pad, durUnits[u].width-len(n))
		}
		b.WriteString(n)
		if f.unitSpace {
			b.WriteByte(' ')
		}
		b.WriteString(durUnits[u].name)
	}
	return b.String()
}

func (f *durationFormatter) clock(places [len(durUnits)]int64, start, end durUnit) string {
	var b strings.Builder
	for u := start; u <= end; u++ {
		switch {
		case u == start:
		case u == durMilli:
			b.WriteByte('.')
		default:
			b.WriteByte(':')
		}
		n := strconv.FormatInt(places[u], 10)
		if u > start {
			durPad(&b, f.pad, durUnits[u].width-len(n))
		}
		b.WriteString(n)
	}
	return b.String()
}

func durPad(b *strings.Builder, r rune, n int) {
	for ; n > 0; n-- {
		b.WriteRune(r)
	}
}
