package formatter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

// engFormatter prints numbers in engineering notation: the value is scaled
// by a magnitude prefix so that it fits a fixed number of characters.
type engFormatter struct {
	width       int
	unit        value.Unit
	hasUnit     bool
	hideUnit    bool
	unitSpace   bool
	prefix      value.Prefix
	hasPrefix   bool
	hidePrefix  bool
	prefixSpace bool
	forcePrefix bool
	padWith     rune
	min, max    float64
}

var engAliases = map[string]string{
	"w":            "width",
	"width":        "width",
	"u":            "unit",
	"unit":         "unit",
	"hide_unit":    "hide_unit",
	"unit_space":   "unit_space",
	"p":            "prefix",
	"prefix":       "prefix",
	"hide_prefix":  "hide_prefix",
	"prefix_space": "prefix_space",
	"force_prefix": "force_prefix",
	"pad_with":     "pad_with",
	"range":        "range",
}

func newEng(args []Arg) (Formatter, error) {
	r, err := readArgs("eng", args, engAliases)
	if err != nil {
		return nil, err
	}
	f := &engFormatter{
		width:       r.integer("width", 2),
		hideUnit:    r.flag("hide_unit", false),
		unitSpace:   r.flag("unit_space", false),
		hidePrefix:  r.flag("hide_prefix", false),
		prefixSpace: r.flag("prefix_space", false),
		forcePrefix: r.flag("force_prefix", false),
		padWith:     r.char("pad_with", ' '),
		min:         math.Inf(-1),
		max:         math.Inf(1),
	}
	if r.err != nil {
		return nil, r.err
	}
	if f.width < 1 {
		return nil, &ArgError{Formatter: "eng", Key: "width", Err: errors.New("must be at least 1")}
	}
	if r.has("unit") {
		u, err := value.ParseUnit(r.text("unit", ""))
		if err != nil {
			return nil, &ArgError{Formatter: "eng", Key: "unit", Err: err}
		}
		f.unit, f.hasUnit = u, true
	}
	if r.has("prefix") {
		p, err := value.ParsePrefix(r.text("prefix", ""))
		if err != nil {
			return nil, &ArgError{Formatter: "eng", Key: "prefix", Err: err}
		}
		f.prefix, f.hasPrefix = p, true
	}
	if f.forcePrefix && !f.hasPrefix {
		return nil, &ArgError{Formatter: "eng", Key: "force_prefix", Err: errors.New("requires a prefix")}
	}
	if r.has("range") {
		f.min, f.max, err = parseRange(r.text("range", ""))
		if err != nil {
			return nil, &ArgError{Formatter: "eng", Key: "range", Err: err}
		}
	}
	return f, nil
}

// parseRange parses "a..b", "..b" and "a..".
func parseRange(s string) (lo, hi float64, err error) {
	left, right, ok := strings.Cut(s, "..")
	if !ok {
		return 0, 0, fmt.Errorf("%q is not a range, expected a..b", s)
	}
	lo, hi = math.Inf(-1), math.Inf(1)
	if left != "" {
		if lo, err = strconv.ParseFloat(left, 64); err != nil {
			return 0, 0, fmt.Errorf("bad lower bound %q", left)
		}
	}
	if right != "" {
		if hi, err = strconv.ParseFloat(right, 64); err != nil {
			return 0, 0, fmt.Errorf("bad upper bound %q", right)
		}
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("empty range %q", s)
	}
	return lo, hi, nil
}

func (f *engFormatter) Name() string            { return "eng" }
func (f *engFormatter) Interval() time.Duration { return 0 }

func (f *engFormatter) Format(v value.Value, _ Config) (string, error) {
	if v.Kind() != value.KindNumber {
		return "", incompatible("eng", v)
	}
	val, unit := v.Number()
	if f.hasUnit {
		converted, err := unit.Convert(val, f.unit)
		if err != nil {
			return "", &IncompatibleFormatterError{Kind: v.Kind(), Formatter: "eng", Err: err}
		}
		val, unit = converted, f.unit
	}
	if math.IsNaN(val) || math.IsInf(val, 0) || val < f.min || val > f.max {
		return "", &NumberOutOfRangeError{Formatter: "eng", Value: val}
	}

	signed := val
	neg := val < 0
	val = math.Abs(val)

	lo, hi := unit.PrefixRange()
	binary := false
	if f.hasPrefix {
		binary = f.prefix.Binary
		if f.forcePrefix {
			lo, hi = f.prefix.Exp, f.prefix.Exp
		} else {
			lo = f.prefix.Exp
			if hi < lo {
				hi = lo
			}
		}
	}
	prefix := value.EngPrefix(val, binary).Clamp(lo, hi)

	var body string
	for {
		scaled := prefix.Apply(val)
		var rounded float64
		body, rounded = f.digits(scaled, neg)
		tooWide := engIntDigits(rounded)+engSign(neg) > f.width
		if (rounded >= prefix.Base() || (tooWide && rounded >= 1000)) && prefix.Exp < hi {
			prefix.Exp++
			continue
		}
		// Past the largest allowed prefix the integer part may hold three
		// digits or the width, plus one digit of rounding carry.
		if engIntDigits(rounded) > max(f.width, 3)+1 {
			return "", &NumberOutOfRangeError{Formatter: "eng", Value: signed}
		}
		if rounded == 0 {
			neg = false
		}
		break
	}

	var b strings.Builder
	pad := f.width - utf8.RuneCountInString(body) - engSign(neg)
	if f.padWith == '0' {
		if neg {
			b.WriteByte('-')
		}
		engPad(&b, '0', pad)
	} else {
		engPad(&b, f.padWith, pad)
		if neg {
			b.WriteByte('-')
		}
	}
	b.WriteString(body)

	showPrefix := !f.hidePrefix && !prefix.IsOne()
	showUnit := !f.hideUnit && unit != value.UnitNone
	if showPrefix {
		if f.prefixSpace {
			b.WriteByte(' ')
		}
		b.WriteString(prefix.String())
	}
	if showUnit {
		if f.unitSpace || (f.prefixSpace && !showPrefix) {
			b.WriteByte(' ')
		}
		b.WriteString(unit.String())
	}
	return b.String(), nil
}

// digits renders a non-negative scaled value into the width left after the
// sign. It returns the text and the value the text represents.
func (f *engFormatter) digits(scaled float64, neg bool) (string, float64) {
	intDigits := engIntDigits(scaled)
	rest := f.width - intDigits - engSign(neg)
	decimals := 0
	if rest >= 2 {
		decimals = rest - 1 // one character goes to the decimal point
	}
	text, rounded := engRound(scaled, decimals)

	// Rounding carried into a new integer digit (9.96 -> 10.0): give up a
	// decimal to stay within the width.
	if d := engIntDigits(rounded); d > intDigits && decimals > 0 {
		rest = f.width - d - engSign(neg)
		decimals = 0
		if rest >= 2 {
			decimals = rest - 1
		}
		text, rounded = engRound(scaled, decimals)
	}

	return text, rounded
}

func engRound(x float64, decimals int) (string, float64) {
	text := strconv.FormatFloat(x, 'f', decimals, 64)
	rounded, _ := strconv.ParseFloat(text, 64)
	return text, rounded
}

// engIntDigits counts integer digits of a non-negative number; values below
// one have a single "0" digit.
func engIntDigits(x float64) int {
	return len(strconv.FormatFloat(math.Trunc(x), 'f', 0, 64))
}

func engSign(neg bool) int {
	if neg {
		return 1
	}
	return 0
}

func engPad(b *strings.Builder, r rune, n int) {
	for i := 0; i < n; i++ {
		b.WriteRune(r)
	}
}
