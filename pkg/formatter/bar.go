package formatter

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

// Horizontal bars fill cells in eighths.
var barEighths = [9]rune{
	' ',      // 0/8
	'\u258F', // 1/8 ▏
	'\u258E', // 2/8 ▎
	'\u258D', // 3/8 ▍
	'\u258C', // 4/8 ▌
	'\u258B', // 5/8 ▋
	'\u258A', // 6/8 ▊
	'\u2589', // 7/8 ▉
	'\u2588', // 8/8 █
}

// Vertical bars are a single cell of one of eight heights.
var barLevels = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

type barFormatter struct {
	width    int
	maxValue float64
	vertical bool
}

var barAliases = map[string]string{
	"width":     "width",
	"w":         "width",
	"max_value": "max_value",
	"vertical":  "vertical",
	"v":         "vertical",
}

func newBar(args []Arg) (Formatter, error) {
	r, err := readArgs("bar", args, barAliases)
	if err != nil {
		return nil, err
	}
	f := &barFormatter{
		width:    r.integer("width", 5),
		maxValue: r.number("max_value", 100),
		vertical: r.flag("vertical", false),
	}
	if r.err != nil {
		return nil, r.err
	}
	if f.width < 1 {
		return nil, &ArgError{Formatter: "bar", Key: "width", Err: errors.New("must be at least 1")}
	}
	if !(f.maxValue > 0) || math.IsInf(f.maxValue, 0) {
		return nil, &ArgError{Formatter: "bar", Key: "max_value", Err: errors.New("must be a positive number")}
	}
	return f, nil
}

func (f *barFormatter) Name() string            { return "bar" }
func (f *barFormatter) Interval() time.Duration { return 0 }

func (f *barFormatter) Format(v value.Value, _ Config) (string, error) {
	if v.Kind() != value.KindNumber {
		return "", incompatible("bar", v)
	}
	val, _ := v.Number()
	if math.IsNaN(val) {
		return "", &NumberOutOfRangeError{Formatter: "bar", Value: val}
	}
	ratio := math.Min(math.Max(val/f.maxValue, 0), 1)

	if f.vertical {
		return string(barLevels[int(math.Round(ratio*7))]), nil
	}

	total := f.width * 8
	filled := int(math.Round(ratio * float64(total)))
	full, part := filled/8, filled%8

	var b strings.Builder
	b.WriteString(strings.Repeat(string(barEighths[8]), full))
	empty := f.width - full
	if part > 0 {
		b.WriteRune(barEighths[part])
		empty--
	}
	b.WriteString(strings.Repeat(" ", empty))
	return b.String(), nil
}
