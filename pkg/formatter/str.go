package formatter

import (
	"errors"
	"html"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

// now is replaced in tests.
var now = time.Now

// strFormatter passes text and icons through, bounded to a cell width. Text
// longer than max_width is either cut or, with rot_interval, scrolled.
type strFormatter struct {
	name     string
	minWidth int
	maxWidth int // 0 means unbounded
	rot      time.Duration
	sep      string
	escape   bool
}

var strAliases = map[string]string{
	"min_width":     "min_width",
	"min_w":         "min_width",
	"max_width":     "max_width",
	"max_w":         "max_width",
	"width":         "width",
	"w":             "width",
	"rot_interval":  "rot_interval",
	"rot_separator": "rot_separator",
}

func newStr(args []Arg) (Formatter, error) {
	return buildStr("str", args)
}

// newPangoStr is str with Pango markup escaping applied last.
func newPangoStr(args []Arg) (Formatter, error) {
	f, err := buildStr("pango-str", args)
	if err != nil {
		return nil, err
	}
	f.escape = true
	return f, nil
}

func buildStr(name string, args []Arg) (*strFormatter, error) {
	r, err := readArgs(name, args, strAliases)
	if err != nil {
		return nil, err
	}
	f := &strFormatter{
		name:     name,
		minWidth: r.integer("min_width", 0),
		maxWidth: r.integer("max_width", 0),
		sep:      r.text("rot_separator", "|"),
	}
	width := r.integer("width", 0)
	rot := r.number("rot_interval", 0)
	if r.err != nil {
		return nil, r.err
	}
	fail := func(key, msg string) error {
		return &ArgError{Formatter: name, Key: key, Err: errors.New(msg)}
	}
	if r.has("width") {
		if r.has("min_width") || r.has("max_width") {
			return nil, fail("width", "cannot be combined with min_width or max_width")
		}
		f.minWidth, f.maxWidth = width, width
	}
	if f.minWidth < 0 || f.maxWidth < 0 {
		return nil, fail("", "widths must not be negative")
	}
	if f.maxWidth > 0 && f.minWidth > f.maxWidth {
		return nil, fail("min_width", "larger than max_width")
	}
	if r.has("rot_interval") {
		if math.IsNaN(rot) || rot <= 0 || rot > math.MaxInt64/float64(time.Second) {
			return nil, fail("rot_interval", "must be a positive number of seconds")
		}
		if f.maxWidth == 0 {
			return nil, fail("rot_interval", "requires max_width")
		}
		f.rot = time.Duration(rot * float64(time.Second))
	}
	return f, nil
}

func (f *strFormatter) Name() string            { return f.name }
func (f *strFormatter) Interval() time.Duration { return f.rot }

func (f *strFormatter) Format(v value.Value, cfg Config) (string, error) {
	var s string
	switch v.Kind() {
	case value.KindText:
		s = v.String()
	case value.KindIcon:
		var progress *float64
		if p, ok := v.Progress(); ok {
			progress = &p
		}
		glyph, err := cfg.Icon(v.String(), progress)
		if err != nil {
			return "", err
		}
		s = glyph
	default:
		return "", incompatible(f.name, v)
	}

	if f.maxWidth > 0 && ansi.StringWidth(s) > f.maxWidth {
		if f.rot > 0 {
			s = rotate(s+f.sep, now(), f.rot)
		}
		s = ansi.Truncate(s, f.maxWidth, "")
	}
	if w := ansi.StringWidth(s); w < f.minWidth {
		s += strings.Repeat(" ", f.minWidth-w)
	}
	if f.escape {
		s = html.EscapeString(s)
	}
	return s, nil
}

// rotate shifts s left by one rune per elapsed interval.
func rotate(s string, t time.Time, interval time.Duration) string {
	runes := []rune(s)
	ms := max(interval.Milliseconds(), 1)
	off := int((t.UnixMilli() / ms) % int64(len(runes)))
	return string(runes[off:]) + string(runes[:off])
}
