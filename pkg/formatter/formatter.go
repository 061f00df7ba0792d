// Package formatter implements the named formatters that can be attached to
// a template placeholder, e.g. $speed.eng(w:3, p:Mi) or $uptime.dur(hms:true).
//
// Formatters validate their arguments once, when the template is compiled,
// and are immutable afterwards. Format never panics: a value of the wrong kind
// yields *IncompatibleFormatterError, an unacceptable number yields
// *NumberOutOfRangeError.
package formatter

import (
	"sort"
	"time"

	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

// Config is the read-only environment formatters render against. Icons are
// the only piece of it formatters need.
type Config interface {
	// Icon resolves an icon name to its glyph. progress, when non-nil, is a
	// value in [0, 1] used to pick among several glyphs.
	Icon(name string, progress *float64) (string, error)
}

// Formatter turns a value into text.
type Formatter interface {
	// Name is the canonical registry name.
	Name() string
	Format(v value.Value, cfg Config) (string, error)
	// Interval is how often output changes on its own, or 0 if it never does.
	Interval() time.Duration
}

// Arg is one raw key:value argument from the template source.
type Arg struct {
	Key   string
	Value string
}

type constructor func(args []Arg) (Formatter, error)

var registry = map[string]constructor{
	"bar":       newBar,
	"datetime":  newDatetime,
	"dur":       newDuration,
	"duration":  newDuration,
	"eng":       newEng,
	"flag":      newFlag,
	"pango-str": newPangoStr,
	"str":       newStr,
	"tally":     newTally,
}

// New builds the formatter registered under name.
func New(name string, args []Arg) (Formatter, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, &UnknownFormatterError{Name: name}
	}
	return ctor(args)
}

// Names lists every registered name, aliases included.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var (
	defaultEng      = mustDefault(newEng(nil))
	defaultDuration = mustDefault(newDuration(nil))
	defaultStr      = mustDefault(newStr(nil))
	defaultDatetime = mustDefault(newDatetime(nil))
	defaultFlag     = mustDefault(newFlag(nil))
)

func mustDefault(f Formatter, err error) Formatter {
	if err != nil {
		panic("formatter: invalid default: " + err.Error())
	}
	return f
}

// Default returns the formatter used for placeholders without an explicit
// suffix. It depends only on the value kind.
func Default(k value.Kind) Formatter {
	switch k {
	case value.KindNumber:
		return defaultEng
	case value.KindDuration:
		return defaultDuration
	case value.KindDatetime:
		return defaultDatetime
	case value.KindBoolean:
		return defaultFlag
	default:
		return defaultStr
	}
}
