// Package value defines the typed values blocks hand to format templates.
//
// A Value is a small immutable tagged union in the spirit of slog.Value: the
// Kind selects which accessor is meaningful. Every value also carries display
// Metadata that the renderer uses to split output into styled fragments.
package value

import (
	"fmt"
	"time"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindText Kind = iota
	KindIcon
	KindNumber
	KindDuration
	KindDatetime
	KindBoolean
)

var kindNames = [...]string{
	KindText:     "text",
	KindIcon:     "icon",
	KindNumber:   "number",
	KindDuration: "duration",
	KindDatetime: "datetime",
	KindBoolean:  "boolean",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// State is the severity a block attaches to a value. Bars color fragments by
// state.
type State int

const (
	StateIdle State = iota
	StateInfo
	StateGood
	StateWarning
	StateCritical
)

var stateNames = [...]string{
	StateIdle:     "idle",
	StateInfo:     "info",
	StateGood:     "good",
	StateWarning:  "warning",
	StateCritical: "critical",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ParseState maps a state name back to its State.
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	return StateIdle, fmt.Errorf("unknown state %q", name)
}

// Metadata is display information attached to a value. It is comparable;
// the renderer opens a new fragment whenever it changes.
type Metadata struct {
	State    State
	Instance string
}

// Value is one placeholder's worth of block output.
type Value struct {
	kind     Kind
	str      string // text or icon name
	num      float64
	unit     Unit
	dur      time.Duration
	t        time.Time
	flag     bool
	progress float64
	hasProg  bool

	Meta Metadata
}

// Values maps placeholder names to values.
type Values map[string]Value

// Text returns a text value.
func Text(s string) Value {
	return Value{kind: KindText, str: s}
}

// Icon returns a value naming an icon to be resolved at render time.
func Icon(name string) Value {
	return Value{kind: KindIcon, str: name}
}

// IconProgress returns an icon value with a progression in [0, 1], used to
// pick a glyph from icons that define several.
func IconProgress(name string, progress float64) Value {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return Value{kind: KindIcon, str: name, progress: progress, hasProg: true}
}

// Number returns a numeric value tagged with a unit.
func Number(v float64, unit Unit) Value {
	return Value{kind: KindNumber, num: v, unit: unit}
}

// Duration returns a duration value. Negative durations become zero and the
// result is truncated to millisecond resolution.
func Duration(d time.Duration) Value {
	if d < 0 {
		d = 0
	}
	return Value{kind: KindDuration, dur: d.Truncate(time.Millisecond)}
}

// Datetime returns a point-in-time value.
func Datetime(t time.Time) Value {
	return Value{kind: KindDatetime, t: t}
}

// Boolean returns a flag value.
func Boolean(b bool) Value {
	return Value{kind: KindBoolean, flag: b}
}

// Kind reports the variant of v.
func (v Value) Kind() Kind { return v.kind }

// String returns the text of a text value, or the icon name of an icon.
func (v Value) String() string {
	switch v.kind {
	case KindText, KindIcon:
		return v.str
	case KindNumber:
		return fmt.Sprintf("%g%s", v.num, v.unit)
	case KindDuration:
		return v.dur.String()
	case KindDatetime:
		return v.t.Format(time.RFC3339)
	case KindBoolean:
		return fmt.Sprint(v.flag)
	}
	return ""
}

// Number returns the numeric payload and unit. Only meaningful for KindNumber.
func (v Value) Number() (float64, Unit) { return v.num, v.unit }

// Duration returns the payload of a duration value.
func (v Value) Duration() time.Duration { return v.dur }

// Time returns the payload of a datetime value.
func (v Value) Time() time.Time { return v.t }

// Bool returns the payload of a boolean value.
func (v Value) Bool() bool { return v.flag }

// Progress returns the icon progression and whether one was set.
func (v Value) Progress() (float64, bool) { return v.progress, v.hasProg }

// WithState returns a copy of v carrying the given state.
func (v Value) WithState(s State) Value {
	v.Meta.State = s
	return v
}

// WithInstance returns a copy of v tagged with a click instance.
func (v Value) WithInstance(instance string) Value {
	v.Meta.Instance = instance
	return v
}
