package formatter

import (
	"fmt"

	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

// IncompatibleFormatterError reports a value kind or unit the formatter
// cannot handle.
type IncompatibleFormatterError struct {
	Kind      value.Kind
	Formatter string
	Err       error
}

func (e *IncompatibleFormatterError) Error() string {
	msg := fmt.Sprintf("formatter %q cannot format a %s value", e.Formatter, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *IncompatibleFormatterError) Unwrap() error { return e.Err }

// NumberOutOfRangeError reports a number outside what the formatter accepts.
type NumberOutOfRangeError struct {
	Formatter string
	Value     float64
}

func (e *NumberOutOfRangeError) Error() string {
	return fmt.Sprintf("formatter %q: number %v out of range", e.Formatter, e.Value)
}

// UnknownFormatterError is returned by New for unregistered names.
type UnknownFormatterError struct {
	Name string
}

func (e *UnknownFormatterError) Error() string {
	return fmt.Sprintf("unknown formatter %q", e.Name)
}

// ArgError reports an unknown, duplicated or invalid argument.
type ArgError struct {
	Formatter string
	Key       string
	Err       error
}

func (e *ArgError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("formatter %q: %v", e.Formatter, e.Err)
	}
	return fmt.Sprintf("formatter %q: argument %q: %v", e.Formatter, e.Key, e.Err)
}

func (e *ArgError) Unwrap() error { return e.Err }

func incompatible(name string, v value.Value) error {
	return &IncompatibleFormatterError{Kind: v.Kind(), Formatter: name}
}
