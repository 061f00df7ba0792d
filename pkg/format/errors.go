package format

import (
	"errors"
	"fmt"

	"github.com/greshake/i3status-rust-sub000/pkg/formatter"
)

// CompileError reports a formatter suffix that could not be bound: an
// unknown formatter name or arguments the formatter rejected.
type CompileError struct {
	Pos         int
	Placeholder string
	Formatter   string
	Err         error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("format: $%s.%s at %d: %v", e.Placeholder, e.Formatter, e.Pos, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// PlaceholderNotFoundError reports a placeholder with no value. Unset
// boolean values count as missing.
type PlaceholderNotFoundError struct {
	Name string
}

func (e *PlaceholderNotFoundError) Error() string {
	return fmt.Sprintf("format: placeholder %q not found", e.Name)
}

// IconError wraps a failure of the icon resolver. It always aborts
// rendering.
type IconError struct {
	Name string
	Err  error
}

func (e *IconError) Error() string {
	return fmt.Sprintf("format: icon %q: %v", e.Name, e.Err)
}

func (e *IconError) Unwrap() error { return e.Err }

// IsRecoverable reports whether err lets rendering fall back to the next
// alternative: a missing placeholder, a formatter that cannot handle the
// value, or a number out of the formatter's range. Icon errors are not
// recoverable.
func IsRecoverable(err error) bool {
	var (
		notFound     *PlaceholderNotFoundError
		incompatible *formatter.IncompatibleFormatterError
		outOfRange   *formatter.NumberOutOfRangeError
		icon         *IconError
	)
	if errors.As(err, &icon) {
		return false
	}
	return errors.As(err, &notFound) || errors.As(err, &incompatible) || errors.As(err, &outOfRange)
}
