package formatter

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// argReader validates raw arguments against a formatter's accepted keys and
// converts them. The first conversion error sticks; callers check err once
// after reading everything.
type argReader struct {
	formatter string
	vals      map[string]string // canonical key -> raw value
	err       error
}

// readArgs maps every argument through aliases (alias -> canonical key).
// Unknown keys and keys given twice, possibly through different aliases, are
// rejected.
func readArgs(formatter string, args []Arg, aliases map[string]string) (*argReader, error) {
	r := &argReader{formatter: formatter, vals: make(map[string]string, len(args))}
	for _, a := range args {
		key, ok := aliases[a.Key]
		if !ok {
			return nil, &ArgError{Formatter: formatter, Key: a.Key, Err: errors.New("unknown argument")}
		}
		if _, dup := r.vals[key]; dup {
			return nil, &ArgError{Formatter: formatter, Key: a.Key, Err: errors.New("given more than once")}
		}
		r.vals[key] = a.Value
	}
	return r, nil
}

func (r *argReader) fail(key string, err error) {
	if r.err == nil {
		r.err = &ArgError{Formatter: r.formatter, Key: key, Err: err}
	}
}

func (r *argReader) has(key string) bool {
	_, ok := r.vals[key]
	return ok
}

func (r *argReader) text(key, def string) string {
	if v, ok := r.vals[key]; ok {
		return v
	}
	return def
}

func (r *argReader) integer(key string, def int) int {
	v, ok := r.vals[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, fmt.Errorf("%q is not an integer", v))
		return def
	}
	return n
}

func (r *argReader) number(key string, def float64) float64 {
	v, ok := r.vals[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(key, fmt.Errorf("%q is not a number", v))
		return def
	}
	return f
}

func (r *argReader) flag(key string, def bool) bool {
	v, ok := r.vals[key]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(key, fmt.Errorf("%q is not a boolean", v))
		return def
	}
	return b
}

func (r *argReader) char(key string, def rune) rune {
	v, ok := r.vals[key]
	if !ok {
		return def
	}
	if utf8.RuneCountInString(v) != 1 {
		r.fail(key, fmt.Errorf("%q must be exactly one character", v))
		return def
	}
	c, _ := utf8.DecodeRuneInString(v)
	return c
}
