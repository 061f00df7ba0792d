package formatter

import (
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

const defaultDatetimeFormat = "%a %d/%m %R"

// datetimeFormatter renders a point in time with a strftime pattern. The
// pattern is compiled once, when the formatter is built.
type datetimeFormatter struct {
	pattern *strftime.Strftime
	every   time.Duration
}

func newDatetime(args []Arg) (Formatter, error) {
	r, err := readArgs("datetime", args, map[string]string{"format": "format", "f": "format"})
	if err != nil {
		return nil, err
	}
	layout := r.text("format", defaultDatetimeFormat)
	p, err := strftime.New(layout)
	if err != nil {
		return nil, &ArgError{Formatter: "datetime", Key: "format", Err: err}
	}
	return &datetimeFormatter{pattern: p, every: datetimeInterval(layout)}, nil
}

func (f *datetimeFormatter) Name() string { return "datetime" }

// Interval is one second when the pattern shows seconds, else one minute.
func (f *datetimeFormatter) Interval() time.Duration { return f.every }

func (f *datetimeFormatter) Format(v value.Value, _ Config) (string, error) {
	if v.Kind() != value.KindDatetime {
		return "", incompatible("datetime", v)
	}
	return f.pattern.FormatString(v.Time()), nil
}

func datetimeInterval(layout string) time.Duration {
	for i := 0; i+1 < len(layout); i++ {
		if layout[i] != '%' {
			continue
		}
		switch layout[i+1] {
		case 'S', 'T', 'r', 'c', 's', 'X':
			return time.Second
		}
		i++ // skip the verb, so "%%S" is a literal
	}
	return time.Minute
}
