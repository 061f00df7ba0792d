package formatter

import (
	"time"

	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

// flagFormatter renders a set flag as nothing: the surrounding template text
// is what shows. Unset flags never get here, the renderer treats them as
// missing placeholders.
type flagFormatter struct{}

func newFlag(args []Arg) (Formatter, error) {
	if _, err := readArgs("flag", args, nil); err != nil {
		return nil, err
	}
	return flagFormatter{}, nil
}

func (flagFormatter) Name() string            { return "flag" }
func (flagFormatter) Interval() time.Duration { return 0 }

func (flagFormatter) Format(v value.Value, _ Config) (string, error) {
	if v.Kind() != value.KindBoolean {
		return "", incompatible("flag", v)
	}
	return "", nil
}
