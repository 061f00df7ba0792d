package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

type tallyStyle int

const (
	tallyCountingRods tallyStyle = iota
	tallyChinese
	tallyWestern
	tallyWesternUngrouped
)

var tallyStyles = map[string]tallyStyle{
	"chinese_counting_rods":   tallyCountingRods,
	"chinese_tally":           tallyChinese,
	"western_tally":           tallyWestern,
	"western_tally_ungrouped": tallyWesternUngrouped,
}

const (
	rodUnitOne   = '\U0001D360' // vertical rods, used for units, hundreds, ...
	rodTensOne   = '\U0001D369' // horizontal rods, used for tens, thousands, ...
	rodZero      = '〇'
	rodNegative  = '\u20E5' // combining slash over the last digit
	chineseOne   = '\U0001D372'
	chineseFive  = '\U0001D376'
	westernOne   = '\U0001D377'
	westernFive  = '\U0001D378'
	maxTallyMark = 1000
	maxRodValue  = 1e15
)

// tallyFormatter writes small counts as tally marks or counting rods.
type tallyFormatter struct {
	style tallyStyle
}

func newTally(args []Arg) (Formatter, error) {
	r, err := readArgs("tally", args, map[string]string{"style": "style"})
	if err != nil {
		return nil, err
	}
	name := r.text("style", "chinese_counting_rods")
	style, ok := tallyStyles[name]
	if !ok {
		return nil, &ArgError{Formatter: "tally", Key: "style", Err: fmt.Errorf("unknown style %q", name)}
	}
	return &tallyFormatter{style: style}, nil
}

func (f *tallyFormatter) Name() string            { return "tally" }
func (f *tallyFormatter) Interval() time.Duration { return 0 }

func (f *tallyFormatter) Format(v value.Value, _ Config) (string, error) {
	if v.Kind() != value.KindNumber {
		return "", incompatible("tally", v)
	}
	val, unit := v.Number()
	if unit != value.UnitNone {
		return "", &IncompatibleFormatterError{Kind: v.Kind(), Formatter: "tally",
			Err: fmt.Errorf("unit %s not supported", unit)}
	}
	if math.IsNaN(val) || math.Abs(val) >= maxRodValue {
		return "", &NumberOutOfRangeError{Formatter: "tally", Value: val}
	}
	n := int64(math.Round(val))
	if f.style == tallyCountingRods {
		return countingRods(n), nil
	}
	if n < 0 || n > maxTallyMark {
		return "", &NumberOutOfRangeError{Formatter: "tally", Value: val}
	}
	var b strings.Builder
	switch f.style {
	case tallyChinese:
		b.WriteString(strings.Repeat(string(chineseFive), int(n/5)))
		if rem := n % 5; rem > 0 {
			b.WriteRune(chineseOne + rune(rem-1))
		}
	case tallyWestern:
		b.WriteString(strings.Repeat(string(westernFive), int(n/5)))
		b.WriteString(strings.Repeat(string(westernOne), int(n%5)))
	case tallyWesternUngrouped:
		b.WriteString(strings.Repeat(string(westernOne), int(n)))
	}
	return b.String(), nil
}

// countingRods writes n in positional notation, alternating vertical and
// horizontal rod forms starting with vertical for the units digit.
func countingRods(n int64) string {
	if n == 0 {
		return string(rodZero)
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []rune
	for pos := 0; n > 0; pos++ {
		d := n % 10
		n /= 10
		switch {
		case d == 0:
			digits = append(digits, rodZero)
		case pos%2 == 0:
			digits = append(digits, rodUnitOne+rune(d-1))
		default:
			digits = append(digits, rodTensOne+rune(d-1))
		}
	}
	var b strings.Builder
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteRune(digits[i])
	}
	if neg {
		b.WriteRune(rodNegative)
	}
	return b.String()
}
