package value

import "fmt"

// Unit is the physical unit of a numeric value.
type Unit int

const (
	UnitNone Unit = iota
	UnitBytes
	UnitBits
	UnitBytesPerSecond
	UnitBitsPerSecond
	UnitPercent
	UnitDegrees
	UnitSeconds
	UnitWatts
	UnitHertz
)

type unitInfo struct {
	symbol string
	names  []string
	minExp int // smallest allowed prefix exponent
	maxExp int // largest allowed prefix exponent
}

var units = [...]unitInfo{
	UnitNone:           {"", []string{"none"}, 0, 4},
	UnitBytes:          {"B", []string{"bytes"}, 0, 4},
	UnitBits:           {"b", []string{"bits"}, 0, 4},
	UnitBytesPerSecond: {"B/s", []string{"Bps"}, 0, 4},
	UnitBitsPerSecond:  {"b/s", []string{"bps"}, 0, 4},
	UnitPercent:        {"%", []string{"percent", "percents"}, 0, 0},
	UnitDegrees:        {"°", []string{"deg", "degrees"}, 0, 0},
	UnitSeconds:        {"s", []string{"seconds"}, -3, 4},
	UnitWatts:          {"W", []string{"watts"}, -3, 4},
	UnitHertz:          {"Hz", []string{"hertz"}, -3, 4},
}

// String returns the unit symbol appended after formatted numbers.
func (u Unit) String() string {
	if u >= 0 && int(u) < len(units) {
		return units[u].symbol
	}
	return "?"
}

// ParseUnit accepts a unit symbol (B, b/s, %, Hz, ...) or its name.
func ParseUnit(s string) (Unit, error) {
	for i, info := range units {
		if s == info.symbol && s != "" {
			return Unit(i), nil
		}
		for _, n := range info.names {
			if s == n {
				return Unit(i), nil
			}
		}
	}
	return UnitNone, fmt.Errorf("unknown unit %q", s)
}

// PrefixRange returns the inclusive window of prefix exponents that make
// sense for the unit. Percentages and degrees are never scaled.
func (u Unit) PrefixRange() (minExp, maxExp int) {
	if u >= 0 && int(u) < len(units) {
		return units[u].minExp, units[u].maxExp
	}
	return 0, 0
}

// Convert converts val expressed in u into unit to. Unitless numbers can be
// labelled with any unit; bytes and bits convert both ways.
func (u Unit) Convert(val float64, to Unit) (float64, error) {
	if u == to || u == UnitNone {
		return val, nil
	}
	switch {
	case u == UnitBytes && to == UnitBits, u == UnitBytesPerSecond && to == UnitBitsPerSecond:
		return val * 8, nil
	case u == UnitBits && to == UnitBytes, u == UnitBitsPerSecond && to == UnitBytesPerSecond:
		return val / 8, nil
	}
	return 0, fmt.Errorf("cannot convert %q to %q", u.name(), to.name())
}

func (u Unit) name() string {
	if u >= 0 && int(u) < len(units) {
		return units[u].names[0]
	}
	return "?"
}
