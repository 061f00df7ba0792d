package value

import (
	"fmt"
	"math"
)

// Prefix is a magnitude prefix: a power of 1000, or of 1024 when Binary.
// Binary prefixes only exist for non-negative exponents.
type Prefix struct {
	Exp    int
	Binary bool
}

const (
	minPrefixExp = -3
	maxPrefixExp = 4
)

var (
	decimalSymbols = map[int]string{-3: "n", -2: "u", -1: "m", 0: "", 1: "k", 2: "M", 3: "G", 4: "T"}
	binarySymbols  = map[int]string{0: "", 1: "Ki", 2: "Mi", 3: "Gi", 4: "Ti"}
)

var prefixNames = map[string]Prefix{
	"n":  {Exp: -3},
	"u":  {Exp: -2},
	"m":  {Exp: -1},
	"1":  {Exp: 0},
	"1i": {Exp: 0, Binary: true},
	"k":  {Exp: 1},
	"K":  {Exp: 1},
	"Ki": {Exp: 1, Binary: true},
	"M":  {Exp: 2},
	"Mi": {Exp: 2, Binary: true},
	"G":  {Exp: 3},
	"Gi": {Exp: 3, Binary: true},
	"T":  {Exp: 4},
	"Ti": {Exp: 4, Binary: true},
}

// ParsePrefix parses prefix names as written in format arguments. "1" is the
// unit prefix and "1i" the unit prefix that still selects binary scaling.
func ParsePrefix(s string) (Prefix, error) {
	if p, ok := prefixNames[s]; ok {
		return p, nil
	}
	return Prefix{}, fmt.Errorf("unknown prefix %q", s)
}

// Base returns 1000 or 1024.
func (p Prefix) Base() float64 {
	if p.Binary {
		return 1024
	}
	return 1000
}

// Apply scales val down by the prefix.
func (p Prefix) Apply(val float64) float64 {
	return val / math.Pow(p.Base(), float64(p.Exp))
}

// IsOne reports whether the prefix does not scale.
func (p Prefix) IsOne() bool { return p.Exp == 0 }

// String returns the symbol printed between number and unit.
func (p Prefix) String() string {
	if p.Binary {
		return binarySymbols[p.Exp]
	}
	return decimalSymbols[p.Exp]
}

// EngPrefix picks the exponent that brings val into [1, base). Zero, NaN and
// infinities map to the unit prefix.
func EngPrefix(val float64, binary bool) Prefix {
	p := Prefix{Binary: binary}
	val = math.Abs(val)
	if val == 0 || math.IsNaN(val) || math.IsInf(val, 0) {
		return p
	}
	base := p.Base()
	exp := int(math.Floor(math.Log(val) / math.Log(base)))
	// log ratios drift by an ulp around exact powers.
	for val >= math.Pow(base, float64(exp+1)) {
		exp++
	}
	for val < math.Pow(base, float64(exp)) {
		exp--
	}
	lo := minPrefixExp
	if binary {
		lo = 0
	}
	p.Exp = clampInt(exp, lo, maxPrefixExp)
	return p
}

// Clamp limits the exponent into [lo, hi].
func (p Prefix) Clamp(lo, hi int) Prefix {
	p.Exp = clampInt(p.Exp, lo, hi)
	if p.Binary && p.Exp < 0 {
		p.Exp = 0
	}
	return p
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
