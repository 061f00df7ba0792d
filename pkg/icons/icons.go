// Package icons resolves icon names to glyphs.
//
// Built-in sets are process-wide read-only tables, built on first use.
// Config files may override single entries; overrides produce a new Set and
// never touch the built-ins.
package icons

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// Glyphs is one icon entry. Entries with several glyphs describe a
// progression (empty to full battery, muted to loud volume) and are indexed
// by a value in [0, 1].
type Glyphs []string

// Set maps icon names to glyphs.
type Set map[string]Glyphs

// NotFoundError reports an icon name missing from the active set.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("icons: icon %q not found", e.Name)
}

var (
	builtinOnce sync.Once
	builtins    map[string]Set
)

func loadBuiltins() map[string]Set {
	builtinOnce.Do(func() {
		builtins = map[string]Set{
			"none":        icNoneSet(),
			"awesome6":    icAwesome6Set(),
			"material-nf": icMaterialNFSet(),
		}
	})
	return builtins
}

// Get returns a built-in set. The result must not be modified; use
// WithOverrides to derive a changed set.
func Get(name string) (Set, bool) {
	s, ok := loadBuiltins()[name]
	return s, ok
}

// Names lists the built-in sets.
func Names() []string {
	sets := loadBuiltins()
	names := make([]string, 0, len(sets))
	for n := range sets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// WithOverrides returns a new set holding s plus overrides. Empty entries in
// overrides delete the icon.
func (s Set) WithOverrides(overrides Set) Set {
	out := make(Set, len(s)+len(overrides))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range overrides {
		if len(v) == 0 {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}

// Icon resolves name. With several glyphs, progress picks one of them;
// without progress the first glyph is used.
func (s Set) Icon(name string, progress *float64) (string, error) {
	g, ok := s[name]
	if !ok || len(g) == 0 {
		return "", &NotFoundError{Name: name}
	}
	if progress == nil || len(g) == 1 {
		return g[0], nil
	}
	p := math.Min(math.Max(*progress, 0), 1)
	if math.IsNaN(p) {
		p = 0
	}
	idx := min(int(p*float64(len(g))), len(g)-1)
	return g[idx], nil
}
