// Package theme holds the color themes the bar paints block states with.
package theme

import (
	"sort"
	"strings"
	"sync"

	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

// Colors is a foreground/background pair as "#RRGGBB" strings. An empty
// string leaves the terminal default in place.
type Colors struct {
	Fg string
	Bg string
}

// Theme maps every block state to a color pair.
type Theme struct {
	Name string

	Idle     Colors
	Info     Colors
	Good     Colors
	Warning  Colors
	Critical Colors

	// Separator is drawn between blocks.
	Separator   string
	SeparatorFg string
}

// For returns the colors of a state. Unknown states use Idle.
func (t Theme) For(s value.State) Colors {
	switch s {
	case value.StateInfo:
		return t.Info
	case value.StateGood:
		return t.Good
	case value.StateWarning:
		return t.Warning
	case value.StateCritical:
		return t.Critical
	default:
		return t.Idle
	}
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
}

// Get returns a named theme, falling back to "default" if not found.
func Get(name string) Theme {
	t, ok := Lookup(name)
	if !ok {
		t, _ = Lookup("default")
	}
	return t
}

// Lookup returns a named theme and whether it exists.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(name)]
	return t, ok
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds or replaces a theme, e.g. one loaded with LoadFromTOML.
func Register(t Theme) error {
	if err := thValidateTheme(t); err != nil {
		return err
	}
	thRegister(t)
	return nil
}

// thRegister adds a theme to the registry under its lowercase name.
func thRegister(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
