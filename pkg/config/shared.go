package config

import (
	"fmt"
	"os"

	"github.com/greshake/i3status-rust-sub000/pkg/icons"
	"github.com/greshake/i3status-rust-sub000/pkg/theme"
)

// Shared is the resolved theme and icon set every block renders with. It
// satisfies formatter.Config. A Shared value is never modified after
// Resolve returns, so blocks may use it concurrently.
type Shared struct {
	Theme theme.Theme
	Icons icons.Set
}

// Icon resolves an icon from the configured set.
func (s *Shared) Icon(name string, progress *float64) (string, error) {
	return s.Icons.Icon(name, progress)
}

// Resolve loads the theme and icon set named by c and applies overrides.
func (c *Config) Resolve() (*Shared, error) {
	th, err := c.resolveTheme()
	if err != nil {
		return nil, err
	}
	if len(c.ThemeOverrides) > 0 {
		if th, err = theme.ApplyOverrides(th, c.ThemeOverrides); err != nil {
			return nil, err
		}
	}

	set, err := c.resolveIcons()
	if err != nil {
		return nil, err
	}
	if len(c.IconOverrides) > 0 {
		set = set.WithOverrides(c.IconOverrides)
	}
	return &Shared{Theme: th, Icons: set}, nil
}

func (c *Config) resolveTheme() (theme.Theme, error) {
	if c.ThemeFile != "" {
		data, err := os.ReadFile(c.ThemeFile)
		if err != nil {
			return theme.Theme{}, fmt.Errorf("config: theme file: %w", err)
		}
		return theme.LoadFromTOML(data)
	}
	name := c.Theme
	if name == "" {
		name = "default"
	}
	th, ok := theme.Lookup(name)
	if !ok {
		return theme.Theme{}, fmt.Errorf("config: unknown theme %q (have %v)", name, theme.Names())
	}
	return th, nil
}

func (c *Config) resolveIcons() (icons.Set, error) {
	if c.IconsFile != "" {
		data, err := os.ReadFile(c.IconsFile)
		if err != nil {
			return nil, fmt.Errorf("config: icons file: %w", err)
		}
		return icons.LoadFromTOML(data)
	}
	name := c.Icons
	if name == "" {
		name = "none"
	}
	set, ok := icons.Get(name)
	if !ok {
		return nil, fmt.Errorf("config: unknown icon set %q (have %v)", name, icons.Names())
	}
	return set, nil
}
