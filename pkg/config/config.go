// Package config provides TOML and YAML configuration for pulsebar.
package config

import (
	"fmt"

	"github.com/greshake/i3status-rust-sub000/pkg/icons"
)

// Config is the whole bar configuration.
type Config struct {
	// Theme names a built-in theme; ThemeFile, when set, loads one instead.
	Theme     string `toml:"theme" yaml:"theme"`
	ThemeFile string `toml:"theme_file" yaml:"theme_file"`
	// Icons names a built-in icon set; IconsFile, when set, loads one instead.
	Icons     string `toml:"icons" yaml:"icons"`
	IconsFile string `toml:"icons_file" yaml:"icons_file"`

	ThemeOverrides map[string]string `toml:"theme_overrides" yaml:"theme_overrides"`
	IconOverrides  icons.Set         `toml:"icon_overrides" yaml:"icon_overrides"`

	// Preset picks a block list when Blocks is empty.
	Preset string        `toml:"preset" yaml:"preset"`
	Blocks []BlockConfig `toml:"block" yaml:"block"`
}

// BlockConfig configures one block.
type BlockConfig struct {
	// Source names the collector feeding the block.
	Source string `toml:"source" yaml:"source"`
	// Name distinguishes blocks fed by the same source. Defaults to Source.
	Name string `toml:"name" yaml:"name"`
	// Format overrides the collector's default template.
	Format string `toml:"format" yaml:"format"`
	// Interval overrides the collector's update interval.
	Interval Duration `toml:"interval" yaml:"interval"`
	// Warning and Critical are thresholds for percentage values. Nil keeps
	// the collector defaults.
	Warning  *float64 `toml:"warning" yaml:"warning"`
	Critical *float64 `toml:"critical" yaml:"critical"`
	// Values feeds the "static" source.
	Values map[string]string `toml:"values" yaml:"values"`
}

// BlockName returns Name, or Source when Name is empty.
func (b BlockConfig) BlockName() string {
	if b.Name != "" {
		return b.Name
	}
	return b.Source
}

// Validate checks what can be checked without compiling templates.
func (c *Config) Validate() error {
	if len(c.Blocks) == 0 {
		return fmt.Errorf("config: no blocks configured")
	}
	seen := make(map[string]bool, len(c.Blocks))
	for i, b := range c.Blocks {
		if b.Source == "" {
			return fmt.Errorf("config: block %d: missing source", i)
		}
		name := b.BlockName()
		if seen[name] {
			return fmt.Errorf("config: block %d: duplicate name %q", i, name)
		}
		seen[name] = true
		if b.Warning != nil && b.Critical != nil && *b.Warning > *b.Critical {
			return fmt.Errorf("config: block %q: warning %v above critical %v", name, *b.Warning, *b.Critical)
		}
	}
	return nil
}
