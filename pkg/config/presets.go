package config

import (
	"fmt"
	"sort"
)

var presets = map[string]func() []BlockConfig{
	"minimal": minimalPreset,
	"system":  systemPreset,
	"full":    fullPreset,
}

// BlockPreset returns the block list for a named preset. Formats are left
// empty so each collector's default template applies.
func BlockPreset(name string) ([]BlockConfig, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("config: unknown preset %q (have %v)", name, PresetNames())
	}
	return p(), nil
}

// PresetNames lists the known presets.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// minimalPreset is just the clock.
func minimalPreset() []BlockConfig {
	return []BlockConfig{{Source: "time"}}
}

// systemPreset shows the common load indicators.
//
//	[cpu] [memory] [load] [time]
func systemPreset() []BlockConfig {
	return []BlockConfig{
		{Source: "cpu"},
		{Source: "memory"},
		{Source: "load"},
		{Source: "time"},
	}
}

// fullPreset shows every built-in source except static.
//
//	[cpu] [memory] [swap] [disk] [load] [uptime] [time]
func fullPreset() []BlockConfig {
	return []BlockConfig{
		{Source: "cpu"},
		{Source: "memory"},
		{Source: "swap"},
		{Source: "disk"},
		{Source: "load"},
		{Source: "uptime"},
		{Source: "time"},
	}
}
