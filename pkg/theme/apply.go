package theme

import (
	"fmt"
	"sort"
	"strings"
)

// thOverrideFields addresses the color fields overrides may set.
var thOverrideFields = map[string]func(*Theme) *string{
	"idle_fg":      func(t *Theme) *string { return &t.Idle.Fg },
	"idle_bg":      func(t *Theme) *string { return &t.Idle.Bg },
	"info_fg":      func(t *Theme) *string { return &t.Info.Fg },
	"info_bg":      func(t *Theme) *string { return &t.Info.Bg },
	"good_fg":      func(t *Theme) *string { return &t.Good.Fg },
	"good_bg":      func(t *Theme) *string { return &t.Good.Bg },
	"warning_fg":   func(t *Theme) *string { return &t.Warning.Fg },
	"warning_bg":   func(t *Theme) *string { return &t.Warning.Bg },
	"critical_fg":  func(t *Theme) *string { return &t.Critical.Fg },
	"critical_bg":  func(t *Theme) *string { return &t.Critical.Bg },
	"separator_fg": func(t *Theme) *string { return &t.SeparatorFg },
	"separator":    func(t *Theme) *string { return &t.Separator },
}

// ApplyOverrides returns a copy of t with individual fields replaced, as
// given by the theme_overrides config table. Keys are applied in sorted
// order so the first reported error is stable.
func ApplyOverrides(t Theme, overrides map[string]string) (Theme, error) {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		field, ok := thOverrideFields[strings.ToLower(k)]
		if !ok {
			return Theme{}, fmt.Errorf("theme: unknown override %q", k)
		}
		*field(&t) = overrides[k]
	}
	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}
