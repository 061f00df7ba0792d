package theme

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name      string       `toml:"name"`
	Separator thTOMLSep    `toml:"separator"`
	Idle      thTOMLColors `toml:"idle"`
	Info      thTOMLColors `toml:"info"`
	Good      thTOMLColors `toml:"good"`
	Warning   thTOMLColors `toml:"warning"`
	Critical  thTOMLColors `toml:"critical"`
}

type thTOMLColors struct {
	Fg string `toml:"fg,omitempty"`
	Bg string `toml:"bg,omitempty"`
}

type thTOMLSep struct {
	Text string `toml:"text"`
	Fg   string `toml:"fg,omitempty"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	md, err := toml.Decode(string(data), &tt)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Theme{}, fmt.Errorf("theme: unknown key %q", undec[0].String())
	}

	t := Theme{
		Name:        tt.Name,
		Idle:        Colors(tt.Idle),
		Info:        Colors(tt.Info),
		Good:        Colors(tt.Good),
		Warning:     Colors(tt.Warning),
		Critical:    Colors(tt.Critical),
		Separator:   tt.Separator.Text,
		SeparatorFg: tt.Separator.Fg,
	}
	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name:      t.Name,
		Separator: thTOMLSep{Text: t.Separator, Fg: t.SeparatorFg},
		Idle:      thTOMLColors(t.Idle),
		Info:      thTOMLColors(t.Info),
		Good:      thTOMLColors(t.Good),
		Warning:   thTOMLColors(t.Warning),
		Critical:  thTOMLColors(t.Critical),
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// thValidateTheme checks the name is set and every color is either empty or
// "#RRGGBB".
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}
	colorFields := map[string]string{
		"idle_fg":      t.Idle.Fg,
		"idle_bg":      t.Idle.Bg,
		"info_fg":      t.Info.Fg,
		"info_bg":      t.Info.Bg,
		"good_fg":      t.Good.Fg,
		"good_bg":      t.Good.Bg,
		"warning_fg":   t.Warning.Fg,
		"warning_bg":   t.Warning.Bg,
		"critical_fg":  t.Critical.Fg,
		"critical_bg":  t.Critical.Bg,
		"separator_fg": t.SeparatorFg,
	}
	for field, value := range colorFields {
		if value != "" && !thHexColorRegex.MatchString(value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", value, field)
		}
	}
	return nil
}
