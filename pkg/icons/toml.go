package icons

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// UnmarshalTOML accepts a single string or an array of strings.
func (g *Glyphs) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		*g = Glyphs{v}
	case []any:
		out := make(Glyphs, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return fmt.Errorf("icons: glyph list holds %T, want strings", e)
			}
			out = append(out, s)
		}
		*g = out
	default:
		return fmt.Errorf("icons: glyph is %T, want a string or a list of strings", v)
	}
	return nil
}

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (g *Glyphs) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*g = Glyphs{node.Value}
		return nil
	case yaml.SequenceNode:
		var out []string
		if err := node.Decode(&out); err != nil {
			return fmt.Errorf("icons: %w", err)
		}
		*g = out
		return nil
	}
	return fmt.Errorf("icons: line %d: glyph must be a string or a list of strings", node.Line)
}

// icTOMLFile is an icon set file:
//
//	[icons]
//	cpu = "C"
//	bat = ["E", "H", "F"]
type icTOMLFile struct {
	Icons Set `toml:"icons"`
}

// LoadFromTOML parses an icon set file.
func LoadFromTOML(data []byte) (Set, error) {
	var f icTOMLFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("icons: parse TOML: %w", err)
	}
	if len(f.Icons) == 0 {
		return nil, fmt.Errorf("icons: no [icons] table")
	}
	return f.Icons, nil
}
