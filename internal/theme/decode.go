package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts either a bare family name ("Inter") or a record
// ({type: Google, family: Inter}).
func (f *Font) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*f = Font{Family: node.Value}
		return nil
	}
	type fontFields Font
	var raw fontFields
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("font: %w", err)
	}
	*f = Font(raw)
	return nil
}

// UnmarshalYAML accepts the legacy "roundeness"/"customRoundeness" keys. The
// correctly spelled key wins when both are present.
func (b *Border) UnmarshalYAML(node *yaml.Node) error {
	type borderFields Border
	var raw struct {
		Fields          borderFields `yaml:",inline"`
		LegacyRoundness *Roundness   `yaml:"roundeness"`
		LegacyCustom    *float64     `yaml:"customRoundeness"`
	}
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("border: %w", err)
	}
	*b = Border(raw.Fields)
	if b.Roundness == nil {
		b.Roundness = raw.LegacyRoundness
	}
	if b.CustomRoundness == nil {
		b.CustomRoundness = raw.LegacyCustom
	}
	return nil
}

// Parse decodes a theme from YAML or JSON.
func Parse(data []byte) (*Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	return &t, nil
}

// Load reads and decodes the theme file at path.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Marshal encodes t as YAML.
func Marshal(t *Theme) ([]byte, error) {
	data, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshal theme: %w", err)
	}
	return data, nil
}

// Clone returns a deep copy of t. A nil theme clones to nil.
func Clone(t *Theme) *Theme {
	if t == nil {
		return nil
	}
	data, err := Marshal(t)
	if err != nil {
		return nil
	}
	c, err := Parse(data)
	if err != nil {
		return nil
	}
	return c
}
