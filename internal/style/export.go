package style

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects an export encoding.
type Format string

const (
	FormatCSS  Format = "css"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatCSS, FormatJSON, FormatYAML}

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown format")

// DefaultSelector is the CSS rule the variables are declared on.
const DefaultSelector = ":root"

// ParseFormat parses a format name, case-insensitively. "yml" is accepted
// as YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "css", "":
		return FormatCSS, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q (available: css, json, yaml)", ErrUnknownFormat, s)
}

// Write encodes d in format f.
func Write(w io.Writer, d *Declaration, f Format, selector string) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, d)
	case FormatYAML:
		return WriteYAML(w, d)
	case FormatCSS:
		return WriteCSS(w, d, selector)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// WriteCSS writes d as a single rule of custom property declarations. An
// empty selector uses DefaultSelector.
func WriteCSS(w io.Writer, d *Declaration, selector string) error {
	if selector == "" {
		selector = DefaultSelector
	}
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, name := range d.order {
		fmt.Fprintf(&b, "  %s: %s;\n", name, d.values[name])
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON writes d as an indented JSON object. encoding/json sorts the
// keys, so output is stable.
func WriteJSON(w io.Writer, d *Declaration) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d.Map())
}

// WriteYAML writes d as a YAML mapping in declaration order.
func WriteYAML(w io.Writer, d *Declaration) error {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range d.order {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: d.values[name], Style: yaml.DoubleQuotedStyle},
		)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
